package main

import (
	"context"
	"fmt"
	"time"

	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/service"
)

// sampleActivity describes one seeded activity; the date is an offset in
// days from startup so the samples always land in the coming week.
type sampleActivity struct {
	name        string
	category    string
	location    string
	daysFromNow int
	timeRange   string
	description string
}

var sampleActivities = []sampleActivity{
	{
		name:        "城市公园植树活动",
		category:    "环保活动",
		location:    "东城区",
		daysFromNow: 1,
		timeRange:   "09:00-12:00",
		description: "与社区一起参与城市绿化，为城市增添一抹绿色",
	},
	{
		name:        "社区图书馆整理",
		category:    "教育支持",
		location:    "西城区",
		daysFromNow: 2,
		timeRange:   "14:00-16:30",
		description: "协助整理社区图书馆书籍，创造良好阅读环境",
	},
	{
		name:        "养老院关爱探访",
		category:    "关爱老人",
		location:    "东城区",
		daysFromNow: 6,
		timeRange:   "10:00-12:00",
		description: "为养老院老人带去欢乐和关爱",
	},
	{
		name:        "海滩清洁行动",
		category:    "环保活动",
		location:    "南城区",
		daysFromNow: 3,
		timeRange:   "08:00-11:00",
		description: "保护海洋环境，清理海滩垃圾",
	},
	{
		name:        "社区儿童教育",
		category:    "教育支持",
		location:    "东城区",
		daysFromNow: 4,
		timeRange:   "15:00-17:00",
		description: "为社区儿童提供课外辅导和游戏活动",
	},
}

// seedSampleActivities populates the registry with example activities so
// a fresh install has something to browse and match against. It only
// runs when the activities collection is empty.
func (app *application) seedSampleActivities(ctx context.Context) error {
	if len(app.registry.ListActivities(ctx)) > 0 {
		return nil
	}

	now := time.Now()
	for _, sample := range sampleActivities {
		_, err := app.registry.AddActivity(ctx, service.AddActivityInput{
			Name:        sample.name,
			Category:    sample.category,
			Location:    sample.location,
			Date:        now.AddDate(0, 0, sample.daysFromNow).Format(domain.DateLayout),
			TimeRange:   sample.timeRange,
			Description: sample.description,
		})
		if err != nil {
			return fmt.Errorf("failed to seed activity %q: %w", sample.name, err)
		}
	}

	app.logger.Info("seeded sample activities", "count", len(sampleActivities))
	return nil
}
