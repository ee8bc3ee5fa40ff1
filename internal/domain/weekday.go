package domain

import (
	"strings"
	"time"
)

// localDayNames maps the Chinese day-of-week labels users may select to
// the weekday they denote. Labels found here match by weekday equality
// rather than by the substring rule below.
var localDayNames = map[string]time.Weekday{
	"周一": time.Monday,
	"周二": time.Tuesday,
	"周三": time.Wednesday,
	"周四": time.Thursday,
	"周五": time.Friday,
	"周六": time.Saturday,
	"周日": time.Sunday,
}

// DayLabelMatches reports whether a single availability label matches the
// given weekday. Chinese labels are resolved through the lookup table;
// anything else keeps the original case-insensitive substring semantics,
// so "wed", "Wednesday" and "WEDNESDAY" all match a Wednesday.
func DayLabelMatches(label string, day time.Weekday) bool {
	if mapped, ok := localDayNames[label]; ok {
		return mapped == day
	}
	return strings.Contains(strings.ToLower(day.String()), strings.ToLower(label))
}

// AvailableOn reports whether any of the user's availability labels
// matches the given weekday.
func (u *User) AvailableOn(day time.Weekday) bool {
	for _, label := range u.AvailableDays {
		if DayLabelMatches(label, day) {
			return true
		}
	}
	return false
}

// MatchActivity applies the matching rule: the activity's weekday must
// match one of the user's available days, AND at least one of category
// or location must match. The relaxed "day AND (category OR location)"
// form is deliberate business policy; do not tighten it to a strict
// conjunction of all three criteria.
//
// Returns ErrInvalidActivityDate if the activity's date cannot be
// converted to a weekday.
func MatchActivity(u *User, a *Activity) (bool, error) {
	weekday, err := a.Weekday()
	if err != nil {
		return false, err
	}

	if !u.AvailableOn(weekday) {
		return false, nil
	}

	return u.PrefersCategory(a.Category) || a.Location == u.Location, nil
}
