package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format activity dates are stored with.
const DateLayout = "2006-01-02"

// Activity represents a scheduled volunteer opportunity.
//
// Date is kept as the raw string it was created with and only parsed
// during matching; TimeRange is display-only text and never parsed.
// The JSON field names are the persisted document format and must stay
// stable across versions.
type Activity struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	TimeRange    string `json:"time_range"`
	Description  string `json:"description"`
	Participants []int  `json:"participants"`
}

// Weekday converts the activity's calendar date to its day of the week.
// Returns ErrInvalidActivityDate if the stored date is not a parseable
// calendar date.
func (a *Activity) Weekday() (time.Weekday, error) {
	t, err := time.Parse(DateLayout, a.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivityDate, a.Date)
	}
	return t.Weekday(), nil
}

// HasParticipant reports whether the user already appears in the
// activity's participant list.
func (a *Activity) HasParticipant(userID int) bool {
	for _, id := range a.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
