package domain

// User represents a registrant with a home location, preferred activity
// categories, and the days of the week they are available.
//
// The JSON field names are the persisted document format and must stay
// stable across versions.
type User struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Location             string   `json:"location"`
	PreferredCategories  []string `json:"preferred_categories"`
	AvailableDays        []string `json:"available_days"`
	RegisteredActivities []int    `json:"registered_activities"`
}

// IsRegisteredFor reports whether the user has already joined the given
// activity. Duplicates are checked, not structurally prevented, so this
// is the guard every registration path goes through.
func (u *User) IsRegisteredFor(activityID int) bool {
	for _, id := range u.RegisteredActivities {
		if id == activityID {
			return true
		}
	}
	return false
}

// PrefersCategory reports whether the category is one of the user's
// preferred activity categories.
func (u *User) PrefersCategory(category string) bool {
	for _, c := range u.PreferredCategories {
		if c == category {
			return true
		}
	}
	return false
}
