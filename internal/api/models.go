package api

import (
	"github.com/phrazzld/volunteer-api/internal/domain"
)

// Common request/response structures

// RegisterUserRequest defines the payload for the user registration endpoint.
// The core trusts its inputs, so every shape requirement is enforced here:
// a non-empty name and at least one category and one day.
type RegisterUserRequest struct {
	Name                string   `json:"name"                 validate:"required,min=1"`
	Location            string   `json:"location"             validate:"required"`
	PreferredCategories []string `json:"preferred_categories" validate:"required,min=1,dive,required"`
	AvailableDays       []string `json:"available_days"       validate:"required,min=1,dive,required"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Location             string   `json:"location"`
	PreferredCategories  []string `json:"preferred_categories"`
	AvailableDays        []string `json:"available_days"`
	RegisteredActivities []int    `json:"registered_activities"`
}

// CreateActivityRequest defines the payload for the activity creation
// endpoint. The date is validated here because the registry accepts it
// unchecked and matching assumes a parseable calendar date.
type CreateActivityRequest struct {
	Name        string `json:"name"        validate:"required,min=1"`
	Category    string `json:"category"    validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	TimeRange   string `json:"time_range"`
	Description string `json:"description"`
}

// ActivityResponse represents the response data for an activity.
type ActivityResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	TimeRange    string `json:"time_range"`
	Description  string `json:"description"`
	Participants []int  `json:"participants"`
}

// RegistrationRequest defines the payload for signing a user up for an activity.
type RegistrationRequest struct {
	ActivityID int `json:"activity_id" validate:"required,gt=0"`
}

// RegistrationResponse reports the outcome of a sign-up attempt. Message
// carries the outcome text verbatim; clients may surface it directly or
// substitute localized text keyed on Status.
type RegistrationResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ActivityName string `json:"activity_name,omitempty"`
}

// StatsResponse carries the registry totals for the overview page.
type StatsResponse struct {
	Users             int `json:"users"`
	Activities        int `json:"activities"`
	TotalParticipants int `json:"total_participants"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		Name:                 user.Name,
		Location:             user.Location,
		PreferredCategories:  user.PreferredCategories,
		AvailableDays:        user.AvailableDays,
		RegisteredActivities: user.RegisteredActivities,
	}
}

// activityToResponse converts a domain.Activity to an ActivityResponse.
func activityToResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           activity.ID,
		Name:         activity.Name,
		Category:     activity.Category,
		Location:     activity.Location,
		Date:         activity.Date,
		TimeRange:    activity.TimeRange,
		Description:  activity.Description,
		Participants: activity.Participants,
	}
}

// activitiesToResponse converts a slice of activities, keeping order.
func activitiesToResponse(activities []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, activityToResponse(&activities[i]))
	}
	return out
}
