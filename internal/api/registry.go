package api

import (
	"context"

	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/service"
)

// Registry captures the core operations the handlers invoke. It is
// implemented by *service.Registry; handler tests substitute mocks.
type Registry interface {
	RegisterUser(ctx context.Context, input service.RegisterUserInput) (*domain.User, error)
	AddActivity(ctx context.Context, input service.AddActivityInput) (*domain.Activity, error)
	MatchActivities(ctx context.Context, userID int) ([]domain.Activity, error)
	RegisterForActivity(ctx context.Context, userID, activityID int) (service.RegistrationOutcome, error)
	UnregisterFromActivity(ctx context.Context, userID, activityID int) error
	ListActivities(ctx context.Context) []domain.Activity
	ListUserActivities(ctx context.Context, userID int) []domain.Activity
	Stats(ctx context.Context) service.Stats
}
