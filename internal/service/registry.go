package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/observability"
	"github.com/phrazzld/volunteer-api/internal/platform/logger"
	"github.com/phrazzld/volunteer-api/internal/store"
)

// Registry owns the user and activity collections. It is constructed
// once per process with an injected document store and passed by handle
// to all callers; there is no ambient shared state.
//
// A mutex serialises operations so the single-writer model holds under a
// concurrent HTTP front end. Concurrent processes writing the same
// backing file remain unprotected, which the store documents.
type Registry struct {
	mu     sync.Mutex
	doc    *store.Document
	store  store.DocumentStore
	logger *slog.Logger

	// Opaque monotonic counters. Entities are never deleted, so these
	// coincide with count+1 today, but deriving ids from collection
	// length would corrupt uniqueness if deletion is ever added.
	nextUserID     int
	nextActivityID int
}

// NewRegistry loads the persisted document through the provided store
// and returns a registry ready to serve. If logger is nil, a default
// logger will be used.
func NewRegistry(ctx context.Context, documentStore store.DocumentStore, log *slog.Logger) (*Registry, error) {
	if documentStore == nil {
		panic("documentStore cannot be nil for Registry")
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "registry"))

	doc, err := documentStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	r := &Registry{
		doc:            doc,
		store:          documentStore,
		logger:         log,
		nextUserID:     maxUserID(doc.Users) + 1,
		nextActivityID: maxActivityID(doc.Activities) + 1,
	}
	r.recordTotals()

	log.Info("registry initialised",
		slog.Int("users", len(doc.Users)),
		slog.Int("activities", len(doc.Activities)))

	return r, nil
}

// RegisterUserInput captures the payload for creating a user. The
// registry trusts its inputs: ensuring a non-empty name and non-empty
// category/day selections is the caller's responsibility.
type RegisterUserInput struct {
	Name                string
	Location            string
	PreferredCategories []string
	AvailableDays       []string
}

// RegisterUser assigns the next user id, appends the user with an empty
// registration list, persists, and returns the created record.
func (r *Registry) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := domain.User{
		ID:                   r.nextUserID,
		Name:                 input.Name,
		Location:             input.Location,
		PreferredCategories:  cloneStrings(input.PreferredCategories),
		AvailableDays:        cloneStrings(input.AvailableDays),
		RegisteredActivities: []int{},
	}

	r.doc.Users = append(r.doc.Users, user)
	if err := r.store.Save(ctx, r.doc); err != nil {
		r.doc.Users = r.doc.Users[:len(r.doc.Users)-1]
		return nil, fmt.Errorf("failed to persist new user: %w", err)
	}
	r.nextUserID++
	r.recordTotals()

	log := logger.FromContextOrDefault(ctx, r.logger)
	log.Info("user registered",
		slog.Int("user_id", user.ID),
		slog.String("location", user.Location))

	return copyUser(&user), nil
}

// AddActivityInput captures the payload for creating an activity. Date
// is accepted as-is; matching assumes it is a parseable calendar date.
type AddActivityInput struct {
	Name        string
	Category    string
	Location    string
	Date        string
	TimeRange   string
	Description string
}

// AddActivity assigns the next activity id, appends the activity with an
// empty participant list, persists, and returns the created record.
func (r *Registry) AddActivity(ctx context.Context, input AddActivityInput) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity := domain.Activity{
		ID:           r.nextActivityID,
		Name:         input.Name,
		Category:     input.Category,
		Location:     input.Location,
		Date:         input.Date,
		TimeRange:    input.TimeRange,
		Description:  input.Description,
		Participants: []int{},
	}

	r.doc.Activities = append(r.doc.Activities, activity)
	if err := r.store.Save(ctx, r.doc); err != nil {
		r.doc.Activities = r.doc.Activities[:len(r.doc.Activities)-1]
		return nil, fmt.Errorf("failed to persist new activity: %w", err)
	}
	r.nextActivityID++
	r.recordTotals()

	log := logger.FromContextOrDefault(ctx, r.logger)
	log.Info("activity added",
		slog.Int("activity_id", activity.ID),
		slog.String("category", activity.Category),
		slog.String("date", activity.Date))

	return copyActivity(&activity), nil
}

// MatchActivities returns the activities suitable for the user, in
// insertion order: weekday must match one of the user's available days,
// and at least one of category or location must match. An unknown user
// yields an empty slice, not an error.
//
// Returns domain.ErrInvalidActivityDate if any activity's date cannot be
// converted to a weekday.
func (r *Registry) MatchActivities(ctx context.Context, userID int) ([]domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findUser(userID)
	if user == nil {
		log := logger.FromContextOrDefault(ctx, r.logger)
		log.Debug("match requested for unknown user", slog.Int("user_id", userID))
		return []domain.Activity{}, nil
	}

	matched := []domain.Activity{}
	for i := range r.doc.Activities {
		activity := &r.doc.Activities[i]
		ok, err := domain.MatchActivity(user, activity)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, *copyActivity(activity))
		}
	}

	return matched, nil
}

// RegisterForActivity records the user's sign-up for the activity,
// appending to both sides of the relationship within one operation so
// the collections stay symmetric. Outcomes are checked in priority
// order: unknown user, unknown activity, duplicate registration,
// success. Only a successful sign-up mutates and persists.
func (r *Registry) RegisterForActivity(ctx context.Context, userID, activityID int) (RegistrationOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findUser(userID)
	if user == nil {
		return RegistrationOutcome{Status: RegistrationUserNotFound}, nil
	}

	activity := r.findActivity(activityID)
	if activity == nil {
		return RegistrationOutcome{Status: RegistrationActivityNotFound}, nil
	}

	if user.IsRegisteredFor(activityID) {
		return RegistrationOutcome{
			Status:       RegistrationAlreadyRegistered,
			ActivityName: activity.Name,
		}, nil
	}

	user.RegisteredActivities = append(user.RegisteredActivities, activityID)
	activity.Participants = append(activity.Participants, userID)
	if err := r.store.Save(ctx, r.doc); err != nil {
		user.RegisteredActivities = user.RegisteredActivities[:len(user.RegisteredActivities)-1]
		activity.Participants = activity.Participants[:len(activity.Participants)-1]
		return RegistrationOutcome{}, fmt.Errorf("failed to persist registration: %w", err)
	}
	r.recordTotals()

	log := logger.FromContextOrDefault(ctx, r.logger)
	log.Info("registration recorded",
		slog.Int("user_id", userID),
		slog.Int("activity_id", activityID))

	return RegistrationOutcome{
		Status:       RegistrationConfirmed,
		ActivityName: activity.Name,
	}, nil
}

// UnregisterFromActivity removes the registration link from both sides
// if present. Each side is handled idempotently: a side that is already
// missing is skipped, and the call still succeeds.
func (r *Registry) UnregisterFromActivity(ctx context.Context, userID, activityID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findUser(userID)
	activity := r.findActivity(activityID)

	var prevRegistrations, prevParticipants []int
	changed := false

	if user != nil {
		if trimmed, ok := removeID(user.RegisteredActivities, activityID); ok {
			prevRegistrations = user.RegisteredActivities
			user.RegisteredActivities = trimmed
			changed = true
		}
	}
	if activity != nil {
		if trimmed, ok := removeID(activity.Participants, userID); ok {
			prevParticipants = activity.Participants
			activity.Participants = trimmed
			changed = true
		}
	}

	if !changed {
		return nil
	}

	if err := r.store.Save(ctx, r.doc); err != nil {
		if prevRegistrations != nil {
			user.RegisteredActivities = prevRegistrations
		}
		if prevParticipants != nil {
			activity.Participants = prevParticipants
		}
		return fmt.Errorf("failed to persist unregistration: %w", err)
	}
	r.recordTotals()

	log := logger.FromContextOrDefault(ctx, r.logger)
	log.Info("registration removed",
		slog.Int("user_id", userID),
		slog.Int("activity_id", activityID))

	return nil
}

// ListActivities returns the full activities collection in insertion
// order. The result is a read-only snapshot; mutating it does not touch
// registry state.
func (r *Registry) ListActivities(ctx context.Context) []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	activities := make([]domain.Activity, 0, len(r.doc.Activities))
	for i := range r.doc.Activities {
		activities = append(activities, *copyActivity(&r.doc.Activities[i]))
	}
	return activities
}

// ListUserActivities returns the activities the user has joined, in the
// activities collection's insertion order. An unknown user yields an
// empty slice.
func (r *Registry) ListUserActivities(ctx context.Context, userID int) []domain.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.findUser(userID)
	if user == nil {
		return []domain.Activity{}
	}

	joined := []domain.Activity{}
	for i := range r.doc.Activities {
		activity := &r.doc.Activities[i]
		if user.IsRegisteredFor(activity.ID) {
			joined = append(joined, *copyActivity(activity))
		}
	}
	return joined
}

// Stats summarises the registry's current totals.
type Stats struct {
	Users         int
	Activities    int
	Registrations int
}

// Stats returns the current entity counts and the total participation
// (sum of participants across all activities).
func (r *Registry) Stats(ctx context.Context) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statsLocked()
}

// statsLocked computes totals; callers must hold the mutex.
func (r *Registry) statsLocked() Stats {
	registrations := 0
	for i := range r.doc.Activities {
		registrations += len(r.doc.Activities[i].Participants)
	}
	return Stats{
		Users:         len(r.doc.Users),
		Activities:    len(r.doc.Activities),
		Registrations: registrations,
	}
}

// recordTotals refreshes the prometheus gauges; callers must hold the mutex.
func (r *Registry) recordTotals() {
	s := r.statsLocked()
	observability.RecordRegistryTotals(s.Users, s.Activities, s.Registrations)
}

// findUser returns a pointer into the live collection, or nil.
func (r *Registry) findUser(id int) *domain.User {
	for i := range r.doc.Users {
		if r.doc.Users[i].ID == id {
			return &r.doc.Users[i]
		}
	}
	return nil
}

// findActivity returns a pointer into the live collection, or nil.
func (r *Registry) findActivity(id int) *domain.Activity {
	for i := range r.doc.Activities {
		if r.doc.Activities[i].ID == id {
			return &r.doc.Activities[i]
		}
	}
	return nil
}

// removeID returns s without the first occurrence of id. The second
// return reports whether anything was removed; the original slice is
// left untouched so callers can roll back a failed persist.
func removeID(s []int, id int) ([]int, bool) {
	for i, v := range s {
		if v == id {
			trimmed := make([]int, 0, len(s)-1)
			trimmed = append(trimmed, s[:i]...)
			trimmed = append(trimmed, s[i+1:]...)
			return trimmed, true
		}
	}
	return s, false
}

func maxUserID(users []domain.User) int {
	max := 0
	for i := range users {
		if users[i].ID > max {
			max = users[i].ID
		}
	}
	return max
}

func maxActivityID(activities []domain.Activity) int {
	max := 0
	for i := range activities {
		if activities[i].ID > max {
			max = activities[i].ID
		}
	}
	return max
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.PreferredCategories = cloneStrings(u.PreferredCategories)
	c.AvailableDays = cloneStrings(u.AvailableDays)
	c.RegisteredActivities = cloneInts(u.RegisteredActivities)
	return &c
}

func copyActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Participants = cloneInts(a.Participants)
	return &c
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
