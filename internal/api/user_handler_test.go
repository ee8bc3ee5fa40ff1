package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/service"
)

// mockRegistry is a mock implementation of the Registry interface for testing
type mockRegistry struct {
	RegisterUserFn           func(ctx context.Context, input service.RegisterUserInput) (*domain.User, error)
	AddActivityFn            func(ctx context.Context, input service.AddActivityInput) (*domain.Activity, error)
	MatchActivitiesFn        func(ctx context.Context, userID int) ([]domain.Activity, error)
	RegisterForActivityFn    func(ctx context.Context, userID, activityID int) (service.RegistrationOutcome, error)
	UnregisterFromActivityFn func(ctx context.Context, userID, activityID int) error
	ListActivitiesFn         func(ctx context.Context) []domain.Activity
	ListUserActivitiesFn     func(ctx context.Context, userID int) []domain.Activity
	StatsFn                  func(ctx context.Context) service.Stats
}

func (m *mockRegistry) RegisterUser(ctx context.Context, input service.RegisterUserInput) (*domain.User, error) {
	if m.RegisterUserFn != nil {
		return m.RegisterUserFn(ctx, input)
	}
	return nil, nil
}

func (m *mockRegistry) AddActivity(ctx context.Context, input service.AddActivityInput) (*domain.Activity, error) {
	if m.AddActivityFn != nil {
		return m.AddActivityFn(ctx, input)
	}
	return nil, nil
}

func (m *mockRegistry) MatchActivities(ctx context.Context, userID int) ([]domain.Activity, error) {
	if m.MatchActivitiesFn != nil {
		return m.MatchActivitiesFn(ctx, userID)
	}
	return []domain.Activity{}, nil
}

func (m *mockRegistry) RegisterForActivity(ctx context.Context, userID, activityID int) (service.RegistrationOutcome, error) {
	if m.RegisterForActivityFn != nil {
		return m.RegisterForActivityFn(ctx, userID, activityID)
	}
	return service.RegistrationOutcome{}, nil
}

func (m *mockRegistry) UnregisterFromActivity(ctx context.Context, userID, activityID int) error {
	if m.UnregisterFromActivityFn != nil {
		return m.UnregisterFromActivityFn(ctx, userID, activityID)
	}
	return nil
}

func (m *mockRegistry) ListActivities(ctx context.Context) []domain.Activity {
	if m.ListActivitiesFn != nil {
		return m.ListActivitiesFn(ctx)
	}
	return []domain.Activity{}
}

func (m *mockRegistry) ListUserActivities(ctx context.Context, userID int) []domain.Activity {
	if m.ListUserActivitiesFn != nil {
		return m.ListUserActivitiesFn(ctx, userID)
	}
	return []domain.Activity{}
}

func (m *mockRegistry) Stats(ctx context.Context) service.Stats {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return service.Stats{}
}

// newUserRouter mounts a UserHandler on a chi router so path parameters
// resolve the way they do in production.
func newUserRouter(registry Registry) http.Handler {
	handler := NewUserHandler(registry, slog.Default())
	r := chi.NewRouter()
	r.Post("/api/users", handler.Register)
	r.Get("/api/users/{id}/matches", handler.GetMatches)
	r.Get("/api/users/{id}/activities", handler.ListJoinedActivities)
	r.Post("/api/users/{id}/registrations", handler.CreateRegistration)
	r.Delete("/api/users/{id}/registrations/{activityID}", handler.DeleteRegistration)
	return r
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mockRegistry)
		expectedStatus int
	}{
		{
			name: "successful_registration",
			requestBody: RegisterUserRequest{
				Name:                "李华",
				Location:            "东城区",
				PreferredCategories: []string{"环保活动"},
				AvailableDays:       []string{"周三"},
			},
			setupMock: func(m *mockRegistry) {
				m.RegisterUserFn = func(ctx context.Context, input service.RegisterUserInput) (*domain.User, error) {
					return &domain.User{
						ID:                   1,
						Name:                 input.Name,
						Location:             input.Location,
						PreferredCategories:  input.PreferredCategories,
						AvailableDays:        input.AvailableDays,
						RegisteredActivities: []int{},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing_name_rejected",
			requestBody: RegisterUserRequest{
				Location:            "东城区",
				PreferredCategories: []string{"环保活动"},
				AvailableDays:       []string{"周三"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty_categories_rejected",
			requestBody: RegisterUserRequest{
				Name:          "李华",
				Location:      "东城区",
				AvailableDays: []string{"周三"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty_days_rejected",
			requestBody: RegisterUserRequest{
				Name:                "李华",
				Location:            "东城区",
				PreferredCategories: []string{"环保活动"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_body_rejected",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "registry_failure_is_500",
			requestBody: RegisterUserRequest{
				Name:                "李华",
				Location:            "东城区",
				PreferredCategories: []string{"环保活动"},
				AvailableDays:       []string{"周三"},
			},
			setupMock: func(m *mockRegistry) {
				m.RegisterUserFn = func(ctx context.Context, input service.RegisterUserInput) (*domain.User, error) {
					return nil, errors.New("disk full")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mockRegistry{}
			if tt.setupMock != nil {
				tt.setupMock(registry)
			}
			router := newUserRouter(registry)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/users", &body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, "李华", resp.Name)
				assert.Empty(t, resp.RegisteredActivities)
			}
		})
	}
}

func TestUserHandler_GetMatches(t *testing.T) {
	matched := []domain.Activity{
		{ID: 1, Name: "城市公园植树活动", Category: "环保活动", Location: "东城区", Date: "2025-04-02", Participants: []int{}},
	}

	registry := &mockRegistry{
		MatchActivitiesFn: func(ctx context.Context, userID int) ([]domain.Activity, error) {
			if userID == 1 {
				return matched, nil
			}
			return []domain.Activity{}, nil
		},
	}
	router := newUserRouter(registry)

	t.Run("known_user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/1/matches", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []ActivityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "城市公园植树活动", resp[0].Name)
	})

	t.Run("unknown_user_gets_empty_list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/99/matches", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("invalid_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/abc/matches", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_activity_date_is_422", func(t *testing.T) {
		failing := &mockRegistry{
			MatchActivitiesFn: func(ctx context.Context, userID int) ([]domain.Activity, error) {
				return nil, domain.ErrInvalidActivityDate
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/users/1/matches", nil)
		rec := httptest.NewRecorder()
		newUserRouter(failing).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUserHandler_CreateRegistration(t *testing.T) {
	tests := []struct {
		name           string
		outcome        service.RegistrationOutcome
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "confirmed",
			outcome: service.RegistrationOutcome{
				Status:       service.RegistrationConfirmed,
				ActivityName: "城市公园植树活动",
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "成功报名参加活动: 城市公园植树活动",
		},
		{
			name:           "user_not_found",
			outcome:        service.RegistrationOutcome{Status: service.RegistrationUserNotFound},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "用户不存在",
		},
		{
			name:           "activity_not_found",
			outcome:        service.RegistrationOutcome{Status: service.RegistrationActivityNotFound},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "活动不存在",
		},
		{
			name:           "already_registered",
			outcome:        service.RegistrationOutcome{Status: service.RegistrationAlreadyRegistered},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "你已报名参加此活动",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mockRegistry{
				RegisterForActivityFn: func(ctx context.Context, userID, activityID int) (service.RegistrationOutcome, error) {
					assert.Equal(t, 1, userID)
					assert.Equal(t, 2, activityID)
					return tt.outcome, nil
				},
			}
			router := newUserRouter(registry)

			body := bytes.NewBufferString(`{"activity_id": 2}`)
			req := httptest.NewRequest(http.MethodPost, "/api/users/1/registrations", body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			var resp RegistrationResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, string(tt.outcome.Status), resp.Status)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}

	t.Run("missing_activity_id_rejected", func(t *testing.T) {
		router := newUserRouter(&mockRegistry{})
		req := httptest.NewRequest(http.MethodPost, "/api/users/1/registrations",
			bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_DeleteRegistration(t *testing.T) {
	var gotUserID, gotActivityID int
	registry := &mockRegistry{
		UnregisterFromActivityFn: func(ctx context.Context, userID, activityID int) error {
			gotUserID, gotActivityID = userID, activityID
			return nil
		},
	}
	router := newUserRouter(registry)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1/registrations/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, gotUserID)
	assert.Equal(t, 2, gotActivityID)
}

func TestUserHandler_ListJoinedActivities_SortedByDate(t *testing.T) {
	registry := &mockRegistry{
		ListUserActivitiesFn: func(ctx context.Context, userID int) []domain.Activity {
			return []domain.Activity{
				{ID: 1, Name: "later", Date: "2025-04-09", Participants: []int{}},
				{ID: 2, Name: "sooner", Date: "2025-04-03", Participants: []int{}},
			}
		},
	}
	router := newUserRouter(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1/activities", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []ActivityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "sooner", resp[0].Name)
	assert.Equal(t, "later", resp[1].Name)
}
