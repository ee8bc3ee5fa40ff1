package api

import (
	"bytes"
	"context"
	"encoding/json"
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

func newActivityRouter(registry Registry) http.Handler {
	handler := NewActivityHandler(registry, slog.Default())
	r := chi.NewRouter()
	r.Post("/api/activities", handler.Create)
	r.Get("/api/activities", handler.List)
	r.Get("/api/stats", handler.GetStats)
	return r
}

func TestActivityHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mockRegistry)
		expectedStatus int
	}{
		{
			name: "successful_creation",
			requestBody: CreateActivityRequest{
				Name:        "城市公园植树活动",
				Category:    "环保活动",
				Location:    "东城区",
				Date:        "2025-04-02",
				TimeRange:   "09:00-12:00",
				Description: "在城市公园种植树木，美化环境",
			},
			setupMock: func(m *mockRegistry) {
				m.AddActivityFn = func(ctx context.Context, input service.AddActivityInput) (*domain.Activity, error) {
					return &domain.Activity{
						ID:           1,
						Name:         input.Name,
						Category:     input.Category,
						Location:     input.Location,
						Date:         input.Date,
						TimeRange:    input.TimeRange,
						Description:  input.Description,
						Participants: []int{},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "malformed_date_rejected",
			requestBody: CreateActivityRequest{
				Name:      "城市公园植树活动",
				Category:  "环保活动",
				Location:  "东城区",
				Date:      "04/02/2025",
				TimeRange: "09:00-12:00",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_name_rejected",
			requestBody: CreateActivityRequest{
				Category:  "环保活动",
				Location:  "东城区",
				Date:      "2025-04-02",
				TimeRange: "09:00-12:00",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_body_rejected",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mockRegistry{}
			if tt.setupMock != nil {
				tt.setupMock(registry)
			}
			router := newActivityRouter(registry)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/activities", &body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp ActivityResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, "城市公园植树活动", resp.Name)
				assert.Empty(t, resp.Participants)
			}
		})
	}
}

func TestActivityHandler_List(t *testing.T) {
	all := []domain.Activity{
		{ID: 1, Name: "植树", Category: "环保活动", Location: "东城区", Date: "2025-04-02", Participants: []int{}},
		{ID: 2, Name: "探访", Category: "社区服务", Location: "西城区", Date: "2025-04-03", Participants: []int{}},
		{ID: 3, Name: "清洁", Category: "环保活动", Location: "西城区", Date: "2025-04-05", Participants: []int{}},
	}
	registry := &mockRegistry{
		ListActivitiesFn: func(ctx context.Context) []domain.Activity {
			return append([]domain.Activity{}, all...)
		},
	}
	router := newActivityRouter(registry)

	listIDs := func(t *testing.T, target string) []int {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp []ActivityResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		ids := make([]int, 0, len(resp))
		for _, a := range resp {
			ids = append(ids, a.ID)
		}
		return ids
	}

	t.Run("no_filters", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, listIDs(t, "/api/activities"))
	})

	t.Run("by_category", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, listIDs(t, "/api/activities?category=%E7%8E%AF%E4%BF%9D%E6%B4%BB%E5%8A%A8"))
	})

	t.Run("by_location", func(t *testing.T) {
		assert.Equal(t, []int{2, 3}, listIDs(t, "/api/activities?location=%E8%A5%BF%E5%9F%8E%E5%8C%BA"))
	})

	t.Run("by_category_and_location", func(t *testing.T) {
		assert.Equal(t, []int{3},
			listIDs(t, "/api/activities?category=%E7%8E%AF%E4%BF%9D%E6%B4%BB%E5%8A%A8&location=%E8%A5%BF%E5%9F%8E%E5%8C%BA"))
	})

	t.Run("no_match_yields_empty_array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/activities?category=nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestActivityHandler_GetStats(t *testing.T) {
	registry := &mockRegistry{
		StatsFn: func(ctx context.Context) service.Stats {
			return service.Stats{Users: 3, Activities: 5, Registrations: 7}
		},
	}
	router := newActivityRouter(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 3, resp.Users)
	assert.Equal(t, 5, resp.Activities)
	assert.Equal(t, 7, resp.TotalParticipants)
}
