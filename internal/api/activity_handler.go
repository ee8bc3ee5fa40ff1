package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/volunteer-api/internal/api/shared"
	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/platform/logger"
	"github.com/phrazzld/volunteer-api/internal/service"
)

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	registry  Registry
	validator *validator.Validate
	logger    *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(registry Registry, logger *slog.Logger) *ActivityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ActivityHandler")
	}

	return &ActivityHandler{
		registry:  registry,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "activity_handler")),
	}
}

// Create handles POST /api/activities requests.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateActivityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	activity, err := h.registry.AddActivity(r.Context(), service.AddActivityInput{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		TimeRange:   req.TimeRange,
		Description: req.Description,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to add activity", err)
		return
	}

	log.Debug("activity created via API", slog.Int("activity_id", activity.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, activityToResponse(activity))
}

// List handles GET /api/activities requests. The optional category and
// location query parameters narrow the listing, as the browse page's
// filter dropdowns do.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities := h.registry.ListActivities(r.Context())

	category := r.URL.Query().Get("category")
	location := r.URL.Query().Get("location")
	if category != "" || location != "" {
		activities = filterActivities(activities, category, location)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activitiesToResponse(activities))
}

// GetStats handles GET /api/stats requests.
func (h *ActivityHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.registry.Stats(r.Context())

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{
		Users:             stats.Users,
		Activities:        stats.Activities,
		TotalParticipants: stats.Registrations,
	})
}

// filterActivities keeps activities matching the non-empty criteria.
func filterActivities(activities []domain.Activity, category, location string) []domain.Activity {
	filtered := []domain.Activity{}
	for i := range activities {
		if category != "" && activities[i].Category != category {
			continue
		}
		if location != "" && activities[i].Location != location {
			continue
		}
		filtered = append(filtered, activities[i])
	}
	return filtered
}
