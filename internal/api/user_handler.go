package api

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/volunteer-api/internal/api/shared"
	"github.com/phrazzld/volunteer-api/internal/domain"
	"github.com/phrazzld/volunteer-api/internal/platform/logger"
	"github.com/phrazzld/volunteer-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	registry  Registry
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(registry Registry, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		registry:  registry,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /api/users requests.
// All input validation happens here; the registry trusts what it is given.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.registry.RegisterUser(r.Context(), service.RegisterUserInput{
		Name:                req.Name,
		Location:            req.Location,
		PreferredCategories: req.PreferredCategories,
		AvailableDays:       req.AvailableDays,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to register user", err)
		return
	}

	log.Debug("user registered via API", slog.Int("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// GetMatches handles GET /api/users/{id}/matches requests.
// An unknown user yields an empty list, mirroring the registry's
// empty-sequence contract rather than a 404.
func (h *UserHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathInt(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.registry.MatchActivities(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidActivityDate) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
				"An activity has an invalid date", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to match activities", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activitiesToResponse(matches))
}

// ListJoinedActivities handles GET /api/users/{id}/activities requests.
// Results are sorted by date so the nearest commitment comes first.
func (h *UserHandler) ListJoinedActivities(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathInt(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	joined := h.registry.ListUserActivities(r.Context(), userID)

	// YYYY-MM-DD sorts correctly as text.
	sort.Slice(joined, func(i, j int) bool {
		return joined[i].Date < joined[j].Date
	})

	shared.RespondWithJSON(w, r, http.StatusOK, activitiesToResponse(joined))
}

// CreateRegistration handles POST /api/users/{id}/registrations requests.
func (h *UserHandler) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathInt(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req RegistrationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	outcome, err := h.registry.RegisterForActivity(r.Context(), userID, req.ActivityID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to record registration", err)
		return
	}

	log.Debug("registration attempt",
		slog.Int("user_id", userID),
		slog.Int("activity_id", req.ActivityID),
		slog.String("status", string(outcome.Status)))

	shared.RespondWithJSON(w, r, registrationStatusCode(outcome.Status), RegistrationResponse{
		Status:       string(outcome.Status),
		Message:      outcome.Message(),
		ActivityName: outcome.ActivityName,
	})
}

// DeleteRegistration handles DELETE /api/users/{id}/registrations/{activityID}
// requests. Unregistering is idempotent per side, so a link that is
// already gone still yields 204.
func (h *UserHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathInt(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	activityID, err := getPathInt(r, "activityID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.registry.UnregisterFromActivity(r.Context(), userID, activityID); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to remove registration", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// registrationStatusCode maps a registration outcome to its HTTP status.
func registrationStatusCode(status service.RegistrationStatus) int {
	switch status {
	case service.RegistrationConfirmed:
		return http.StatusCreated
	case service.RegistrationAlreadyRegistered:
		return http.StatusConflict
	case service.RegistrationUserNotFound, service.RegistrationActivityNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
