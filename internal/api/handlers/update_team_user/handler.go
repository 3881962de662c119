package update_team_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/teamusers"
)

const (
	msgInvalidID          = "invalid team user id"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "team user not found"
)

type Handler struct {
	service TeamUserService
	logger  Logger
}

func NewHandler(service TeamUserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/team-users/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /team-users/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateTeamUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /team-users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /team-users/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, teamusers.ErrInvalidInput):
			h.logger.Warn("PUT /team-users/{id} - Invalid update: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, teamusers.ErrTeamUserNotFound):
			h.logger.Warn("PUT /team-users/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /team-users/{id} - Failed to update team user: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /team-users/{id} - Team user updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, UpdateTeamUserResponse{Success: true, User: result})
}
