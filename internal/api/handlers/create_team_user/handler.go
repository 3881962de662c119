package create_team_user

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/teamusers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUsernameTaken      = "Username already exists"
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

// Handle POST /api/v1/team-users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /team-users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /team-users - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, teamusers.ErrUsernameTaken):
			h.logger.Warn("POST /team-users - Username taken: username=%q", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, teamusers.ErrInvalidInput):
			h.logger.Warn("POST /team-users - Invalid team user: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /team-users - Failed to create team user: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /team-users - Team user created: id=%d, username=%q", result.ID, result.Username)
	handlers.RespondJSON(w, http.StatusCreated, CreateTeamUserResponse{Success: true, ID: result.ID, User: result})
}
