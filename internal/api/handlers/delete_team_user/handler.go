package delete_team_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/teamusers"
)

const (
	msgInvalidID = "invalid team user id"
	msgNotFound  = "team user not found"
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

// Handle DELETE /api/v1/team-users/{id}
// Sessions of the user are removed with it
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /team-users/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, teamusers.ErrTeamUserNotFound) {
			h.logger.Warn("DELETE /team-users/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /team-users/{id} - Failed to delete team user: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /team-users/{id} - Team user deleted: id=%d", id)
	handlers.RespondSuccess(w)
}
