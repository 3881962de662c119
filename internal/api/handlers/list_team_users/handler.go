package list_team_users

import (
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
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

// Handle GET /api/v1/team-users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /team-users - Failed to list team users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /team-users - Team users retrieved: count=%d", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}
