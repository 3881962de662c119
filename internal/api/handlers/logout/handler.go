package logout

import (
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
)

type Handler struct {
	service SessionService
	cookie  handlers.CookieSettings
	logger  Logger
}

func NewHandler(service SessionService, cookie handlers.CookieSettings, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout and POST /api/v1/team/logout
// Logging out without a session still succeeds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetCredential(r.Context())

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST logout - Failed to end session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.ClearSessionCookie(w, h.cookie)

	h.logger.Info("POST logout - Session ended: subject=%q", middleware.GetIdentity(r.Context()).Subject)
	handlers.RespondSuccess(w)
}
