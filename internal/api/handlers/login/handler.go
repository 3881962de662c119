package login

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "Invalid credentials"
)

type Handler struct {
	login  LoginFunc
	role   domain.Role
	cookie handlers.CookieSettings
	route  string
	logger Logger
}

// NewAdminHandler serves POST /api/v1/auth/login
func NewAdminHandler(service *sessions.Service, cookieName string, secure bool, logger Logger) *Handler {
	return &Handler{
		login:  service.AdminLogin,
		role:   domain.RoleAdmin,
		cookie: handlers.CookieSettings{Name: cookieName, Secure: secure, SameSite: http.SameSiteLaxMode},
		route:  "POST /auth/login",
		logger: logger,
	}
}

// NewTeamHandler serves POST /api/v1/team/login
func NewTeamHandler(service *sessions.Service, cookieName string, secure bool, logger Logger) *Handler {
	return &Handler{
		login:  service.TeamLogin,
		role:   domain.RoleTeam,
		cookie: handlers.CookieSettings{Name: cookieName, Secure: secure, SameSite: http.SameSiteStrictMode},
		route:  "POST /team/login",
		logger: logger,
	}
}

// NewHandler builds a login handler around any login function
func NewHandler(login LoginFunc, role domain.Role, cookie handlers.CookieSettings, logger Logger) *Handler {
	return &Handler{
		login:  login,
		role:   role,
		cookie: cookie,
		route:  "POST login",
		logger: logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", h.route, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidCredentials):
			h.logger.Warn("%s - Invalid credentials: username=%q", h.route, req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("%s - Failed to log in: username=%q, error=%v", h.route, req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.SetSessionCookie(w, h.cookie, result.Token, result.ExpiresAt, result.TTL)

	h.logger.Info("%s - Logged in: username=%q, expires_at=%s", h.route, req.Username, result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Role:      string(h.role),
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}
