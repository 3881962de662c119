package get_me

import (
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	"github.com/Liandro13/method-passion-site/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type UserInfo struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	AllowedAccommodations []int64 `json:"allowed_accommodations"`
}

type Response struct {
	Authenticated bool      `json:"authenticated"`
	Role          string    `json:"role,omitempty"`
	Name          string    `json:"name,omitempty"`
	User          *UserInfo `json:"user,omitempty"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/auth/me and GET /api/v1/team/me
// Always 200; anonymous callers get authenticated=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	h.logger.Info("GET me - Session checked: authenticated=%t, role=%s", identity.IsAuthenticated(), identity.Role)
	handlers.RespondJSON(w, http.StatusOK, FromIdentity(identity))
}

func FromIdentity(identity domain.Identity) Response {
	if !identity.IsAuthenticated() {
		return Response{Authenticated: false}
	}

	resp := Response{
		Authenticated: true,
		Role:          string(identity.Role),
		Name:          identity.Name,
	}
	if identity.TeamUserID != nil {
		allowed := identity.AllowedAccommodationIDs
		if allowed == nil {
			allowed = []int64{}
		}
		resp.User = &UserInfo{
			ID:                    *identity.TeamUserID,
			Name:                  identity.Name,
			AllowedAccommodations: allowed,
		}
	}
	return resp
}
