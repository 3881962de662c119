package delete_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates"
)

const (
	msgInvalidID = "invalid blocked date id"
	msgNotFound  = "blocked date not found"
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocked-dates/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-dates/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, blockeddates.ErrBlockedDateNotFound) {
			h.logger.Warn("DELETE /blocked-dates/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /blocked-dates/{id} - Failed to delete: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocked-dates/{id} - Blocked date deleted: id=%d", id)
	handlers.RespondSuccess(w)
}
