package delete_image

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/images"
)

const (
	msgInvalidID = "Image id is required"
	msgNotFound  = "image not found"
)

type Handler struct {
	service ImageService
	logger  Logger
}

func NewHandler(service ImageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/images?id=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /images - Invalid image id: %q", r.URL.Query().Get("id"))
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, images.ErrImageNotFound) {
			h.logger.Warn("DELETE /images - Image not found: image_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /images - Failed to delete image: image_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /images - Image deleted: image_id=%d", id)
	handlers.RespondSuccess(w)
}
