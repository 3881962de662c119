package update_images

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/images"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingID          = "Image id is required"
	msgNotFound           = "image not found"
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

// Handle PUT /api/v1/images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateImagesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /images - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /images - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	if req.IsReorder() {
		h.reorder(w, r, &req)
		return
	}

	if req.ID == 0 {
		h.logger.Warn("PUT /images - Missing image id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "update", err)
		return
	}

	h.logger.Info("PUT /images - Image updated: image_id=%d", req.ID)
	handlers.RespondJSON(w, http.StatusOK, UpdateImagesResponse{Success: true, Image: result})
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request, req *UpdateImagesRequest) {
	ids := req.ReorderIDs()
	if err := h.service.Reorder(r.Context(), ids); err != nil {
		h.respondError(w, "reorder", err)
		return
	}

	h.logger.Info("PUT /images - Images reordered: count=%d", len(ids))
	handlers.RespondSuccess(w)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, images.ErrInvalidInput):
		h.logger.Warn("PUT /images - Invalid %s: %v", op, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, images.ErrImageNotFound):
		h.logger.Warn("PUT /images - Image not found during %s", op)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("PUT /images - Failed to %s images: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
