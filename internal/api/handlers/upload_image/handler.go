package upload_image

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/images"
	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

const (
	msgInvalidForm            = "expected multipart form with file and accommodation_id"
	msgInvalidAccommodationID = "invalid accommodation_id"
	msgMissingFile            = "file is required"
	msgAccommodationNotFound  = "accommodation not found"
	msgUnsupportedType        = "only image uploads are accepted"
	msgFileTooLarge           = "file too large"

	// multipart framing on top of the file itself
	formOverheadBytes = 1 << 20
)

type Handler struct {
	service        ImageService
	logger         Logger
	maxUploadBytes int64
}

func NewHandler(service ImageService, logger Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

type Response struct {
	Success bool                  `json:"success"`
	Image   *models.ImageResponse `json:"image"`
}

// Handle POST /api/v1/images
// Multipart fields: file, accommodation_id, caption (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+formOverheadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /images - Upload too large: limit=%d", h.maxUploadBytes)
			handlers.RespondBadRequest(w, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /images - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	accommodationID, err := strconv.ParseInt(r.FormValue("accommodation_id"), 10, 64)
	if err != nil || accommodationID <= 0 {
		h.logger.Warn("POST /images - Invalid accommodation_id: %q", r.FormValue("accommodation_id"))
		handlers.RespondBadRequest(w, msgInvalidAccommodationID)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /images - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("POST /images - Failed to read upload: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	result, err := h.service.Upload(r.Context(), &models.UploadImageRequest{
		AccommodationID: accommodationID,
		ContentType:     contentType,
		Caption:         r.FormValue("caption"),
		Body:            body,
	})
	if err != nil {
		switch {
		case errors.Is(err, images.ErrUnsupportedType):
			h.logger.Warn("POST /images - Unsupported content type: %q", contentType)
			handlers.RespondBadRequest(w, msgUnsupportedType)

		case errors.Is(err, images.ErrFileTooLarge):
			h.logger.Warn("POST /images - File too large: size=%d", len(body))
			handlers.RespondBadRequest(w, msgFileTooLarge)

		case errors.Is(err, images.ErrInvalidInput):
			h.logger.Warn("POST /images - Invalid upload: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, images.ErrAccommodationNotFound):
			h.logger.Warn("POST /images - Accommodation not found: accommodation_id=%d", accommodationID)
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		default:
			h.logger.Error("POST /images - Failed to upload image: accommodation_id=%d, error=%v", accommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /images - Image uploaded: image_id=%d, accommodation_id=%d", result.ID, accommodationID)
	handlers.RespondJSON(w, http.StatusCreated, Response{Success: true, Image: result})
}
