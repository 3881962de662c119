package image_file

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/images"
)

const (
	msgMissingKey = "File path required"
	msgNotFound   = "image not found"

	cacheControl = "public, max-age=31536000"
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

// Handle GET /api/v1/images/file/{key:.*}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		handlers.RespondBadRequest(w, msgMissingKey)
		return
	}

	file, err := h.service.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, images.ErrImageNotFound) {
			h.logger.Warn("GET /images/file - Not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /images/file - Failed to open: key=%s, error=%v", key, err)
		handlers.RespondInternalError(w)
		return
	}

	etag := quoteETag(file.ETag)

	w.Header().Set("Cache-Control", cacheControl)
	if etag != "" {
		w.Header().Set("ETag", etag)
		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(file.Body)
	}
}

func quoteETag(etag string) string {
	if etag == "" || strings.HasPrefix(etag, `"`) || strings.HasPrefix(etag, `W/"`) {
		return etag
	}
	return `"` + etag + `"`
}

// etagMatches implements the weak comparison If-None-Match uses
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	if strings.TrimSpace(header) == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}
