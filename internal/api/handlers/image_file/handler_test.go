package image_file

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/images"
	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type fakeImages map[string]*domain.ImageFile

func (f fakeImages) Open(_ context.Context, key string) (*domain.ImageFile, error) {
	if key == "broken" {
		return nil, errors.New("bucket unreachable")
	}
	file, ok := f[key]
	if !ok {
		return nil, images.ErrImageNotFound
	}
	return file, nil
}

var store = fakeImages{
	"accommodations/1/a.png": {ContentType: "image/png", ETag: "abc123", Body: []byte("png-bytes")},
	"accommodations/1/b":     {ETag: `W/"weak"`, Body: []byte("raw")},
}

func serve(method, key string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/images/file/"+key, nil)
	req = mux.SetURLVars(req, map[string]string{"key": key})
	for name, values := range header {
		req.Header[name] = values
	}
	rec := httptest.NewRecorder()

	NewHandler(store, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ServesWithCachingHeaders(t *testing.T) {
	rec := serve(http.MethodGet, "accommodations/1/a.png", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `"abc123"`, rec.Header().Get("ETag"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
}

func TestHandle_DefaultsContentType(t *testing.T) {
	rec := serve(http.MethodGet, "accommodations/1/b", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, `W/"weak"`, rec.Header().Get("ETag"))
}

func TestHandle_IfNoneMatch(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{"exact", "accommodations/1/a.png", `"abc123"`, http.StatusNotModified},
		{"weak form of strong tag", "accommodations/1/a.png", `W/"abc123"`, http.StatusNotModified},
		{"one of many", "accommodations/1/a.png", `"zzz", "abc123"`, http.StatusNotModified},
		{"wildcard", "accommodations/1/a.png", `*`, http.StatusNotModified},
		{"weak stored tag", "accommodations/1/b", `"weak"`, http.StatusNotModified},
		{"stale", "accommodations/1/a.png", `"old"`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(http.MethodGet, tt.key, http.Header{"If-None-Match": {tt.header}})

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNotModified {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestHandle_HeadHasNoBody(t *testing.T) {
	rec := serve(http.MethodHead, "accommodations/1/a.png", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "accommodations/9/missing.jpg", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(http.MethodGet, "broken", nil).Code)
}
