package update_images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/service/images"
	"github.com/Liandro13/method-passion-site/internal/service/images/models"
	"github.com/Liandro13/method-passion-site/pkg/logger"
)

type fakeImages struct {
	reordered []int64
	updated   *models.UpdateImageRequest
	err       error
}

func (f *fakeImages) Update(_ context.Context, req *models.UpdateImageRequest) (*models.ImageResponse, error) {
	f.updated = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ImageResponse{ID: req.ID, IsPrimary: req.IsPrimary != nil && *req.IsPrimary}, nil
}

func (f *fakeImages) Reorder(_ context.Context, ids []int64) error {
	f.reordered = ids
	return f.err
}

func serve(svc *fakeImages, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/images", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Reorder(t *testing.T) {
	svc := &fakeImages{}

	rec := serve(svc, `{"reorder":[{"id":9},{"id":4},{"id":7}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, []int64{9, 4, 7}, svc.reordered)
	assert.Nil(t, svc.updated)
}

func TestHandle_SingleUpdate(t *testing.T) {
	svc := &fakeImages{}

	rec := serve(svc, `{"id":4,"is_primary":true,"caption":"Pool"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updated)
	assert.Equal(t, int64(4), svc.updated.ID)
	assert.Equal(t, "Pool", *svc.updated.Caption)
	assert.Nil(t, svc.updated.DisplayOrder)
	assert.Contains(t, rec.Body.String(), `"is_primary":true`)
	assert.Nil(t, svc.reordered)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing id", `{"caption":"Pool"}`, nil, http.StatusBadRequest},
		{"bad reorder id", `{"reorder":[{"id":0}]}`, nil, http.StatusBadRequest},
		{"negative order", `{"id":4,"display_order":-1}`, nil, http.StatusBadRequest},
		{"unknown image", `{"id":4,"caption":"x"}`, images.ErrImageNotFound, http.StatusNotFound},
		{"reorder across accommodations", `{"reorder":[{"id":1},{"id":2}]}`, images.ErrInvalidInput, http.StatusBadRequest},
		{"storage", `{"id":4,"caption":"x"}`, images.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeImages{err: tt.err}, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
