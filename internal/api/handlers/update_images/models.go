package update_images

import (
	"github.com/Liandro13/method-passion-site/internal/service/images/models"
)

type ReorderItem struct {
	ID int64 `json:"id" validate:"gt=0"`
}

// UpdateImagesRequest is either a reorder of whole list or a change to one image
type UpdateImagesRequest struct {
	Reorder []ReorderItem `json:"reorder" validate:"omitempty,dive"`

	ID           int64   `json:"id" validate:"gte=0"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	Caption      *string `json:"caption" validate:"omitempty,max=500"`
	IsPrimary    *bool   `json:"is_primary"`
}

type UpdateImagesResponse struct {
	Success bool                  `json:"success"`
	Image   *models.ImageResponse `json:"image,omitempty"`
}

func (r *UpdateImagesRequest) IsReorder() bool {
	return r.Reorder != nil
}

func (r *UpdateImagesRequest) ReorderIDs() []int64 {
	ids := make([]int64, 0, len(r.Reorder))
	for _, item := range r.Reorder {
		ids = append(ids, item.ID)
	}
	return ids
}

func (r *UpdateImagesRequest) ToServiceRequest() *models.UpdateImageRequest {
	return &models.UpdateImageRequest{
		ID:           r.ID,
		DisplayOrder: r.DisplayOrder,
		Caption:      r.Caption,
		IsPrimary:    r.IsPrimary,
	}
}
