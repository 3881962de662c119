package domain

import "time"

// Accommodation is a rentable unit with its gallery
type Accommodation struct {
	ID           int64
	Name         string
	Descriptions map[string]string // language code -> text
	MaxGuests    int
	Amenities    []string
	ImageURL     string // legacy cover image, used when the gallery is empty
	Images       []AccommodationImage
	UpdatedAt    time.Time
}

// PrimaryImageURL picks the primary gallery image, then the first one, then the legacy cover
func (a *Accommodation) PrimaryImageURL() string {
	for _, img := range a.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(a.Images) > 0 {
		return a.Images[0].URL
	}
	return a.ImageURL
}

// AccommodationImage is one gallery entry. At most one image per accommodation is primary.
type AccommodationImage struct {
	ID              int64
	AccommodationID int64
	BlobKey         string
	URL             string
	DisplayOrder    int
	Caption         string
	IsPrimary       bool
	CreatedAt       time.Time
}

// AccommodationPatch is a partial update of the editable content
type AccommodationPatch struct {
	Name         *string
	Descriptions map[string]string // only the languages present are written
	MaxGuests    *int
	Amenities    *[]string
}

func (p AccommodationPatch) IsEmpty() bool {
	return p.Name == nil && len(p.Descriptions) == 0 && p.MaxGuests == nil && p.Amenities == nil
}

// ImagePatch is a single-image metadata update
type ImagePatch struct {
	DisplayOrder *int
	Caption      *string
	IsPrimary    *bool
}

func (p ImagePatch) IsEmpty() bool {
	return p.DisplayOrder == nil && p.Caption == nil && p.IsPrimary == nil
}

// ImageFile is a blob served through the file proxy
type ImageFile struct {
	ContentType string
	ETag        string
	Body        []byte
}
