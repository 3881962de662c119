package blobstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

var extensionsByType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/avif": "avif",
}

// ExtensionFor maps an accepted image content type to a file extension
func ExtensionFor(contentType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := extensionsByType[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	return ext, nil
}

// NewImageKey builds accommodations/{id}/{unix-ms}-{uuid}.{ext}
func NewImageKey(accommodationID int64, contentType string, now time.Time) (string, error) {
	ext, err := ExtensionFor(contentType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/%d-%s.%s",
		domain.AccommodationKeyspace, accommodationID, now.UnixMilli(), uuid.NewString(), ext), nil
}

// PublicURL is the proxy path the API serves the key under
func PublicURL(key string) string {
	return domain.ImageURLPrefix + key
}
