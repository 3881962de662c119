package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryImageURL(t *testing.T) {
	acc := Accommodation{ImageURL: "/legacy.jpg"}
	assert.Equal(t, "/legacy.jpg", acc.PrimaryImageURL())

	acc.Images = []AccommodationImage{{URL: "/a.jpg"}, {URL: "/b.jpg"}}
	assert.Equal(t, "/a.jpg", acc.PrimaryImageURL())

	acc.Images[1].IsPrimary = true
	assert.Equal(t, "/b.jpg", acc.PrimaryImageURL())
}
