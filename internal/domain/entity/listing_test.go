package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListAppendEnforcesBound(t *testing.T) {
	var gallery ImageList
	for i := 0; i < MaxListingImages; i++ {
		require.NoError(t, gallery.Append("https://cdn.qaribu.app/img/a.jpg"))
	}
	assert.Len(t, gallery, MaxListingImages)

	err := gallery.Append("https://cdn.qaribu.app/img/overflow.jpg")
	assert.ErrorIs(t, err, ErrGalleryFull)
	assert.Len(t, gallery, MaxListingImages, "a rejected add leaves the gallery untouched")
}

func TestImageListScanRoundTrip(t *testing.T) {
	gallery := ImageList{"https://cdn.qaribu.app/img/a.jpg", "data:image/png;base64,iVBOR"}

	value, err := gallery.Value()
	require.NoError(t, err)

	var scanned ImageList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, gallery, scanned)

	var empty ImageList
	require.NoError(t, empty.Scan(nil))
	assert.Empty(t, empty)
}
