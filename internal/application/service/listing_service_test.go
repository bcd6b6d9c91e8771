package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddListingImageRejectsWhenGalleryFull(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(newMockListingRepo())
	ownerID := uuid.New()

	listing, err := svc.CreateListing(ctx, ownerID, &CreateListingInput{
		Title: "Handmade kiondo basket",
		Price: 1500,
		Images: []string{
			"https://cdn.qaribu.app/img/1.jpg",
			"https://cdn.qaribu.app/img/2.jpg",
			"https://cdn.qaribu.app/img/3.jpg",
			"https://cdn.qaribu.app/img/4.jpg",
		},
	})
	require.NoError(t, err)

	updated, err := svc.AddListingImage(ctx, ownerID, listing.ID, "https://cdn.qaribu.app/img/5.jpg")
	require.NoError(t, err)
	assert.Len(t, updated.Images, entity.MaxListingImages)

	_, err = svc.AddListingImage(ctx, ownerID, listing.ID, "https://cdn.qaribu.app/img/6.jpg")
	assert.Error(t, err)

	current, err := svc.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, current.Images, entity.MaxListingImages, "the rejected image was not stored")
}

func TestCreateListingRejectsOversizedGallery(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(newMockListingRepo())

	images := make([]string, entity.MaxListingImages+1)
	for i := range images {
		images[i] = "https://cdn.qaribu.app/img/a.jpg"
	}

	_, err := svc.CreateListing(ctx, uuid.New(), &CreateListingInput{
		Title:  "Handmade kiondo basket",
		Price:  1500,
		Images: images,
	})
	assert.Error(t, err)
}

func TestListingEditsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(newMockListingRepo())
	ownerID := uuid.New()

	listing, err := svc.CreateListing(ctx, ownerID, &CreateListingInput{
		Title: "Handmade kiondo basket",
		Price: 1500,
	})
	require.NoError(t, err)

	price := 1800.0
	_, err = svc.UpdateListing(ctx, uuid.New(), listing.ID, &UpdateListingInput{Price: &price})
	assert.Error(t, err)

	updated, err := svc.UpdateListing(ctx, ownerID, listing.ID, &UpdateListingInput{Price: &price})
	require.NoError(t, err)
	assert.InDelta(t, 1800.0, updated.Price, 1e-9)
}

func TestRemoveListingImageByPosition(t *testing.T) {
	ctx := context.Background()
	svc := NewListingService(newMockListingRepo())
	ownerID := uuid.New()

	listing, err := svc.CreateListing(ctx, ownerID, &CreateListingInput{
		Title:  "Handmade kiondo basket",
		Price:  1500,
		Images: []string{"a.jpg", "b.jpg", "c.jpg"},
	})
	require.NoError(t, err)

	updated, err := svc.RemoveListingImage(ctx, ownerID, listing.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.ImageList{"a.jpg", "c.jpg"}, updated.Images)

	_, err = svc.RemoveListingImage(ctx, ownerID, listing.ID, 5)
	assert.Error(t, err)
}
