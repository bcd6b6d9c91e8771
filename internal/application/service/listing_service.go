package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// ListingService manages catalogue listings
type ListingService struct {
	listingRepo repository.ListingRepository
}

// NewListingService creates a new listing service
func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

// CreateListingInput represents a new catalogue listing
type CreateListingInput struct {
	Title       string
	Description *string
	Category    *string
	Price       float64
	Currency    string
	Images      []string
}

// CreateListing publishes a listing under the calling owner. The image
// gallery bound applies at creation too.
func (s *ListingService) CreateListing(ctx context.Context, ownerID uuid.UUID, input *CreateListingInput) (*entity.Listing, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Title) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(input.Images) > entity.MaxListingImages {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "images", Message: "A listing holds at most 5 images"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	listing := &entity.Listing{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Currency:    "KES",
		Images:      entity.ImageList(input.Images),
	}
	if input.Currency != "" {
		listing.Currency = input.Currency
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// GetListing retrieves a listing
func (s *ListingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperror.NewNotFoundError("Listing")
	}
	return listing, nil
}

// ListListings lists catalogue listings with search and category filters
func (s *ListingService) ListListings(ctx context.Context, params *repository.ListingFilterParams) (*pagination.PaginatedResult[entity.Listing], error) {
	params.Pagination.Validate()
	listings, total, err := s.listingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(listings, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateListingInput represents editable listing fields
type UpdateListingInput struct {
	Title       *string
	Description *string
	Category    *string
	Price       *float64
}

// UpdateListing edits a listing, scoped to its owner
func (s *ListingService) UpdateListing(ctx context.Context, ownerID, listingID uuid.UUID, input *UpdateListingInput) (*entity.Listing, error) {
	listing, err := s.ownedListing(ctx, ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "title", Message: "Title is required"},
			})
		}
		listing.Title = title
	}
	if input.Description != nil {
		listing.Description = input.Description
	}
	if input.Category != nil {
		listing.Category = input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "Price cannot be negative"},
			})
		}
		listing.Price = *input.Price
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// AddListingImage appends an image to a listing's gallery. A full gallery
// rejects the add instead of dropping images.
func (s *ListingService) AddListingImage(ctx context.Context, ownerID, listingID uuid.UUID, imageURL string) (*entity.Listing, error) {
	listing, err := s.ownedListing(ctx, ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(imageURL) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "image", Message: "Image URL is required"},
		})
	}
	if err := listing.Images.Append(imageURL); err != nil {
		return nil, apperror.NewUnprocessableError("Listing already holds the maximum of 5 images")
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// RemoveListingImage removes an image by position
func (s *ListingService) RemoveListingImage(ctx context.Context, ownerID, listingID uuid.UUID, index int) (*entity.Listing, error) {
	listing, err := s.ownedListing(ctx, ownerID, listingID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(listing.Images) {
		return nil, apperror.NewBadRequestError("No image at that position")
	}
	listing.Images = append(listing.Images[:index], listing.Images[index+1:]...)

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// DeleteListing removes a listing, scoped to its owner
func (s *ListingService) DeleteListing(ctx context.Context, ownerID, listingID uuid.UUID) error {
	if _, err := s.ownedListing(ctx, ownerID, listingID); err != nil {
		return err
	}
	return s.listingRepo.Delete(ctx, listingID)
}

// ownedListing loads a listing and checks the caller owns it
func (s *ListingService) ownedListing(ctx context.Context, ownerID, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperror.NewNotFoundError("Listing")
	}
	if listing.OwnerID != ownerID {
		return nil, apperror.ErrForbidden
	}
	return listing, nil
}
