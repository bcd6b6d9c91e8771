package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// GigService manages short-term job postings
type GigService struct {
	gigRepo repository.GigRepository
}

// NewGigService creates a new gig service
func NewGigService(gigRepo repository.GigRepository) *GigService {
	return &GigService{gigRepo: gigRepo}
}

// CreateGigInput represents a new gig posting
type CreateGigInput struct {
	Title       string
	Description *string
	Budget      *float64
	Currency    string
	Location    *string
	Contact     *string
}

// CreateGig publishes a gig under the calling poster
func (s *GigService) CreateGig(ctx context.Context, posterID uuid.UUID, input *CreateGigInput) (*entity.Gig, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Title) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if input.Budget != nil && *input.Budget < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "budget", Message: "Budget cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	gig := &entity.Gig{
		PosterID:    posterID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Budget:      input.Budget,
		Currency:    "KES",
		Location:    input.Location,
		Contact:     input.Contact,
		Status:      enum.GigStatusOpen,
	}
	if input.Currency != "" {
		gig.Currency = input.Currency
	}

	if err := s.gigRepo.Create(ctx, gig); err != nil {
		return nil, err
	}
	return gig, nil
}

// GetGig retrieves a gig posting
func (s *GigService) GetGig(ctx context.Context, gigID uuid.UUID) (*entity.Gig, error) {
	gig, err := s.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig == nil {
		return nil, apperror.NewNotFoundError("Gig")
	}
	return gig, nil
}

// ListGigs lists gig postings with search and status filters
func (s *GigService) ListGigs(ctx context.Context, params *repository.GigFilterParams) (*pagination.PaginatedResult[entity.Gig], error) {
	params.Pagination.Validate()
	gigs, total, err := s.gigRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(gigs, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateGigInput represents editable gig fields
type UpdateGigInput struct {
	Title       *string
	Description *string
	Budget      *float64
	Location    *string
	Contact     *string
}

// UpdateGig edits a gig, scoped to its poster
func (s *GigService) UpdateGig(ctx context.Context, posterID, gigID uuid.UUID, input *UpdateGigInput) (*entity.Gig, error) {
	gig, err := s.postedGig(ctx, posterID, gigID)
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
		gig.Title = title
	}
	if input.Description != nil {
		gig.Description = input.Description
	}
	if input.Budget != nil {
		if *input.Budget < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "budget", Message: "Budget cannot be negative"},
			})
		}
		gig.Budget = input.Budget
	}
	if input.Location != nil {
		gig.Location = input.Location
	}
	if input.Contact != nil {
		gig.Contact = input.Contact
	}

	if err := s.gigRepo.Update(ctx, gig); err != nil {
		return nil, err
	}
	return gig, nil
}

// UpdateGigStatus moves a gig between Open, Taken and Closed
func (s *GigService) UpdateGigStatus(ctx context.Context, posterID, gigID uuid.UUID, status enum.GigStatus) (*entity.Gig, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown gig status")
	}

	gig, err := s.postedGig(ctx, posterID, gigID)
	if err != nil {
		return nil, err
	}

	if err := s.gigRepo.UpdateStatus(ctx, gigID, status); err != nil {
		return nil, err
	}
	gig.Status = status
	return gig, nil
}

// DeleteGig removes a gig, scoped to its poster
func (s *GigService) DeleteGig(ctx context.Context, posterID, gigID uuid.UUID) error {
	if _, err := s.postedGig(ctx, posterID, gigID); err != nil {
		return err
	}
	return s.gigRepo.Delete(ctx, gigID)
}

// postedGig loads a gig and checks the caller posted it
func (s *GigService) postedGig(ctx context.Context, posterID, gigID uuid.UUID) (*entity.Gig, error) {
	gig, err := s.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig == nil {
		return nil, apperror.NewNotFoundError("Gig")
	}
	if gig.PosterID != posterID {
		return nil, apperror.ErrForbidden
	}
	return gig, nil
}
