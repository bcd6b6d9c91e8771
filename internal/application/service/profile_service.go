package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
)

// ProfileService manages the business identity attached to an account
type ProfileService struct {
	profileRepo repository.BusinessProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.BusinessProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetBusinessProfile retrieves the business profile of a user
func (s *ProfileService) GetBusinessProfile(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Business profile")
	}
	return profile, nil
}

// UpsertProfileInput represents the business profile input
type UpsertProfileInput struct {
	Name     string
	Address  *string
	Phone    *string
	LogoURL  *string
	Currency string
}

// UpsertBusinessProfile creates or updates the business profile of a user.
// Each account carries at most one profile.
func (s *ProfileService) UpsertBusinessProfile(ctx context.Context, userID uuid.UUID, input *UpsertProfileInput) (*entity.BusinessProfile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Business name is required"},
		})
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &entity.BusinessProfile{
			UserID:   userID,
			Currency: "KES",
		}
	}

	profile.Name = name
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.LogoURL = input.LogoURL
	if input.Currency != "" {
		profile.Currency = input.Currency
	}

	if profile.ID == uuid.Nil {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
