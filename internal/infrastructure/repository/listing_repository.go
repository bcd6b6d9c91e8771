package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	domainRepo "github.com/noid254/qaribu-api/internal/domain/repository"
	"gorm.io/gorm"
)

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *gorm.DB) domainRepo.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &listing, err
}

func (r *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Listing{}, "id = ?", id).Error
}

func (r *listingRepository) List(ctx context.Context, params *domainRepo.ListingFilterParams) ([]entity.Listing, int64, error) {
	var listings []entity.Listing
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Listing{})

	if params.OwnerID != nil {
		query = query.Where("owner_id = ?", *params.OwnerID)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&listings).Error

	return listings, total, err
}
