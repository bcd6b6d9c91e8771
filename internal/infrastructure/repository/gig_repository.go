package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	domainRepo "github.com/noid254/qaribu-api/internal/domain/repository"
	"gorm.io/gorm"
)

type gigRepository struct {
	db *gorm.DB
}

// NewGigRepository creates a new gig repository
func NewGigRepository(db *gorm.DB) domainRepo.GigRepository {
	return &gigRepository{db: db}
}

func (r *gigRepository) Create(ctx context.Context, gig *entity.Gig) error {
	return r.db.WithContext(ctx).Create(gig).Error
}

func (r *gigRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	var gig entity.Gig
	err := r.db.WithContext(ctx).First(&gig, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &gig, err
}

func (r *gigRepository) Update(ctx context.Context, gig *entity.Gig) error {
	return r.db.WithContext(ctx).Save(gig).Error
}

func (r *gigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Gig{}, "id = ?", id).Error
}

func (r *gigRepository) List(ctx context.Context, params *domainRepo.GigFilterParams) ([]entity.Gig, int64, error) {
	var gigs []entity.Gig
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Gig{})

	if params.PosterID != nil {
		query = query.Where("poster_id = ?", *params.PosterID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ? OR location ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&gigs).Error

	return gigs, total, err
}

func (r *gigRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.GigStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Gig{}).
		Where("id = ?", id).
		Update("status", status).Error
}
