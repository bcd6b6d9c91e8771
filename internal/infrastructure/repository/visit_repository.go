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

type visitDraftRepository struct {
	db *gorm.DB
}

// NewVisitDraftRepository creates a new visit draft repository
func NewVisitDraftRepository(db *gorm.DB) domainRepo.VisitDraftRepository {
	return &visitDraftRepository{db: db}
}

func (r *visitDraftRepository) Create(ctx context.Context, draft *entity.VisitDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *visitDraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitDraft, error) {
	var draft entity.VisitDraft
	err := r.db.WithContext(ctx).First(&draft, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &draft, err
}

func (r *visitDraftRepository) Update(ctx context.Context, draft *entity.VisitDraft) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

func (r *visitDraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.VisitDraft{}, "id = ?", id).Error
}

type visitRequestRepository struct {
	db *gorm.DB
}

// NewVisitRequestRepository creates a new visit request repository
func NewVisitRequestRepository(db *gorm.DB) domainRepo.VisitRequestRepository {
	return &visitRequestRepository{db: db}
}

func (r *visitRequestRepository) Create(ctx context.Context, request *entity.VisitRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *visitRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	var request entity.VisitRequest
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &request, err
}

func (r *visitRequestRepository) ListByPremise(ctx context.Context, premiseID uuid.UUID, params *domainRepo.VisitFilterParams) ([]entity.VisitRequest, int64, error) {
	var requests []entity.VisitRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.VisitRequest{}).Where("premise_id = ?", premiseID)

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Where("visitor_name ILIKE ? OR host_name ILIKE ? OR target_unit ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, total, err
}

func (r *visitRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VisitStatus) error {
	return r.db.WithContext(ctx).Model(&entity.VisitRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
