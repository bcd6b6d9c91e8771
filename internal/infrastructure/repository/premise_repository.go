package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	domainRepo "github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/pagination"
	"gorm.io/gorm"
)

type premiseRepository struct {
	db *gorm.DB
}

// NewPremiseRepository creates a new premise repository
func NewPremiseRepository(db *gorm.DB) domainRepo.PremiseRepository {
	return &premiseRepository{db: db}
}

func (r *premiseRepository) Create(ctx context.Context, premise *entity.Premise) error {
	return r.db.WithContext(ctx).Create(premise).Error
}

func (r *premiseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Premise, error) {
	var premise entity.Premise
	err := r.db.WithContext(ctx).First(&premise, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &premise, err
}

func (r *premiseRepository) GetWithTenants(ctx context.Context, id uuid.UUID) (*entity.Premise, error) {
	var premise entity.Premise
	err := r.db.WithContext(ctx).
		Preload("Tenants").
		First(&premise, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &premise, err
}

func (r *premiseRepository) Update(ctx context.Context, premise *entity.Premise) error {
	return r.db.WithContext(ctx).Save(premise).Error
}

func (r *premiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Premise{}, "id = ?", id).Error
}

func (r *premiseRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Premise, int64, error) {
	var premises []entity.Premise
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Premise{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&premises).Error

	return premises, total, err
}

type directoryTenantRepository struct {
	db *gorm.DB
}

// NewDirectoryTenantRepository creates a new directory tenant repository
func NewDirectoryTenantRepository(db *gorm.DB) domainRepo.DirectoryTenantRepository {
	return &directoryTenantRepository{db: db}
}

func (r *directoryTenantRepository) Create(ctx context.Context, tenant *entity.DirectoryTenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *directoryTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryTenant, error) {
	var tenant entity.DirectoryTenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tenant, err
}

func (r *directoryTenantRepository) Update(ctx context.Context, tenant *entity.DirectoryTenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

func (r *directoryTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DirectoryTenant{}, "id = ?", id).Error
}

func (r *directoryTenantRepository) ListByPremise(ctx context.Context, premiseID uuid.UUID, search string) ([]entity.DirectoryTenant, error) {
	var tenants []entity.DirectoryTenant

	query := r.db.WithContext(ctx).Where("premise_id = ?", premiseID)

	// Empty query returns the full directory unfiltered
	if search != "" {
		query = query.Where("name ILIKE ? OR service ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	err := query.Order("name ASC").Find(&tenants).Error
	return tenants, err
}
