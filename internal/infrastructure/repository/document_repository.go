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

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var documents []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("number ILIKE ? OR client_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&documents).Error

	return documents, total, err
}

func (r *documentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

func (r *documentRepository) CountByKind(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&count).Error
	return count, err
}

type documentItemRepository struct {
	db *gorm.DB
}

// NewDocumentItemRepository creates a new document item repository
func NewDocumentItemRepository(db *gorm.DB) domainRepo.DocumentItemRepository {
	return &documentItemRepository{db: db}
}

func (r *documentItemRepository) CreateBatch(ctx context.Context, items []entity.DocumentItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *documentItemRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error) {
	var items []entity.DocumentItem
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}
