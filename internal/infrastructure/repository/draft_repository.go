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

type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new document draft repository
func NewDraftRepository(db *gorm.DB) domainRepo.DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) Create(ctx context.Context, draft *entity.DocumentDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *draftRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error) {
	var draft entity.DocumentDraft
	err := r.db.WithContext(ctx).First(&draft, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &draft, err
}

func (r *draftRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error) {
	var draft entity.DocumentDraft
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&draft, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &draft, err
}

func (r *draftRepository) Update(ctx context.Context, draft *entity.DocumentDraft) error {
	return r.db.WithContext(ctx).Save(draft).Error
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DocumentDraft{}, "id = ?", id).Error
}

func (r *draftRepository) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.DocumentDraft, int64, error) {
	var drafts []entity.DocumentDraft
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DocumentDraft{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&drafts).Error

	return drafts, total, err
}

type draftItemRepository struct {
	db *gorm.DB
}

// NewDraftItemRepository creates a new draft item repository
func NewDraftItemRepository(db *gorm.DB) domainRepo.DraftItemRepository {
	return &draftItemRepository{db: db}
}

func (r *draftItemRepository) Create(ctx context.Context, item *entity.DocumentDraftItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *draftItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraftItem, error) {
	var item entity.DocumentDraftItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *draftItemRepository) GetByDraftID(ctx context.Context, draftID uuid.UUID) ([]entity.DocumentDraftItem, error) {
	var items []entity.DocumentDraftItem
	err := r.db.WithContext(ctx).
		Where("draft_id = ?", draftID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

func (r *draftItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DocumentDraftItem{}, "id = ?", id).Error
}

func (r *draftItemRepository) NextPosition(ctx context.Context, draftID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.DocumentDraftItem{}).
		Where("draft_id = ?", draftID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max + 1, nil
}
