package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// DraftRepository defines the interface for document draft data operations
type DraftRepository interface {
	Create(ctx context.Context, draft *entity.DocumentDraft) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.DocumentDraft, error)
	Update(ctx context.Context, draft *entity.DocumentDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.DocumentDraft, int64, error)
}

// DraftItemRepository defines the interface for draft line item rows
type DraftItemRepository interface {
	Create(ctx context.Context, item *entity.DocumentDraftItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentDraftItem, error)
	GetByDraftID(ctx context.Context, draftID uuid.UUID) ([]entity.DocumentDraftItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	NextPosition(ctx context.Context, draftID uuid.UUID) (int, error)
}
