package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// DocumentRepository defines the interface for finalized document data operations
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.Document, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	CountByKind(ctx context.Context, userID uuid.UUID, kind enum.DocumentKind) (int64, error)
}

// DocumentFilterParams contains filtering parameters for document queries
type DocumentFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Kind          *enum.DocumentKind
	PaymentStatus *enum.PaymentStatus
	SortBy        string
	SortOrder     string
}

// DocumentItemRepository defines the interface for document item snapshots
type DocumentItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.DocumentItem) error
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentItem, error)
}
