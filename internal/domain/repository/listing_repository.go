package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// ListingRepository defines the interface for catalogue listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ListingFilterParams) ([]entity.Listing, int64, error)
}

// ListingFilterParams contains filtering parameters for listing queries
type ListingFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	OwnerID    *uuid.UUID
}
