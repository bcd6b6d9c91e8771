package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// GigRepository defines the interface for gig posting data operations
type GigRepository interface {
	Create(ctx context.Context, gig *entity.Gig) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Gig, error)
	Update(ctx context.Context, gig *entity.Gig) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *GigFilterParams) ([]entity.Gig, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.GigStatus) error
}

// GigFilterParams contains filtering parameters for gig queries
type GigFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.GigStatus
	PosterID   *uuid.UUID
}
