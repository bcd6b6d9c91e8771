package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// PremiseRepository defines the interface for premise data operations
type PremiseRepository interface {
	Create(ctx context.Context, premise *entity.Premise) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Premise, error)
	GetWithTenants(ctx context.Context, id uuid.UUID) (*entity.Premise, error)
	Update(ctx context.Context, premise *entity.Premise) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Premise, int64, error)
}

// DirectoryTenantRepository defines the interface for premise directory entries
type DirectoryTenantRepository interface {
	Create(ctx context.Context, tenant *entity.DirectoryTenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DirectoryTenant, error)
	Update(ctx context.Context, tenant *entity.DirectoryTenant) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPremise(ctx context.Context, premiseID uuid.UUID, search string) ([]entity.DirectoryTenant, error)
}
