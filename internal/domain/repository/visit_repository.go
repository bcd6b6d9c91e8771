package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// VisitDraftRepository defines the interface for visit draft data operations
type VisitDraftRepository interface {
	Create(ctx context.Context, draft *entity.VisitDraft) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitDraft, error)
	Update(ctx context.Context, draft *entity.VisitDraft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VisitRequestRepository defines the interface for submitted visit requests
type VisitRequestRepository interface {
	Create(ctx context.Context, request *entity.VisitRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error)
	ListByPremise(ctx context.Context, premiseID uuid.UUID, params *VisitFilterParams) ([]entity.VisitRequest, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VisitStatus) error
}

// VisitFilterParams contains filtering parameters for visit request queries
type VisitFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.VisitStatus
	Search     string
}
