package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// OrderRepository defines the interface for restaurant order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, vendorID uuid.UUID, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
}

// OrderItemRepository defines the interface for order item rows
type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)
}
