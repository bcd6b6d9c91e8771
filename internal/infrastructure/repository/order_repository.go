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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, vendorID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where("vendor_id = ?", vendorID)

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error
	return count, err
}

type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository creates a new order item repository
func NewOrderItemRepository(db *gorm.DB) domainRepo.OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) CreateBatch(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderItemRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
