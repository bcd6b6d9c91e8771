package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/billing"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
	"github.com/noid254/qaribu-api/pkg/share"
	"github.com/noid254/qaribu-api/pkg/utils"
)

// OrderService manages restaurant-style orders placed against a vendor
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// OrderItemInput represents one dish or product row on an incoming order
type OrderItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// CreateOrderInput represents a new order
type CreateOrderInput struct {
	CustomerName string
	Phone        *string
	TableOrRoom  *string
	Note         *string
	TaxRate      float64
	Items        []OrderItemInput
}

// CreateOrder places an order against a vendor. Totals are computed
// server-side; client-supplied amounts are never trusted.
func (s *OrderService) CreateOrder(ctx context.Context, vendorID uuid.UUID, input *CreateOrderInput) (*entity.Order, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "An order needs at least one item"})
	}
	for i, item := range input.Items {
		if strings.TrimSpace(item.Description) == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].description", i), Message: "Description is required"})
		}
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "Quantity must be greater than zero"})
		}
		if item.UnitPrice < 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].unit_price", i), Message: "Unit price cannot be negative"})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	lineItems := make([]billing.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		lineItems = append(lineItems, billing.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	totals := billing.Calculate(lineItems, billing.Charges{TaxRate: input.TaxRate})

	count, err := s.orderRepo.CountByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		VendorID:     vendorID,
		Reference:    utils.GenerateReferenceNo("ORD", int(count)+1),
		CustomerName: strings.TrimSpace(input.CustomerName),
		Phone:        input.Phone,
		TableOrRoom:  input.TableOrRoom,
		Note:         input.Note,
		Currency:     "KES",
		Subtotal:     totals.Subtotal,
		TaxRate:      input.TaxRate,
		TaxAmount:    totals.TaxAmount,
		Total:        totals.Total,
		Status:       enum.OrderStatusPlaced,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			OrderID:     order.ID,
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SubTotal:    item.Quantity * item.UnitPrice,
		})
	}
	if err := s.orderItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// GetOrder retrieves an order with its items, scoped to the vendor
func (s *OrderService) GetOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.VendorID != vendorID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists a vendor's orders with search and status filters
func (s *OrderService) ListOrders(ctx context.Context, vendorID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	params.Pagination.Validate()
	orders, total, err := s.orderRepo.List(ctx, vendorID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateOrderStatus moves an order through Placed, Confirmed, Served, Canceled
func (s *OrderService) UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order status")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.VendorID != vendorID {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// ShareOrderInput represents a share link request for an order
type ShareOrderInput struct {
	RecipientPhone string
	Channel        share.Channel
}

// ShareOrder builds a messaging deep link summarizing an order
func (s *OrderService) ShareOrder(ctx context.Context, vendorID, orderID uuid.UUID, input *ShareOrderInput) (*share.Link, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.VendorID != vendorID {
		return nil, apperror.NewNotFoundError("Order")
	}

	link := share.BuildMessage(input.Channel, input.RecipientPhone, orderShareText(order))
	return &link, nil
}

// orderShareText renders the human-readable message body for an order
func orderShareText(order *entity.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s for %s\n", order.Reference, order.CustomerName)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%g x %s - %s %s\n", item.Quantity, item.Description, order.Currency, billing.FormatAmount(item.SubTotal))
	}
	fmt.Fprintf(&b, "Total: %s %s", order.Currency, billing.FormatAmount(order.Total))
	return b.String()
}
