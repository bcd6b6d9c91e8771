package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
	"github.com/noid254/qaribu-api/pkg/share"
)

// OrderHandler handles restaurant order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest represents one order line
type OrderItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateOrderRequest represents the order creation body
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Phone        *string            `json:"phone"`
	TableOrRoom  *string            `json:"table_or_room"`
	Note         *string            `json:"note"`
	TaxRate      float64            `json:"tax_rate"`
	Items        []OrderItemRequest `json:"items" binding:"required"`
}

// Create handles placing an order. Totals are computed server-side.
// @Summary Create Order
// @Description Place an order against the current vendor
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body CreateOrderRequest true "Order details"
// @Success 201 {object} response.APIResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), *userID, &service.CreateOrderInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		TableOrRoom:  req.TableOrRoom,
		Note:         req.Note,
		TaxRate:      req.TaxRate,
		Items:        items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", order)
}

// Get handles fetching an order
// @Summary Get Order
// @Description Get an order with its lines
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// List handles listing the vendor's orders
// @Summary List Orders
// @Description List the current vendor's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Customer or reference search"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			if status := enum.OrderStatus(parsed); status.IsValid() {
				params.Status = &status
			}
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// UpdateOrderStatusRequest represents the status update body
type UpdateOrderStatusRequest struct {
	Status enum.OrderStatus `json:"status"`
}

// UpdateStatus handles moving an order between states
// @Summary Update Order Status
// @Description Move an order between placed, confirmed, served and canceled
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), *userID, orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// ShareOrderRequest represents the order share body
type ShareOrderRequest struct {
	RecipientPhone string `json:"recipient_phone"`
	Channel        string `json:"channel" binding:"required,oneof=sms whatsapp"`
}

// Share handles building a messaging link for an order summary
// @Summary Share Order
// @Description Build an SMS or WhatsApp link summarizing an order
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body ShareOrderRequest true "Recipient and channel"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/share [post]
func (h *OrderHandler) Share(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req ShareOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.orderService.ShareOrder(c.Request.Context(), *userID, orderID, &service.ShareOrderInput{
		RecipientPhone: req.RecipientPhone,
		Channel:        share.Channel(req.Channel),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share link generated", link)
}
