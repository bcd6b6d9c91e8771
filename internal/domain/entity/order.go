package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a restaurant-style order placed against a vendor.
// Totals are computed server-side with the shared billing calculator and
// stored at creation.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	VendorID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Reference    string           `gorm:"size:100;not null;index" json:"reference"`
	CustomerName string           `gorm:"size:255;not null" json:"customer_name"`
	Phone        *string          `gorm:"size:50" json:"phone,omitempty"`
	TableOrRoom  *string          `gorm:"size:100" json:"table_or_room,omitempty"`
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	Currency     string           `gorm:"size:10;default:'KES'" json:"currency"`
	Subtotal     float64          `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxRate      float64          `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount    float64          `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total        float64          `gorm:"type:decimal(15,2);default:0" json:"total"`
	Status       enum.OrderStatus `gorm:"default:0" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Vendor User        `gorm:"foreignKey:VendorID" json:"-"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents one dish or product row on an order
type OrderItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	SubTotal    float64        `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
