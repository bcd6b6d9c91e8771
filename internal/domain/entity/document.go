package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Document represents a finalized invoice, quote or receipt. It is created
// once when a draft is confirmed and never edited afterwards; the item rows
// are a snapshot decoupled from the draft they came from.
type Document struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind          enum.DocumentKind  `gorm:"default:0" json:"kind"`
	Number        string             `gorm:"size:100;not null;index" json:"number"`
	IssuerName    string             `gorm:"size:255;not null" json:"issuer_name"`
	IssuerDetails *string            `gorm:"type:text" json:"issuer_details,omitempty"`
	ClientName    *string            `gorm:"size:255" json:"client_name,omitempty"`
	ClientDetails *string            `gorm:"type:text" json:"client_details,omitempty"`
	Date          time.Time          `gorm:"type:date;not null" json:"date"`
	Currency      string             `gorm:"size:10;default:'KES'" json:"currency"`
	Subtotal      float64            `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	Discount      float64            `gorm:"type:decimal(15,2);default:0" json:"discount"`
	TaxRate       float64            `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	TaxAmount     float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Shipping      float64            `gorm:"type:decimal(15,2);default:0" json:"shipping"`
	Deposit       float64            `gorm:"type:decimal(15,2);default:0" json:"deposit"`
	Total         float64            `gorm:"type:decimal(15,2);default:0" json:"total"`
	Amount        float64            `gorm:"type:decimal(15,2);default:0" json:"amount"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User  User           `gorm:"foreignKey:UserID" json:"-"`
	Items []DocumentItem `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// DocumentItem represents one billable row snapshotted into a document
type DocumentItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	SubTotal    float64        `gorm:"type:decimal(15,2);not null" json:"sub_total"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new document item
func (di *DocumentItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentItem model
func (DocumentItem) TableName() string {
	return "document_items"
}
