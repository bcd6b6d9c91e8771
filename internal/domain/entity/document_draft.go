package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ErrDraftStepBoundary is returned when a draft is asked to move past the
// first or last wizard step.
var ErrDraftStepBoundary = errors.New("draft step out of range")

// DocumentDraft is an in-progress document building session. It walks the
// three wizard steps Parties -> Items -> Preview and is frozen into a
// Document on finalization. Navigating backwards never discards field values.
type DocumentDraft struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind          enum.DocumentKind `gorm:"default:0" json:"kind"`
	Step          enum.DraftStep    `gorm:"default:0" json:"step"`
	Number        string            `gorm:"size:100;not null" json:"number"`
	IssuerName    string            `gorm:"size:255" json:"issuer_name"`
	IssuerDetails *string           `gorm:"type:text" json:"issuer_details,omitempty"`
	IssuerLogoURL *string           `gorm:"size:512" json:"issuer_logo_url,omitempty"`
	ToName        *string           `gorm:"size:255" json:"to_name,omitempty"`
	ToDetails     *string           `gorm:"type:text" json:"to_details,omitempty"`
	Date          time.Time         `gorm:"type:date;not null" json:"date"`
	Currency      string            `gorm:"size:10;default:'KES'" json:"currency"`
	Discount      float64           `gorm:"type:decimal(15,2);default:0" json:"discount"`
	TaxRate       float64           `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	Shipping      float64           `gorm:"type:decimal(15,2);default:0" json:"shipping"`
	Deposit       float64           `gorm:"type:decimal(15,2);default:0" json:"deposit"`
	FinalizedAt   *time.Time        `json:"finalized_at,omitempty"`
	DocumentID    *uuid.UUID        `gorm:"type:uuid" json:"document_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User  User                `gorm:"foreignKey:UserID" json:"-"`
	Items []DocumentDraftItem `gorm:"foreignKey:DraftID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new draft
func (d *DocumentDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentDraft model
func (DocumentDraft) TableName() string {
	return "document_drafts"
}

// Advance moves the draft one step forward. Transitions are strictly linear;
// there is no skipping from Parties to Preview.
func (d *DocumentDraft) Advance() error {
	if d.Step >= enum.DraftStepPreview {
		return ErrDraftStepBoundary
	}
	d.Step++
	return nil
}

// Retreat moves the draft one step back. All field values survive.
func (d *DocumentDraft) Retreat() error {
	if d.Step <= enum.DraftStepParties {
		return ErrDraftStepBoundary
	}
	d.Step--
	return nil
}

// IsFinalized reports whether the draft has already been frozen into a document
func (d *DocumentDraft) IsFinalized() bool {
	return d.FinalizedAt != nil
}

// SyncIssuer refreshes the issuer fields from the owner's business profile.
// Client-side fields (ToName, ToDetails) are deliberately left alone; only the
// issuer identity follows the profile.
func (d *DocumentDraft) SyncIssuer(profile *BusinessProfile) {
	if profile == nil {
		return
	}
	d.IssuerName = profile.Name
	d.IssuerDetails = profile.Address
	d.IssuerLogoURL = profile.LogoURL
}

// DocumentDraftItem represents one editable line item row on a draft.
// Rows are append/remove only; edits replace the row.
type DocumentDraftItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DraftID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"draft_id"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Quantity    float64        `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Position    int            `gorm:"default:0" json:"position"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Draft DocumentDraft `gorm:"foreignKey:DraftID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new draft item
func (di *DocumentDraftItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentDraftItem model
func (DocumentDraftItem) TableName() string {
	return "document_draft_items"
}
