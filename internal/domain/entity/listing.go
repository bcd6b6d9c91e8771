package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxListingImages caps how many images a listing may carry. Adds beyond the
// cap are rejected, not silently truncated.
const MaxListingImages = 5

// ErrGalleryFull is returned when a listing already holds MaxListingImages
var ErrGalleryFull = errors.New("listing image gallery is full")

// ImageList is a bounded, ordered collection of image URLs (or data URLs).
// Stored as a JSON array column.
type ImageList []string

// Append adds an image, enforcing the capacity bound
func (l *ImageList) Append(url string) error {
	if len(*l) >= MaxListingImages {
		return ErrGalleryFull
	}
	*l = append(*l, url)
	return nil
}

// Value implements driver.Valuer
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list column type %T", value)
	}
}

// Listing represents a peer catalogue item offered on the marketplace
type Listing struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Category    *string        `gorm:"size:100;index" json:"category,omitempty"`
	Price       float64        `gorm:"type:decimal(15,2);default:0" json:"price"`
	Currency    string         `gorm:"size:10;default:'KES'" json:"currency"`
	Images      ImageList      `gorm:"type:jsonb" json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new listing
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Listing model
func (Listing) TableName() string {
	return "listings"
}
