package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Gig represents a short-term job posting on the marketplace
type Gig struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PosterID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"poster_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Budget      *float64       `gorm:"type:decimal(15,2)" json:"budget,omitempty"`
	Currency    string         `gorm:"size:10;default:'KES'" json:"currency"`
	Location    *string        `gorm:"size:255" json:"location,omitempty"`
	Contact     *string        `gorm:"size:100" json:"contact,omitempty"`
	Status      enum.GigStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Poster User `gorm:"foreignKey:PosterID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new gig
func (g *Gig) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Gig model
func (Gig) TableName() string {
	return "gigs"
}
