package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the seller-facing business identity of a user.
// Document drafts pre-fill their issuer fields from here.
type BusinessProfile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	LogoURL   *string        `gorm:"size:512" json:"logo_url,omitempty"`
	Currency  string         `gorm:"size:10;default:'KES'" json:"currency"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}
