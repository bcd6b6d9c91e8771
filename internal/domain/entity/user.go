package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account in the marketplace
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName string         `gorm:"size:255;not null" json:"first_name"`
	LastName  string         `gorm:"size:255;not null" json:"last_name"`
	Email     string         `gorm:"size:255;unique;not null" json:"email"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Password  string         `gorm:"size:255" json:"-"`
	Photo     *string        `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	BusinessProfile *BusinessProfile `gorm:"foreignKey:UserID" json:"business_profile,omitempty"`
	Documents       []Document       `gorm:"foreignKey:UserID" json:"-"`
	Listings        []Listing        `gorm:"foreignKey:OwnerID" json:"-"`
	Gigs            []Gig            `gorm:"foreignKey:PosterID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
