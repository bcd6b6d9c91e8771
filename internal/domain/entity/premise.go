package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Premise represents a managed building or property that visitors check in to
type Premise struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ManagerID uuid.UUID        `gorm:"type:uuid;not null;index" json:"manager_id"`
	Name      string           `gorm:"size:255;not null" json:"name"`
	Type      enum.PremiseType `gorm:"default:0" json:"type"`
	Address   *string          `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Manager User              `gorm:"foreignKey:ManagerID" json:"-"`
	Tenants []DirectoryTenant `gorm:"foreignKey:PremiseID" json:"tenants,omitempty"`
}

// BeforeCreate generates a UUID before creating a new premise
func (p *Premise) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Premise model
func (Premise) TableName() string {
	return "premises"
}

// DirectoryTenant is an entry in a commercial premise's tenant directory.
// Visitors pick one of these as their host during check-in.
type DirectoryTenant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PremiseID uuid.UUID      `gorm:"type:uuid;not null;index" json:"premise_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Service   *string        `gorm:"size:255" json:"service,omitempty"`
	Unit      *string        `gorm:"size:100" json:"unit,omitempty"`
	AvatarURL *string        `gorm:"size:512" json:"avatar_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Premise Premise `gorm:"foreignKey:PremiseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new directory tenant
func (t *DirectoryTenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DirectoryTenant model
func (DirectoryTenant) TableName() string {
	return "directory_tenants"
}
