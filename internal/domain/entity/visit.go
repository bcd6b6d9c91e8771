package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AdminHostID is the sentinel host identifier recorded on direct visit
// requests that are not addressed to a specific directory tenant.
const AdminHostID = "admin"

var (
	// ErrVisitStepInvalid is returned when an operation is attempted from
	// the wrong wizard step.
	ErrVisitStepInvalid = errors.New("operation not allowed from current step")
	// ErrVisitNoPath is returned when a draft cannot retreat because it was
	// started straight at visitor details via a host deep link.
	ErrVisitNoPath = errors.New("draft has no selection step to return to")
)

// VisitDraft is an in-progress check-in session. It walks
// TypeSelection -> {CommercialSelect | ResidenceInput} -> VisitorDetails and
// remembers which branch it took so Back lands on the right step.
type VisitDraft struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	PremiseID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"premise_id"`
	PremiseName string           `gorm:"size:255" json:"premise_name"`
	PremiseType enum.PremiseType `gorm:"default:0" json:"premise_type"`
	Step        enum.VisitStep   `gorm:"default:0" json:"step"`
	TypeChosen  bool             `gorm:"default:false" json:"type_chosen"`
	TenantID    *uuid.UUID       `gorm:"type:uuid" json:"tenant_id,omitempty"`
	HostName    *string          `gorm:"size:255" json:"host_name,omitempty"`
	TargetUnit  *string          `gorm:"size:100" json:"target_unit,omitempty"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	RequestID   *uuid.UUID       `gorm:"type:uuid" json:"request_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Premise Premise `gorm:"foreignKey:PremiseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new visit draft
func (d *VisitDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VisitDraft model
func (VisitDraft) TableName() string {
	return "visit_drafts"
}

// ChooseType moves the draft from type selection into the matching branch
func (d *VisitDraft) ChooseType(premiseType enum.PremiseType) error {
	if d.Step != enum.VisitStepTypeSelection {
		return ErrVisitStepInvalid
	}
	d.PremiseType = premiseType
	d.TypeChosen = true
	if premiseType == enum.PremiseTypeCommercial {
		d.Step = enum.VisitStepCommercialSelect
	} else {
		d.Step = enum.VisitStepResidenceInput
	}
	return nil
}

// BindTenant binds a directory tenant as host and advances to visitor details.
// Any manually entered unit is cleared: the tenant's unit wins.
func (d *VisitDraft) BindTenant(tenant *DirectoryTenant) error {
	if d.Step != enum.VisitStepCommercialSelect {
		return ErrVisitStepInvalid
	}
	d.TenantID = &tenant.ID
	name := tenant.Name
	d.HostName = &name
	d.TargetUnit = tenant.Unit
	d.Step = enum.VisitStepVisitorDetails
	return nil
}

// BindUnit records a manually entered unit and advances to visitor details
func (d *VisitDraft) BindUnit(unit string) error {
	if d.Step != enum.VisitStepResidenceInput {
		return ErrVisitStepInvalid
	}
	d.TargetUnit = &unit
	d.Step = enum.VisitStepVisitorDetails
	return nil
}

// Retreat walks back from visitor details to whichever selection step the
// draft came through
func (d *VisitDraft) Retreat() error {
	if d.Step != enum.VisitStepVisitorDetails {
		return ErrVisitStepInvalid
	}
	if !d.TypeChosen {
		return ErrVisitNoPath
	}
	if d.PremiseType == enum.PremiseTypeCommercial {
		d.Step = enum.VisitStepCommercialSelect
	} else {
		d.Step = enum.VisitStepResidenceInput
	}
	return nil
}

// IsSubmitted reports whether the draft already produced a visit request
func (d *VisitDraft) IsSubmitted() bool {
	return d.SubmittedAt != nil
}

// RequestType derives Mediated when a directory tenant was chosen, Direct otherwise
func (d *VisitDraft) RequestType() enum.RequestType {
	if d.TenantID != nil {
		return enum.RequestTypeMediated
	}
	return enum.RequestTypeDirect
}

// HostID returns the tenant id for mediated requests and the admin sentinel
// for direct ones
func (d *VisitDraft) HostID() string {
	if d.TenantID != nil {
		return d.TenantID.String()
	}
	return AdminHostID
}

// VisitRequest is a submitted visitor access request. Approval, expiry and
// check-in transitions are owned by the premise side.
type VisitRequest struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	PremiseID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"premise_id"`
	PremiseName    string           `gorm:"size:255" json:"premise_name"`
	PremiseType    enum.PremiseType `gorm:"default:0" json:"premise_type"`
	TenantID       *uuid.UUID       `gorm:"type:uuid" json:"tenant_id,omitempty"`
	HostID         string           `gorm:"size:100;not null" json:"host_id"`
	HostName       *string          `gorm:"size:255" json:"host_name,omitempty"`
	TargetUnit     *string          `gorm:"size:100" json:"target_unit,omitempty"`
	VisitorName    *string          `gorm:"size:255" json:"visitor_name,omitempty"`
	VisitorPhone   *string          `gorm:"size:50" json:"visitor_phone,omitempty"`
	VisitorPurpose string           `gorm:"size:100;not null" json:"visitor_purpose"`
	VehicleReg     *string          `gorm:"size:50" json:"vehicle_reg,omitempty"`
	RequestType    enum.RequestType `gorm:"default:0" json:"request_type"`
	Status         enum.VisitStatus `gorm:"default:0" json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Premise Premise          `gorm:"foreignKey:PremiseID" json:"-"`
	Tenant  *DirectoryTenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

// BeforeCreate generates a UUID before creating a new visit request
func (r *VisitRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VisitRequest model
func (VisitRequest) TableName() string {
	return "visit_requests"
}
