package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// VisitService drives the visitor check-in wizard and the access requests it
// submits
type VisitService struct {
	visitDraftRepo   repository.VisitDraftRepository
	visitRequestRepo repository.VisitRequestRepository
	premiseRepo      repository.PremiseRepository
	tenantRepo       repository.DirectoryTenantRepository
}

// NewVisitService creates a new visit service
func NewVisitService(
	visitDraftRepo repository.VisitDraftRepository,
	visitRequestRepo repository.VisitRequestRepository,
	premiseRepo repository.PremiseRepository,
	tenantRepo repository.DirectoryTenantRepository,
) *VisitService {
	return &VisitService{
		visitDraftRepo:   visitDraftRepo,
		visitRequestRepo: visitRequestRepo,
		premiseRepo:      premiseRepo,
		tenantRepo:       tenantRepo,
	}
}

// StartVisit opens a new check-in session at the type selection step
func (s *VisitService) StartVisit(ctx context.Context, premiseID uuid.UUID) (*entity.VisitDraft, error) {
	premise, err := s.premiseRepo.GetByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil {
		return nil, apperror.NewNotFoundError("Premise")
	}

	draft := &entity.VisitDraft{
		PremiseID:   premise.ID,
		PremiseName: premise.Name,
		PremiseType: premise.Type,
		Step:        enum.VisitStepTypeSelection,
	}
	if err := s.visitDraftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// StartVisitForHost opens a check-in session from a host's deep link. The
// tenant is pre-bound and the session lands directly on visitor details;
// since no selection step was walked, Back is unavailable from here.
func (s *VisitService) StartVisitForHost(ctx context.Context, premiseID, tenantID uuid.UUID) (*entity.VisitDraft, error) {
	premise, err := s.premiseRepo.GetByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil {
		return nil, apperror.NewNotFoundError("Premise")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || tenant.PremiseID != premise.ID {
		return nil, apperror.NewNotFoundError("Host")
	}

	name := tenant.Name
	draft := &entity.VisitDraft{
		PremiseID:   premise.ID,
		PremiseName: premise.Name,
		PremiseType: enum.PremiseTypeCommercial,
		Step:        enum.VisitStepVisitorDetails,
		TenantID:    &tenant.ID,
		HostName:    &name,
		TargetUnit:  tenant.Unit,
	}
	if err := s.visitDraftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetVisitDraft retrieves a check-in session
func (s *VisitService) GetVisitDraft(ctx context.Context, draftID uuid.UUID) (*entity.VisitDraft, error) {
	draft, err := s.visitDraftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Check-in session")
	}
	return draft, nil
}

// ChoosePremiseType records the visitor's premise type choice and moves the
// session into the matching branch
func (s *VisitService) ChoosePremiseType(ctx context.Context, draftID uuid.UUID, premiseType enum.PremiseType) (*entity.VisitDraft, error) {
	if !premiseType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown premise type")
	}

	draft, err := s.openDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.ChooseType(premiseType); err != nil {
		return nil, apperror.NewBadRequestError("Premise type can only be chosen at the start of check-in")
	}
	if err := s.visitDraftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectTenant binds a directory tenant as the host and advances to visitor
// details. Any unit entered on the residence branch beforehand is discarded
// in favour of the tenant's unit.
func (s *VisitService) SelectTenant(ctx context.Context, draftID, tenantID uuid.UUID) (*entity.VisitDraft, error) {
	draft, err := s.openDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || tenant.PremiseID != draft.PremiseID {
		return nil, apperror.NewNotFoundError("Host")
	}

	if err := draft.BindTenant(tenant); err != nil {
		return nil, apperror.NewBadRequestError("A host can only be selected from the host list step")
	}
	if err := s.visitDraftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetUnit records a manually entered house or unit number and advances to
// visitor details. Blank input is rejected and the session stays put.
func (s *VisitService) SetUnit(ctx context.Context, draftID uuid.UUID, unit string) (*entity.VisitDraft, error) {
	draft, err := s.openDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(unit)
	if trimmed == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "unit", Message: "House or unit number is required"},
		})
	}

	if err := draft.BindUnit(trimmed); err != nil {
		return nil, apperror.NewBadRequestError("A unit can only be entered on the residence step")
	}
	if err := s.visitDraftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GoBack returns the session from visitor details to the selection step it
// came through. Sessions opened via a host deep link have nowhere to go back to.
func (s *VisitService) GoBack(ctx context.Context, draftID uuid.UUID) (*entity.VisitDraft, error) {
	draft, err := s.openDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.Retreat(); err != nil {
		if errors.Is(err, entity.ErrVisitNoPath) {
			return nil, apperror.NewBadRequestError("This check-in was opened from a host link and cannot go back")
		}
		return nil, apperror.NewBadRequestError("Nothing to go back to from this step")
	}
	if err := s.visitDraftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SubmitVisitInput represents the visitor details form
type SubmitVisitInput struct {
	VisitorName  string
	VisitorPhone string
	Purpose      string
	VehicleReg   string
}

// SubmitVisit turns a completed check-in session into a pending access
// request. Purpose is mandatory; the vehicle registration is stored uppercased.
func (s *VisitService) SubmitVisit(ctx context.Context, draftID uuid.UUID, input *SubmitVisitInput) (*entity.VisitRequest, error) {
	draft, err := s.visitDraftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Check-in session")
	}
	if draft.IsSubmitted() {
		return nil, apperror.NewConflictError("Check-in has already been submitted")
	}
	if draft.Step != enum.VisitStepVisitorDetails {
		return nil, apperror.NewBadRequestError("Complete the check-in steps before submitting")
	}

	purpose := strings.TrimSpace(input.Purpose)
	if purpose == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "purpose", Message: "Purpose of visit is required"},
		})
	}

	request := &entity.VisitRequest{
		PremiseID:      draft.PremiseID,
		PremiseName:    draft.PremiseName,
		PremiseType:    draft.PremiseType,
		TenantID:       draft.TenantID,
		HostID:         draft.HostID(),
		HostName:       draft.HostName,
		TargetUnit:     draft.TargetUnit,
		VisitorPurpose: purpose,
		RequestType:    draft.RequestType(),
		Status:         enum.VisitStatusPending,
	}
	if name := strings.TrimSpace(input.VisitorName); name != "" {
		request.VisitorName = &name
	}
	if phone := strings.TrimSpace(input.VisitorPhone); phone != "" {
		request.VisitorPhone = &phone
	}
	if reg := strings.ToUpper(strings.TrimSpace(input.VehicleReg)); reg != "" {
		request.VehicleReg = &reg
	}

	if err := s.visitRequestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	now := time.Now()
	draft.SubmittedAt = &now
	draft.RequestID = &request.ID
	if err := s.visitDraftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return request, nil
}

// GetVisitRequest retrieves a submitted access request
func (s *VisitService) GetVisitRequest(ctx context.Context, requestID uuid.UUID) (*entity.VisitRequest, error) {
	request, err := s.visitRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Visit request")
	}
	return request, nil
}

// ListVisitRequests lists the access requests of a premise, scoped to its manager
func (s *VisitService) ListVisitRequests(ctx context.Context, managerID, premiseID uuid.UUID, params *repository.VisitFilterParams) (*pagination.PaginatedResult[entity.VisitRequest], error) {
	premise, err := s.premiseRepo.GetByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil || premise.ManagerID != managerID {
		return nil, apperror.NewNotFoundError("Premise")
	}

	params.Pagination.Validate()
	requests, total, err := s.visitRequestRepo.ListByPremise(ctx, premiseID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(requests, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateVisitStatus moves an access request between states, scoped to the
// premise manager
func (s *VisitService) UpdateVisitStatus(ctx context.Context, managerID, requestID uuid.UUID, status enum.VisitStatus) (*entity.VisitRequest, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown visit status")
	}

	request, err := s.visitRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperror.NewNotFoundError("Visit request")
	}

	premise, err := s.premiseRepo.GetByID(ctx, request.PremiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil || premise.ManagerID != managerID {
		return nil, apperror.ErrForbidden
	}

	if err := s.visitRequestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	request.Status = status
	return request, nil
}

// openDraft loads a check-in session and rejects submitted ones
func (s *VisitService) openDraft(ctx context.Context, draftID uuid.UUID) (*entity.VisitDraft, error) {
	draft, err := s.visitDraftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Check-in session")
	}
	if draft.IsSubmitted() {
		return nil, apperror.NewConflictError("Check-in has already been submitted")
	}
	return draft, nil
}
