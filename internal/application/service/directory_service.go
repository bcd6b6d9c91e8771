package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// DirectoryService manages premises and their tenant directories
type DirectoryService struct {
	premiseRepo repository.PremiseRepository
	tenantRepo  repository.DirectoryTenantRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(premiseRepo repository.PremiseRepository, tenantRepo repository.DirectoryTenantRepository) *DirectoryService {
	return &DirectoryService{
		premiseRepo: premiseRepo,
		tenantRepo:  tenantRepo,
	}
}

// CreatePremiseInput represents a new premise
type CreatePremiseInput struct {
	Name    string
	Type    enum.PremiseType
	Address *string
}

// CreatePremise registers a premise under the calling manager
func (s *DirectoryService) CreatePremise(ctx context.Context, managerID uuid.UUID, input *CreatePremiseInput) (*entity.Premise, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Premise name is required"},
		})
	}

	premise := &entity.Premise{
		ManagerID: managerID,
		Name:      name,
		Type:      input.Type,
		Address:   input.Address,
	}
	if err := s.premiseRepo.Create(ctx, premise); err != nil {
		return nil, err
	}
	return premise, nil
}

// GetPremise retrieves a premise together with its tenant directory, narrowed
// by an optional search query
func (s *DirectoryService) GetPremise(ctx context.Context, premiseID uuid.UUID, search string) (*entity.Premise, error) {
	premise, err := s.premiseRepo.GetWithTenants(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil {
		return nil, apperror.NewNotFoundError("Premise")
	}
	premise.Tenants = FilterTenants(premise.Tenants, search)
	return premise, nil
}

// ListPremises lists premises, optionally filtered by a name search
func (s *DirectoryService) ListPremises(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Premise], error) {
	params.Validate()
	premises, total, err := s.premiseRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(premises, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// AddTenantInput represents a new directory entry
type AddTenantInput struct {
	Name      string
	Service   *string
	Unit      *string
	AvatarURL *string
}

// AddTenant adds an entry to a premise's directory, scoped to its manager
func (s *DirectoryService) AddTenant(ctx context.Context, managerID, premiseID uuid.UUID, input *AddTenantInput) (*entity.DirectoryTenant, error) {
	premise, err := s.managedPremise(ctx, managerID, premiseID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Tenant name is required"},
		})
	}

	tenant := &entity.DirectoryTenant{
		PremiseID: premise.ID,
		Name:      name,
		Service:   input.Service,
		Unit:      input.Unit,
		AvatarURL: input.AvatarURL,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// UpdateTenantInput represents editable directory entry fields
type UpdateTenantInput struct {
	Name      *string
	Service   *string
	Unit      *string
	AvatarURL *string
}

// UpdateTenant edits a directory entry, scoped to the premise manager
func (s *DirectoryService) UpdateTenant(ctx context.Context, managerID, tenantID uuid.UUID, input *UpdateTenantInput) (*entity.DirectoryTenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	if _, err := s.managedPremise(ctx, managerID, tenant.PremiseID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Tenant name is required"},
			})
		}
		tenant.Name = name
	}
	if input.Service != nil {
		tenant.Service = input.Service
	}
	if input.Unit != nil {
		tenant.Unit = input.Unit
	}
	if input.AvatarURL != nil {
		tenant.AvatarURL = input.AvatarURL
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// RemoveTenant deletes a directory entry, scoped to the premise manager
func (s *DirectoryService) RemoveTenant(ctx context.Context, managerID, tenantID uuid.UUID) error {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return apperror.NewNotFoundError("Tenant")
	}
	if _, err := s.managedPremise(ctx, managerID, tenant.PremiseID); err != nil {
		return err
	}
	return s.tenantRepo.Delete(ctx, tenantID)
}

// ListTenants lists a premise's directory, filtered by a search query
func (s *DirectoryService) ListTenants(ctx context.Context, premiseID uuid.UUID, search string) ([]entity.DirectoryTenant, error) {
	premise, err := s.premiseRepo.GetByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil {
		return nil, apperror.NewNotFoundError("Premise")
	}
	return s.tenantRepo.ListByPremise(ctx, premiseID, search)
}

// FilterTenants narrows a directory to entries whose name or service contains
// the query, case-insensitively. An empty query keeps everything.
func FilterTenants(tenants []entity.DirectoryTenant, query string) []entity.DirectoryTenant {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tenants
	}

	filtered := make([]entity.DirectoryTenant, 0, len(tenants))
	for _, tenant := range tenants {
		if strings.Contains(strings.ToLower(tenant.Name), query) {
			filtered = append(filtered, tenant)
			continue
		}
		if tenant.Service != nil && strings.Contains(strings.ToLower(*tenant.Service), query) {
			filtered = append(filtered, tenant)
		}
	}
	return filtered
}

// managedPremise loads a premise and checks the caller manages it
func (s *DirectoryService) managedPremise(ctx context.Context, managerID, premiseID uuid.UUID) (*entity.Premise, error) {
	premise, err := s.premiseRepo.GetByID(ctx, premiseID)
	if err != nil {
		return nil, err
	}
	if premise == nil {
		return nil, apperror.NewNotFoundError("Premise")
	}
	if premise.ManagerID != managerID {
		return nil, apperror.ErrForbidden
	}
	return premise, nil
}
