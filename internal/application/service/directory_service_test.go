package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDirectory() []entity.DirectoryTenant {
	electrical := "Electrical repairs"
	beauty := "Hair and beauty"
	pharmacy := "Chemist"
	return []entity.DirectoryTenant{
		{ID: uuid.New(), Name: "John's Electricals", Service: &electrical},
		{ID: uuid.New(), Name: "Salon Flair", Service: &beauty},
		{ID: uuid.New(), Name: "Afya Pharmacy", Service: &pharmacy},
		{ID: uuid.New(), Name: "Mwangi & Sons"},
	}
}

func TestFilterTenantsMatchesNameCaseInsensitively(t *testing.T) {
	filtered := FilterTenants(sampleDirectory(), "elect")
	require.Len(t, filtered, 1)
	assert.Equal(t, "John's Electricals", filtered[0].Name)

	filtered = FilterTenants(sampleDirectory(), "ELECT")
	require.Len(t, filtered, 1)
	assert.Equal(t, "John's Electricals", filtered[0].Name)
}

func TestFilterTenantsMatchesServiceField(t *testing.T) {
	filtered := FilterTenants(sampleDirectory(), "beauty")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Salon Flair", filtered[0].Name)
}

func TestFilterTenantsEmptyQueryKeepsEverything(t *testing.T) {
	directory := sampleDirectory()
	assert.Len(t, FilterTenants(directory, ""), len(directory))
	assert.Len(t, FilterTenants(directory, "   "), len(directory))
}

func TestFilterTenantsNoMatches(t *testing.T) {
	assert.Empty(t, FilterTenants(sampleDirectory(), "plumbing"))
}

func TestGetPremiseNarrowsDirectoryBySearch(t *testing.T) {
	ctx := context.Background()
	tenants := newMockTenantRepo()
	premises := newMockPremiseRepo(tenants)
	svc := NewDirectoryService(premises, tenants)

	managerID := uuid.New()
	premise, err := svc.CreatePremise(ctx, managerID, &CreatePremiseInput{
		Name: "Sarit Centre",
		Type: enum.PremiseTypeCommercial,
	})
	require.NoError(t, err)

	electrical := "Electrical repairs"
	_, err = svc.AddTenant(ctx, managerID, premise.ID, &AddTenantInput{
		Name:    "John's Electricals",
		Service: &electrical,
	})
	require.NoError(t, err)
	_, err = svc.AddTenant(ctx, managerID, premise.ID, &AddTenantInput{Name: "Salon Flair"})
	require.NoError(t, err)

	full, err := svc.GetPremise(ctx, premise.ID, "")
	require.NoError(t, err)
	assert.Len(t, full.Tenants, 2)

	narrowed, err := svc.GetPremise(ctx, premise.ID, "electrical")
	require.NoError(t, err)
	require.Len(t, narrowed.Tenants, 1)
	assert.Equal(t, "John's Electricals", narrowed.Tenants[0].Name)
}

func TestDirectoryManagementIsManagerScoped(t *testing.T) {
	ctx := context.Background()
	tenants := newMockTenantRepo()
	premises := newMockPremiseRepo(tenants)
	svc := NewDirectoryService(premises, tenants)

	managerID := uuid.New()
	premise, err := svc.CreatePremise(ctx, managerID, &CreatePremiseInput{
		Name: "Sarit Centre",
		Type: enum.PremiseTypeCommercial,
	})
	require.NoError(t, err)

	service := "Electrical repairs"
	tenant, err := svc.AddTenant(ctx, managerID, premise.ID, &AddTenantInput{
		Name:    "John's Electricals",
		Service: &service,
	})
	require.NoError(t, err)

	_, err = svc.AddTenant(ctx, uuid.New(), premise.ID, &AddTenantInput{Name: "Intruder Shop"})
	assert.Error(t, err)

	err = svc.RemoveTenant(ctx, uuid.New(), tenant.ID)
	assert.Error(t, err)

	require.NoError(t, svc.RemoveTenant(ctx, managerID, tenant.ID))

	listed, err := svc.ListTenants(ctx, premise.ID, "")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestAddTenantRequiresName(t *testing.T) {
	ctx := context.Background()
	tenants := newMockTenantRepo()
	premises := newMockPremiseRepo(tenants)
	svc := NewDirectoryService(premises, tenants)

	managerID := uuid.New()
	premise, err := svc.CreatePremise(ctx, managerID, &CreatePremiseInput{
		Name: "Sarit Centre",
		Type: enum.PremiseTypeCommercial,
	})
	require.NoError(t, err)

	_, err = svc.AddTenant(ctx, managerID, premise.ID, &AddTenantInput{Name: "  "})
	assert.Error(t, err)
}
