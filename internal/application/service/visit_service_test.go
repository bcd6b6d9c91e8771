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

func newVisitFixture(t *testing.T, premiseType enum.PremiseType) (*VisitService, *entity.Premise, *mockTenantRepo) {
	t.Helper()
	ctx := context.Background()

	tenants := newMockTenantRepo()
	premises := newMockPremiseRepo(tenants)
	svc := NewVisitService(newMockVisitDraftRepo(), newMockVisitRequestRepo(), premises, tenants)

	premise := &entity.Premise{
		ManagerID: uuid.New(),
		Name:      "Sarit Centre",
		Type:      premiseType,
	}
	require.NoError(t, premises.Create(ctx, premise))

	return svc, premise, tenants
}

func addTenant(t *testing.T, tenants *mockTenantRepo, premiseID uuid.UUID, name, service, unit string) *entity.DirectoryTenant {
	t.Helper()
	tenant := &entity.DirectoryTenant{PremiseID: premiseID, Name: name}
	if service != "" {
		tenant.Service = &service
	}
	if unit != "" {
		tenant.Unit = &unit
	}
	require.NoError(t, tenants.Create(context.Background(), tenant))
	return tenant
}

func TestCommercialCheckInProducesMediatedRequest(t *testing.T) {
	ctx := context.Background()
	svc, premise, tenants := newVisitFixture(t, enum.PremiseTypeCommercial)
	tenant := addTenant(t, tenants, premise.ID, "John's Electricals", "Electrical repairs", "B-12")

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepTypeSelection, draft.Step)

	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeCommercial)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepCommercialSelect, draft.Step)

	draft, err = svc.SelectTenant(ctx, draft.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepVisitorDetails, draft.Step)
	require.NotNil(t, draft.TargetUnit)
	assert.Equal(t, "B-12", *draft.TargetUnit)

	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{
		VisitorName: "Atieno Odhiambo",
		Purpose:     "Delivery",
		VehicleReg:  "kbz 412x",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.RequestTypeMediated, request.RequestType)
	assert.Equal(t, tenant.ID.String(), request.HostID)
	require.NotNil(t, request.HostName)
	assert.Equal(t, "John's Electricals", *request.HostName)
	assert.Equal(t, enum.VisitStatusPending, request.Status)
	require.NotNil(t, request.VehicleReg)
	assert.Equal(t, "KBZ 412X", *request.VehicleReg)
}

func TestResidenceCheckInProducesDirectRequest(t *testing.T) {
	ctx := context.Background()
	svc, premise, _ := newVisitFixture(t, enum.PremiseTypeResidence)

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)

	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepResidenceInput, draft.Step)

	draft, err = svc.SetUnit(ctx, draft.ID, "House 14")
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepVisitorDetails, draft.Step)

	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Family visit"})
	require.NoError(t, err)

	assert.Equal(t, enum.RequestTypeDirect, request.RequestType)
	assert.Equal(t, entity.AdminHostID, request.HostID)
	require.NotNil(t, request.TargetUnit)
	assert.Equal(t, "House 14", *request.TargetUnit)
}

func TestSetUnitRejectsBlankInput(t *testing.T) {
	ctx := context.Background()
	svc, premise, _ := newVisitFixture(t, enum.PremiseTypeResidence)

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)
	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)

	for _, unit := range []string{"", "   ", "\t"} {
		_, err = svc.SetUnit(ctx, draft.ID, unit)
		assert.Error(t, err)
	}

	// still waiting on the residence step, so submitting is impossible
	current, err := svc.GetVisitDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepResidenceInput, current.Step)

	_, err = svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Family visit"})
	assert.Error(t, err)
}

func TestSelectTenantOnlyOnCommercialBranch(t *testing.T) {
	ctx := context.Background()
	svc, premise, tenants := newVisitFixture(t, enum.PremiseTypeCommercial)
	tenant := addTenant(t, tenants, premise.ID, "Salon Flair", "Hair and beauty", "2F-08")

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)

	// went down the residence branch first, then came back and switched
	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)
	draft, err = svc.SetUnit(ctx, draft.ID, "House 9")
	require.NoError(t, err)
	draft, err = svc.GoBack(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepResidenceInput, draft.Step)

	_, err = svc.SelectTenant(ctx, draft.ID, tenant.ID)
	assert.Error(t, err, "host selection only exists on the commercial branch")
}

func TestBackReturnsToTheBranchTaken(t *testing.T) {
	ctx := context.Background()
	svc, premise, tenants := newVisitFixture(t, enum.PremiseTypeCommercial)
	tenant := addTenant(t, tenants, premise.ID, "John's Electricals", "Electrical repairs", "B-12")

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)
	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeCommercial)
	require.NoError(t, err)
	draft, err = svc.SelectTenant(ctx, draft.ID, tenant.ID)
	require.NoError(t, err)

	draft, err = svc.GoBack(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepCommercialSelect, draft.Step)
}

func TestHostDeepLinkSkipsSelectionAndBlocksBack(t *testing.T) {
	ctx := context.Background()
	svc, premise, tenants := newVisitFixture(t, enum.PremiseTypeCommercial)
	tenant := addTenant(t, tenants, premise.ID, "Salon Flair", "Hair and beauty", "2F-08")

	draft, err := svc.StartVisitForHost(ctx, premise.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStepVisitorDetails, draft.Step)
	require.NotNil(t, draft.HostName)
	assert.Equal(t, "Salon Flair", *draft.HostName)

	_, err = svc.GoBack(ctx, draft.ID)
	assert.Error(t, err)

	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Appointment"})
	require.NoError(t, err)
	assert.Equal(t, enum.RequestTypeMediated, request.RequestType)
	assert.Equal(t, tenant.ID.String(), request.HostID)
}

func TestSubmitVisitRequiresPurpose(t *testing.T) {
	ctx := context.Background()
	svc, premise, _ := newVisitFixture(t, enum.PremiseTypeResidence)

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)
	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)
	draft, err = svc.SetUnit(ctx, draft.ID, "House 14")
	require.NoError(t, err)

	_, err = svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "  "})
	assert.Error(t, err)

	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Family visit"})
	require.NoError(t, err)

	// a session submits once
	_, err = svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Family visit"})
	assert.Error(t, err)
	assert.NotNil(t, request)
}

func TestVisitStatusUpdatesRejectUnknownValues(t *testing.T) {
	ctx := context.Background()
	svc, premise, _ := newVisitFixture(t, enum.PremiseTypeResidence)

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)

	_, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseType(9))
	assert.Error(t, err)

	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)
	draft, err = svc.SetUnit(ctx, draft.ID, "House 2")
	require.NoError(t, err)
	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Delivery"})
	require.NoError(t, err)

	_, err = svc.UpdateVisitStatus(ctx, premise.ManagerID, request.ID, enum.VisitStatus(9))
	require.Error(t, err)

	fetched, err := svc.GetVisitRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStatusPending, fetched.Status)
}

func TestVisitStatusUpdatesAreManagerScoped(t *testing.T) {
	ctx := context.Background()
	svc, premise, _ := newVisitFixture(t, enum.PremiseTypeResidence)

	draft, err := svc.StartVisit(ctx, premise.ID)
	require.NoError(t, err)
	draft, err = svc.ChoosePremiseType(ctx, draft.ID, enum.PremiseTypeResidence)
	require.NoError(t, err)
	draft, err = svc.SetUnit(ctx, draft.ID, "House 14")
	require.NoError(t, err)
	request, err := svc.SubmitVisit(ctx, draft.ID, &SubmitVisitInput{Purpose: "Family visit"})
	require.NoError(t, err)

	_, err = svc.UpdateVisitStatus(ctx, uuid.New(), request.ID, enum.VisitStatusApproved)
	assert.Error(t, err)

	updated, err := svc.UpdateVisitStatus(ctx, premise.ManagerID, request.ID, enum.VisitStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, enum.VisitStatusApproved, updated.Status)
}
