package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentService(profileRepo *mockProfileRepo) (*DocumentService, *mockDraftRepo, *mockDraftItemRepo, *mockDocumentRepo) {
	draftItems := newMockDraftItemRepo()
	drafts := newMockDraftRepo(draftItems)
	docItems := newMockDocumentItemRepo()
	documents := newMockDocumentRepo(docItems)
	svc := NewDocumentService(drafts, draftItems, documents, docItems, profileRepo, "https://qaribu.app", 200)
	return svc, drafts, draftItems, documents
}

func TestCreateDraftPrefillsIssuerFromProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	address := "Biashara Street, Nairobi"
	profiles := newMockProfileRepo()
	require.NoError(t, profiles.Create(ctx, &entity.BusinessProfile{
		UserID:   userID,
		Name:     "Mama Njeri Traders",
		Address:  &address,
		Currency: "KES",
	}))

	svc, _, _, _ := newDocumentService(profiles)

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	assert.Equal(t, enum.DraftStepParties, draft.Step)
	assert.Equal(t, "Mama Njeri Traders", draft.IssuerName)
	require.NotNil(t, draft.IssuerDetails)
	assert.Equal(t, address, *draft.IssuerDetails)
	assert.True(t, strings.HasPrefix(draft.Number, "INV-"))
}

func TestCreateDraftRejectsUnknownKind(t *testing.T) {
	ctx := context.Background()
	svc, drafts, _, _ := newDocumentService(newMockProfileRepo())

	assert.NotPanics(t, func() {
		draft, err := svc.CreateDraft(ctx, uuid.New(), &CreateDraftInput{Kind: enum.DocumentKind(7)})
		require.Error(t, err)
		assert.Nil(t, draft)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.Code)
	})
	assert.Empty(t, drafts.drafts)
}

func TestCreateDraftNumberPrefixFollowsKind(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	quote, err := svc.CreateDraft(ctx, uuid.New(), &CreateDraftInput{Kind: enum.DocumentKindQuote})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(quote.Number, "QT-"))

	receipt, err := svc.CreateDraft(ctx, uuid.New(), &CreateDraftInput{Kind: enum.DocumentKindReceipt})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.Number, "RCT-"))
}

func TestAddItemRejectsInvalidRowsWithoutStateChange(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	cases := []struct {
		name  string
		input AddItemInput
	}{
		{"empty description", AddItemInput{Description: "   ", Quantity: 1, UnitPrice: 100}},
		{"zero quantity", AddItemInput{Description: "Cement bags", Quantity: 0, UnitPrice: 100}},
		{"negative quantity", AddItemInput{Description: "Cement bags", Quantity: -2, UnitPrice: 100}},
		{"negative price", AddItemInput{Description: "Cement bags", Quantity: 1, UnitPrice: -50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, userID, draft.ID, &tc.input)
			assert.Error(t, err)
		})
	}

	preview, err := svc.Preview(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Empty(t, preview.Draft.Items)
	assert.Zero(t, preview.Totals.Subtotal)
}

func TestWizardBackPreservesLineItems(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Cement bags", Quantity: 10, UnitPrice: 100})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Labour", Quantity: 1, UnitPrice: 5000})
	require.NoError(t, err)

	back, err := svc.PreviousStep(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DraftStepParties, back.Step)

	forward, err := svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DraftStepItems, forward.Step)

	preview, err := svc.Preview(ctx, userID, draft.ID)
	require.NoError(t, err)
	require.Len(t, preview.Draft.Items, 2)
	assert.Equal(t, "Cement bags", preview.Draft.Items[0].Description)
	assert.Equal(t, "Labour", preview.Draft.Items[1].Description)
}

func TestWizardStepsAreLinear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.PreviousStep(ctx, userID, draft.ID)
	assert.Error(t, err, "cannot go back from the first step")

	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)
	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)

	_, err = svc.NextStep(ctx, userID, draft.ID)
	assert.Error(t, err, "cannot advance past the last step")
}

func TestPreviewRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Cement bags", Quantity: 10, UnitPrice: 100})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Labour", Quantity: 1, UnitPrice: 5000})
	require.NoError(t, err)

	taxRate := 16.0
	_, err = svc.UpdateCharges(ctx, userID, draft.ID, &UpdateChargesInput{TaxRate: &taxRate})
	require.NoError(t, err)

	preview, err := svc.Preview(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.InDelta(t, 6000.0, preview.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 960.0, preview.Totals.TaxAmount, 1e-9)
	assert.InDelta(t, 6960.0, preview.Totals.Total, 1e-9)
	assert.InDelta(t, 6960.0, preview.Totals.AmountDue, 1e-9)
}

func TestQuoteDraftCarriesNoDeposit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindQuote})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Site survey", Quantity: 1, UnitPrice: 8000})
	require.NoError(t, err)

	deposit := 2000.0
	updated, err := svc.UpdateCharges(ctx, userID, draft.ID, &UpdateChargesInput{Deposit: &deposit})
	require.NoError(t, err)
	assert.Zero(t, updated.Deposit)

	preview, err := svc.Preview(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8000.0, preview.Totals.AmountDue, 1e-9)
}

func TestSyncIssuerLeavesRecipientFieldsAlone(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profiles := newMockProfileRepo()
	require.NoError(t, profiles.Create(ctx, &entity.BusinessProfile{
		UserID: userID,
		Name:   "Old Name Traders",
	}))

	svc, _, _, _ := newDocumentService(profiles)

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	toName := "Wanjiku Hardware"
	toDetails := "P.O. Box 410, Thika"
	_, err = svc.UpdateParties(ctx, userID, draft.ID, &UpdatePartiesInput{ToName: &toName, ToDetails: &toDetails})
	require.NoError(t, err)

	newAddress := "New Plaza, 3rd Floor"
	require.NoError(t, profiles.Update(ctx, &entity.BusinessProfile{
		UserID:  userID,
		Name:    "Rebranded Traders",
		Address: &newAddress,
	}))

	synced, err := svc.SyncIssuer(ctx, userID, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, "Rebranded Traders", synced.IssuerName)
	require.NotNil(t, synced.IssuerDetails)
	assert.Equal(t, newAddress, *synced.IssuerDetails)
	require.NotNil(t, synced.ToName)
	assert.Equal(t, toName, *synced.ToName)
	require.NotNil(t, synced.ToDetails)
	assert.Equal(t, toDetails, *synced.ToDetails)
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Cement bags", Quantity: 10, UnitPrice: 100})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, userID, draft.ID, uuid.New()))

	preview, err := svc.Preview(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Len(t, preview.Draft.Items, 1)
}

func TestFinalizeFreezesDocumentSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Cement bags", Quantity: 10, UnitPrice: 100})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Labour", Quantity: 1, UnitPrice: 5000})
	require.NoError(t, err)

	taxRate := 16.0
	_, err = svc.UpdateCharges(ctx, userID, draft.ID, &UpdateChargesInput{TaxRate: &taxRate})
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, userID, draft.ID, &FinalizeInput{RecipientPhone: "0712345678", MarkPending: true})
	assert.Error(t, err, "cannot finalize before reaching the preview step")

	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)
	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)

	out, err := svc.Finalize(ctx, userID, draft.ID, &FinalizeInput{RecipientPhone: "0712345678", MarkPending: true})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPending, out.Document.PaymentStatus)
	assert.InDelta(t, 6960.0, out.Document.Total, 1e-9)
	assert.InDelta(t, 6960.0, out.Document.Amount, 1e-9)
	require.Len(t, out.Document.Items, 2)

	assert.True(t, strings.HasPrefix(out.ShareWA.URL, "https://wa.me/254712345678?text="))
	assert.True(t, strings.HasPrefix(out.ShareSMS.URL, "sms:0712345678?body="))
	assert.Contains(t, out.QRCodeURL, "size=200x200")
	assert.Contains(t, out.QRCodeURL, out.Document.ID.String())

	// the draft is sealed now
	_, err = svc.AddItem(ctx, userID, draft.ID, &AddItemInput{Description: "Extra", Quantity: 1, UnitPrice: 1})
	assert.Error(t, err)

	_, err = svc.Finalize(ctx, userID, draft.ID, &FinalizeInput{})
	assert.Error(t, err, "a draft finalizes exactly once")
}

func TestFinalizeRequiresLineItems(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	draft, err := svc.CreateDraft(ctx, userID, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)
	_, err = svc.NextStep(ctx, userID, draft.ID)
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, userID, draft.ID, &FinalizeInput{})
	assert.Error(t, err)
}

func TestDraftsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newDocumentService(newMockProfileRepo())

	owner := uuid.New()
	stranger := uuid.New()

	draft, err := svc.CreateDraft(ctx, owner, &CreateDraftInput{Kind: enum.DocumentKindInvoice})
	require.NoError(t, err)

	_, err = svc.GetDraft(ctx, stranger, draft.ID)
	assert.Error(t, err)

	_, err = svc.NextStep(ctx, stranger, draft.ID)
	assert.Error(t, err)
}
