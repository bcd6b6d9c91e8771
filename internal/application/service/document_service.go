package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/domain/billing"
	"github.com/noid254/qaribu-api/internal/domain/entity"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
	"github.com/noid254/qaribu-api/pkg/share"
	"github.com/noid254/qaribu-api/pkg/utils"
)

// DocumentService drives the three-step document builder and the finalized
// document records it produces
type DocumentService struct {
	draftRepo     repository.DraftRepository
	draftItemRepo repository.DraftItemRepository
	documentRepo  repository.DocumentRepository
	docItemRepo   repository.DocumentItemRepository
	profileRepo   repository.BusinessProfileRepository
	publicBaseURL string
	qrSize        int
}

// NewDocumentService creates a new document service
func NewDocumentService(
	draftRepo repository.DraftRepository,
	draftItemRepo repository.DraftItemRepository,
	documentRepo repository.DocumentRepository,
	docItemRepo repository.DocumentItemRepository,
	profileRepo repository.BusinessProfileRepository,
	publicBaseURL string,
	qrSize int,
) *DocumentService {
	return &DocumentService{
		draftRepo:     draftRepo,
		draftItemRepo: draftItemRepo,
		documentRepo:  documentRepo,
		docItemRepo:   docItemRepo,
		profileRepo:   profileRepo,
		publicBaseURL: publicBaseURL,
		qrSize:        qrSize,
	}
}

// CreateDraftInput represents the input for starting a draft session
type CreateDraftInput struct {
	Kind enum.DocumentKind
}

// CreateDraft opens a new draft at the parties step. Issuer fields are
// prefilled from the caller's business profile when one exists; the document
// number gets a generated default the user can edit later.
func (s *DocumentService) CreateDraft(ctx context.Context, userID uuid.UUID, input *CreateDraftInput) (*entity.DocumentDraft, error) {
	if !input.Kind.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "kind", Message: "Unknown document kind"},
		})
	}

	draft := &entity.DocumentDraft{
		UserID:   userID,
		Kind:     input.Kind,
		Step:     enum.DraftStepParties,
		Number:   utils.GenerateDocumentNumber(input.Kind.NumberPrefix()),
		Date:     time.Now(),
		Currency: "KES",
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		draft.SyncIssuer(profile)
		if profile.Currency != "" {
			draft.Currency = profile.Currency
		}
	}

	if err := s.draftRepo.Create(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// GetDraft retrieves a draft with its line items, scoped to the owner
func (s *DocumentService) GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := s.draftRepo.GetWithItems(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return draft, nil
}

// ListDrafts lists the caller's draft sessions
func (s *DocumentService) ListDrafts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DocumentDraft], error) {
	params.Validate()
	drafts, total, err := s.draftRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(drafts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdatePartiesInput represents the editable fields of the parties step
type UpdatePartiesInput struct {
	Number        *string
	Date          *time.Time
	IssuerName    *string
	IssuerDetails *string
	ToName        *string
	ToDetails     *string
}

// UpdateParties updates the parties-step fields of a draft. Fields left nil
// are untouched, and nothing entered on the other steps is reset.
func (s *DocumentService) UpdateParties(ctx context.Context, userID, draftID uuid.UUID, input *UpdatePartiesInput) (*entity.DocumentDraft, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		number := strings.TrimSpace(*input.Number)
		if number == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "number", Message: "Document number cannot be empty"},
			})
		}
		draft.Number = number
	}
	if input.Date != nil {
		draft.Date = *input.Date
	}
	if input.IssuerName != nil {
		draft.IssuerName = *input.IssuerName
	}
	if input.IssuerDetails != nil {
		draft.IssuerDetails = input.IssuerDetails
	}
	if input.ToName != nil {
		draft.ToName = input.ToName
	}
	if input.ToDetails != nil {
		draft.ToDetails = input.ToDetails
	}

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateChargesInput represents the document-level adjustment fields
type UpdateChargesInput struct {
	Discount *float64
	TaxRate  *float64
	Shipping *float64
	Deposit  *float64
}

// UpdateCharges updates discount, tax rate, shipping and deposit on a draft.
// Quotes never carry a deposit.
func (s *DocumentService) UpdateCharges(ctx context.Context, userID, draftID uuid.UUID, input *UpdateChargesInput) (*entity.DocumentDraft, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if input.Discount != nil && *input.Discount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	if input.TaxRate != nil && *input.TaxRate < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_rate", Message: "Tax rate cannot be negative"})
	}
	if input.Shipping != nil && *input.Shipping < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "shipping", Message: "Shipping cannot be negative"})
	}
	if input.Deposit != nil && *input.Deposit < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "deposit", Message: "Deposit cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.Discount != nil {
		draft.Discount = *input.Discount
	}
	if input.TaxRate != nil {
		draft.TaxRate = *input.TaxRate
	}
	if input.Shipping != nil {
		draft.Shipping = *input.Shipping
	}
	if input.Deposit != nil {
		draft.Deposit = *input.Deposit
	}
	if draft.Kind == enum.DocumentKindQuote {
		draft.Deposit = 0
	}

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// NextStep advances a draft one step forward
func (s *DocumentService) NextStep(ctx context.Context, userID, draftID uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.Advance(); err != nil {
		return nil, apperror.NewBadRequestError("Draft is already at the last step")
	}
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// PreviousStep moves a draft one step back without discarding anything
func (s *DocumentService) PreviousStep(ctx context.Context, userID, draftID uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.Retreat(); err != nil {
		return nil, apperror.NewBadRequestError("Draft is already at the first step")
	}
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddItemInput represents a new line item row
type AddItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// AddItem appends a line item row to a draft. Invalid rows are rejected
// without touching the draft.
func (s *DocumentService) AddItem(ctx context.Context, userID, draftID uuid.UUID, input *AddItemInput) (*entity.DocumentDraftItem, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "description", Message: "Description is required"})
	}
	if input.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must be greater than zero"})
	}
	if input.UnitPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_price", Message: "Unit price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	position, err := s.draftItemRepo.NextPosition(ctx, draft.ID)
	if err != nil {
		return nil, err
	}

	item := &entity.DocumentDraftItem{
		DraftID:     draft.ID,
		Description: strings.TrimSpace(input.Description),
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Position:    position,
	}
	if err := s.draftItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a line item row. Removing an id that is not on the draft
// is a no-op.
func (s *DocumentService) RemoveItem(ctx context.Context, userID, draftID, itemID uuid.UUID) error {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return err
	}

	item, err := s.draftItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.DraftID != draft.ID {
		return nil
	}
	return s.draftItemRepo.Delete(ctx, itemID)
}

// PreviewOutput represents the recomputed totals of a draft
type PreviewOutput struct {
	Draft  *entity.DocumentDraft `json:"draft"`
	Totals billing.Totals        `json:"totals"`
}

// Preview recomputes the totals from the current rows and charges. Nothing is
// cached; every call reflects the latest edits.
func (s *DocumentService) Preview(ctx context.Context, userID, draftID uuid.UUID) (*PreviewOutput, error) {
	draft, err := s.draftRepo.GetWithItems(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, apperror.NewNotFoundError("Draft")
	}

	return &PreviewOutput{
		Draft:  draft,
		Totals: billing.Calculate(draftLineItems(draft.Items), draftCharges(draft)),
	}, nil
}

// SyncIssuer re-reads the caller's business profile into the draft's issuer
// fields. Recipient fields are never touched.
func (s *DocumentService) SyncIssuer(ctx context.Context, userID, draftID uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := s.editableDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Business profile")
	}

	draft.SyncIssuer(profile)
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// FinalizeInput represents the finalize request
type FinalizeInput struct {
	RecipientPhone string
	MarkPending    bool
}

// FinalizeOutput represents the finalize result: the frozen document plus
// share links for it
type FinalizeOutput struct {
	Document  *entity.Document `json:"document"`
	ShareSMS  share.Link       `json:"share_sms"`
	ShareWA   share.Link       `json:"share_whatsapp"`
	QRCodeURL string           `json:"qr_code_url"`
}

// Finalize freezes a draft into an immutable document. The item rows are
// snapshotted, so later edits to the draft cannot reach the saved document.
// Only drafts on the preview step can finalize, and each draft finalizes once.
func (s *DocumentService) Finalize(ctx context.Context, userID, draftID uuid.UUID, input *FinalizeInput) (*FinalizeOutput, error) {
	draft, err := s.draftRepo.GetWithItems(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, apperror.NewNotFoundError("Draft")
	}
	if draft.IsFinalized() {
		return nil, apperror.NewConflictError("Draft has already been finalized")
	}
	if draft.Step != enum.DraftStepPreview {
		return nil, apperror.NewBadRequestError("Draft must reach the preview step before finalizing")
	}
	if len(draft.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cannot finalize a document with no line items")
	}

	totals := billing.Calculate(draftLineItems(draft.Items), draftCharges(draft))

	status := enum.PaymentStatusDraft
	if input.MarkPending {
		status = enum.PaymentStatusPending
	}

	document := &entity.Document{
		UserID:        userID,
		Kind:          draft.Kind,
		Number:        draft.Number,
		IssuerName:    draft.IssuerName,
		IssuerDetails: draft.IssuerDetails,
		ClientName:    draft.ToName,
		ClientDetails: draft.ToDetails,
		Date:          draft.Date,
		Currency:      draft.Currency,
		Subtotal:      totals.Subtotal,
		Discount:      draft.Discount,
		TaxRate:       draft.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Shipping:      draft.Shipping,
		Deposit:       draft.Deposit,
		Total:         totals.Total,
		Amount:        totals.AmountDue,
		PaymentStatus: status,
	}
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	items := make([]entity.DocumentItem, 0, len(draft.Items))
	for _, row := range draft.Items {
		items = append(items, entity.DocumentItem{
			DocumentID:  document.ID,
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			SubTotal:    row.Quantity * row.UnitPrice,
			Position:    row.Position,
		})
	}
	if err := s.docItemRepo.CreateBatch(ctx, items); err != nil {
		return nil, err
	}
	document.Items = items

	now := time.Now()
	draft.FinalizedAt = &now
	draft.DocumentID = &document.ID
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, err
	}

	phone := input.RecipientPhone
	if phone == "" && draft.ToDetails != nil {
		phone = *draft.ToDetails
	}
	text := s.shareText(document)
	viewURL := s.documentURL(document.ID)

	return &FinalizeOutput{
		Document:  document,
		ShareSMS:  share.BuildMessage(share.ChannelSMS, phone, text),
		ShareWA:   share.BuildMessage(share.ChannelWhatsApp, phone, text),
		QRCodeURL: share.BuildQRCodeURL(viewURL, s.qrSize),
	}, nil
}

// ViewDocument loads a finalized document for a shared link. Recipients open
// these links without an account, so there is no owner scoping.
func (s *DocumentService) ViewDocument(ctx context.Context, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.GetWithItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	return document, nil
}

// GetDocument retrieves a finalized document with its item snapshot
func (s *DocumentService) GetDocument(ctx context.Context, userID, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.GetWithItems(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil || document.UserID != userID {
		return nil, apperror.NewNotFoundError("Document")
	}
	return document, nil
}

// ListDocuments lists the caller's finalized documents with filtering
func (s *DocumentService) ListDocuments(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.PaginatedResult[entity.Document], error) {
	params.Pagination.Validate()
	documents, total, err := s.documentRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(documents, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdatePaymentStatus moves a document between payment states
func (s *DocumentService) UpdatePaymentStatus(ctx context.Context, userID, documentID uuid.UUID, status enum.PaymentStatus) (*entity.Document, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment status")
	}

	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil || document.UserID != userID {
		return nil, apperror.NewNotFoundError("Document")
	}

	if err := s.documentRepo.UpdatePaymentStatus(ctx, documentID, status); err != nil {
		return nil, err
	}
	document.PaymentStatus = status
	return document, nil
}

// ShareDocumentInput represents a share link request for a saved document
type ShareDocumentInput struct {
	RecipientPhone string
	Channel        share.Channel
}

// ShareDocument builds a share link for an already finalized document
func (s *DocumentService) ShareDocument(ctx context.Context, userID, documentID uuid.UUID, input *ShareDocumentInput) (*share.Link, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil || document.UserID != userID {
		return nil, apperror.NewNotFoundError("Document")
	}

	link := share.BuildMessage(input.Channel, input.RecipientPhone, s.shareText(document))
	return &link, nil
}

// DocumentQRCode builds the QR image URL for a saved document's view page
func (s *DocumentService) DocumentQRCode(ctx context.Context, userID, documentID uuid.UUID) (string, error) {
	document, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if document == nil || document.UserID != userID {
		return "", apperror.NewNotFoundError("Document")
	}
	return share.BuildQRCodeURL(s.documentURL(document.ID), s.qrSize), nil
}

// editableDraft loads an owner-scoped draft and rejects finalized ones
func (s *DocumentService) editableDraft(ctx context.Context, userID, draftID uuid.UUID) (*entity.DocumentDraft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, apperror.NewNotFoundError("Draft")
	}
	if draft.IsFinalized() {
		return nil, apperror.NewConflictError("Draft has already been finalized")
	}
	return draft, nil
}

// shareText renders the human-readable message body for a document
func (s *DocumentService) shareText(document *entity.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s from %s\n", document.Kind.String(), document.Number, document.IssuerName)
	fmt.Fprintf(&b, "Amount due: %s %s\n", document.Currency, billing.FormatAmount(document.Amount))
	fmt.Fprintf(&b, "View: %s", s.documentURL(document.ID))
	return b.String()
}

func (s *DocumentService) documentURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/documents/%s", strings.TrimRight(s.publicBaseURL, "/"), id)
}

// draftLineItems converts draft rows into calculator line items
func draftLineItems(rows []entity.DocumentDraftItem) []billing.LineItem {
	items := make([]billing.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, billing.LineItem{
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}
	return items
}

// draftCharges collects the adjustment fields of a draft. Quotes contribute
// no deposit regardless of what is stored.
func draftCharges(draft *entity.DocumentDraft) billing.Charges {
	charges := billing.Charges{
		Discount: draft.Discount,
		TaxRate:  draft.TaxRate,
		Shipping: draft.Shipping,
		Deposit:  draft.Deposit,
	}
	if draft.Kind == enum.DocumentKindQuote {
		charges.Deposit = 0
	}
	return charges
}
