package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
	"github.com/noid254/qaribu-api/pkg/share"
)

// DocumentHandler handles document draft and document HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CreateDraftRequest represents the create draft request body
type CreateDraftRequest struct {
	Kind enum.DocumentKind `json:"kind"`
}

// CreateDraft handles starting a document draft session
// @Summary Create Draft
// @Description Start a new invoice, quote or receipt draft
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateDraftRequest true "Draft kind"
// @Success 201 {object} response.APIResponse
// @Router /drafts [post]
func (h *DocumentHandler) CreateDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.documentService.CreateDraft(c.Request.Context(), *userID, &service.CreateDraftInput{Kind: req.Kind})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Draft created successfully", draft)
}

// ListDrafts handles listing draft sessions
// @Summary List Drafts
// @Description List the caller's draft sessions
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /drafts [get]
func (h *DocumentHandler) ListDrafts(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.documentService.ListDrafts(c.Request.Context(), *userID, paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Drafts retrieved successfully", result)
}

// GetDraft handles fetching a draft with its items
// @Summary Get Draft
// @Description Get a draft session by ID
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id} [get]
func (h *DocumentHandler) GetDraft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.documentService.GetDraft(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft retrieved successfully", draft)
}

// UpdatePartiesRequest represents the parties step body
type UpdatePartiesRequest struct {
	Number        *string `json:"number"`
	Date          *string `json:"date"`
	IssuerName    *string `json:"issuer_name"`
	IssuerDetails *string `json:"issuer_details"`
	ToName        *string `json:"to_name"`
	ToDetails     *string `json:"to_details"`
}

// UpdateParties handles updating the parties step of a draft
// @Summary Update Draft Parties
// @Description Update the number, date, issuer and recipient fields
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body UpdatePartiesRequest true "Parties fields"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/parties [put]
func (h *DocumentHandler) UpdateParties(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req UpdatePartiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePartiesInput{
		Number:        req.Number,
		IssuerName:    req.IssuerName,
		IssuerDetails: req.IssuerDetails,
		ToName:        req.ToName,
		ToDetails:     req.ToDetails,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	draft, err := h.documentService.UpdateParties(c.Request.Context(), *userID, draftID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft updated successfully", draft)
}

// UpdateChargesRequest represents the charges body
type UpdateChargesRequest struct {
	Discount *float64 `json:"discount"`
	TaxRate  *float64 `json:"tax_rate"`
	Shipping *float64 `json:"shipping"`
	Deposit  *float64 `json:"deposit"`
}

// UpdateCharges handles updating draft-level adjustments
// @Summary Update Draft Charges
// @Description Update discount, tax rate, shipping and deposit
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body UpdateChargesRequest true "Charge fields"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/charges [put]
func (h *DocumentHandler) UpdateCharges(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req UpdateChargesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.documentService.UpdateCharges(c.Request.Context(), *userID, draftID, &service.UpdateChargesInput{
		Discount: req.Discount,
		TaxRate:  req.TaxRate,
		Shipping: req.Shipping,
		Deposit:  req.Deposit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft updated successfully", draft)
}

// NextStep handles advancing a draft one step
// @Summary Advance Draft
// @Description Move the draft to the next wizard step
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/next [post]
func (h *DocumentHandler) NextStep(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.documentService.NextStep(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft advanced", draft)
}

// PreviousStep handles moving a draft one step back
// @Summary Rewind Draft
// @Description Move the draft to the previous wizard step
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/back [post]
func (h *DocumentHandler) PreviousStep(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.documentService.PreviousStep(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft moved back", draft)
}

// AddItemRequest represents a new line item body
type AddItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// AddItem handles appending a line item to a draft
// @Summary Add Draft Item
// @Description Append a line item row to a draft
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body AddItemRequest true "Line item"
// @Success 201 {object} response.APIResponse
// @Router /drafts/{id}/items [post]
func (h *DocumentHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.documentService.AddItem(c.Request.Context(), *userID, draftID, &service.AddItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added successfully", item)
}

// RemoveItem handles removing a line item from a draft
// @Summary Remove Draft Item
// @Description Remove a line item row from a draft
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Param itemId path string true "Item ID"
// @Success 204 "No Content"
// @Router /drafts/{id}/items/{itemId} [delete]
func (h *DocumentHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.documentService.RemoveItem(c.Request.Context(), *userID, draftID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Preview handles recomputing draft totals
// @Summary Preview Draft
// @Description Get the draft with freshly computed totals
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/preview [get]
func (h *DocumentHandler) Preview(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	preview, err := h.documentService.Preview(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview computed successfully", preview)
}

// SyncIssuer handles re-reading the business profile into a draft
// @Summary Sync Draft Issuer
// @Description Refresh the draft's issuer fields from the business profile
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.APIResponse
// @Router /drafts/{id}/sync-issuer [post]
func (h *DocumentHandler) SyncIssuer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	draft, err := h.documentService.SyncIssuer(c.Request.Context(), *userID, draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Issuer synced successfully", draft)
}

// FinalizeRequest represents the finalize request body
type FinalizeRequest struct {
	RecipientPhone string `json:"recipient_phone"`
	MarkPending    bool   `json:"mark_pending"`
}

// Finalize handles freezing a draft into a document
// @Summary Finalize Draft
// @Description Freeze the draft into an immutable document and return share links
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body FinalizeRequest true "Finalize options"
// @Success 201 {object} response.APIResponse
// @Router /drafts/{id}/finalize [post]
func (h *DocumentHandler) Finalize(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft ID")
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.documentService.Finalize(c.Request.Context(), *userID, draftID, &service.FinalizeInput{
		RecipientPhone: req.RecipientPhone,
		MarkPending:    req.MarkPending,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document finalized successfully", output)
}

// ListDocuments handles listing finalized documents
// @Summary List Documents
// @Description List the caller's finalized documents with filters
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param kind query int false "Document kind filter"
// @Param payment_status query int false "Payment status filter"
// @Success 200 {object} response.APIResponse
// @Router /my-documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.DocumentFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if k := c.Query("kind"); k != "" {
		if parsed, err := parseNonNegativeInt(k); err == nil {
			if kind := enum.DocumentKind(parsed); kind.IsValid() {
				params.Kind = &kind
			}
		}
	}
	if s := c.Query("payment_status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			if status := enum.PaymentStatus(parsed); status.IsValid() {
				params.PaymentStatus = &status
			}
		}
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Documents retrieved successfully", result)
}

// View handles the public shared-link view of a finalized document
// @Summary View Shared Document
// @Description View a finalized document opened from a share link or QR code
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) View(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	document, err := h.documentService.ViewDocument(c.Request.Context(), documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", document)
}

// GetDocument handles fetching a finalized document
// @Summary Get Document
// @Description Get a finalized document with its item snapshot
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /my-documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	document, err := h.documentService.GetDocument(c.Request.Context(), *userID, documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", document)
}

// UpdatePaymentStatusRequest represents the payment status body
type UpdatePaymentStatusRequest struct {
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// UpdatePaymentStatus handles moving a document between payment states
// @Summary Update Payment Status
// @Description Mark a document as paid, pending or overdue
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} response.APIResponse
// @Router /my-documents/{id}/payment-status [patch]
func (h *DocumentHandler) UpdatePaymentStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	document, err := h.documentService.UpdatePaymentStatus(c.Request.Context(), *userID, documentID, req.PaymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment status updated successfully", document)
}

// ShareDocumentRequest represents the share link request body
type ShareDocumentRequest struct {
	RecipientPhone string `json:"recipient_phone" binding:"required"`
	Channel        string `json:"channel" binding:"required,oneof=sms whatsapp"`
}

// Share handles building a messaging deep link for a document
// @Summary Share Document
// @Description Build an SMS or WhatsApp deep link for a finalized document
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body ShareDocumentRequest true "Share options"
// @Success 200 {object} response.APIResponse
// @Router /my-documents/{id}/share [post]
func (h *DocumentHandler) Share(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req ShareDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.documentService.ShareDocument(c.Request.Context(), *userID, documentID, &service.ShareDocumentInput{
		RecipientPhone: req.RecipientPhone,
		Channel:        share.Channel(req.Channel),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share link built successfully", link)
}

// QRCode handles building the QR image URL for a document
// @Summary Document QR Code
// @Description Get a QR code image URL pointing at the document's view page
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /my-documents/{id}/qr-code [get]
func (h *DocumentHandler) QRCode(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	qrURL, err := h.documentService.DocumentQRCode(c.Request.Context(), *userID, documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "QR code URL built successfully", gin.H{"qr_code_url": qrURL})
}
