package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
)

// VisitHandler handles visitor check-in HTTP requests
type VisitHandler struct {
	visitService *service.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *service.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// StartVisitRequest represents the check-in start body
type StartVisitRequest struct {
	PremiseID string  `json:"premise_id" binding:"required"`
	TenantID  *string `json:"tenant_id"`
}

// Start handles opening a check-in session. When a tenant id is supplied the
// session comes from a host deep link and skips straight to visitor details.
// @Summary Start Check-In
// @Description Open a visitor check-in session for a premise
// @Tags check-in
// @Accept json
// @Produce json
// @Param request body StartVisitRequest true "Premise and optional host"
// @Success 201 {object} response.APIResponse
// @Router /check-in [post]
func (h *VisitHandler) Start(c *gin.Context) {
	var req StartVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	premiseID, err := uuid.Parse(req.PremiseID)
	if err != nil {
		response.BadRequest(c, "Invalid premise ID")
		return
	}

	if req.TenantID != nil {
		tenantID, err := uuid.Parse(*req.TenantID)
		if err != nil {
			response.BadRequest(c, "Invalid tenant ID")
			return
		}
		draft, err := h.visitService.StartVisitForHost(c.Request.Context(), premiseID, tenantID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, "Check-in started", draft)
		return
	}

	draft, err := h.visitService.StartVisit(c.Request.Context(), premiseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Check-in started", draft)
}

// Get handles fetching a check-in session
// @Summary Get Check-In Session
// @Description Get the state of a check-in session
// @Tags check-in
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /check-in/{id} [get]
func (h *VisitHandler) Get(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	draft, err := h.visitService.GetVisitDraft(c.Request.Context(), draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Check-in session retrieved", draft)
}

// ChooseTypeRequest represents the premise type choice body
type ChooseTypeRequest struct {
	PremiseType enum.PremiseType `json:"premise_type"`
}

// ChooseType handles the premise type selection step
// @Summary Choose Premise Type
// @Description Pick commercial or residence and branch the wizard
// @Tags check-in
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body ChooseTypeRequest true "Premise type"
// @Success 200 {object} response.APIResponse
// @Router /check-in/{id}/type [post]
func (h *VisitHandler) ChooseType(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req ChooseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.visitService.ChoosePremiseType(c.Request.Context(), draftID, req.PremiseType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Premise type recorded", draft)
}

// SelectTenantRequest represents the host selection body
type SelectTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
}

// SelectTenant handles picking a host from the tenant directory
// @Summary Select Host
// @Description Bind a directory tenant as the visit host
// @Tags check-in
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectTenantRequest true "Tenant"
// @Success 200 {object} response.APIResponse
// @Router /check-in/{id}/host [post]
func (h *VisitHandler) SelectTenant(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req SelectTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	draft, err := h.visitService.SelectTenant(c.Request.Context(), draftID, tenantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Host selected", draft)
}

// SetUnitRequest represents the manual unit body
type SetUnitRequest struct {
	Unit string `json:"unit"`
}

// SetUnit handles entering a house or unit number on the residence branch
// @Summary Set Unit
// @Description Record the house or unit number being visited
// @Tags check-in
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SetUnitRequest true "Unit"
// @Success 200 {object} response.APIResponse
// @Router /check-in/{id}/unit [post]
func (h *VisitHandler) SetUnit(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req SetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.visitService.SetUnit(c.Request.Context(), draftID, req.Unit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Unit recorded", draft)
}

// Back handles stepping back from visitor details
// @Summary Check-In Back
// @Description Return to the selection step the session came through
// @Tags check-in
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /check-in/{id}/back [post]
func (h *VisitHandler) Back(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	draft, err := h.visitService.GoBack(c.Request.Context(), draftID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Moved back", draft)
}

// SubmitVisitRequest represents the visitor details body
type SubmitVisitRequest struct {
	VisitorName  string `json:"visitor_name"`
	VisitorPhone string `json:"visitor_phone"`
	Purpose      string `json:"purpose" binding:"required"`
	VehicleReg   string `json:"vehicle_reg"`
}

// Submit handles turning a session into a pending access request
// @Summary Submit Check-In
// @Description Submit the visitor details and create a pending access request
// @Tags check-in
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body SubmitVisitRequest true "Visitor details"
// @Success 201 {object} response.APIResponse
// @Router /check-in/{id}/submit [post]
func (h *VisitHandler) Submit(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req SubmitVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.visitService.SubmitVisit(c.Request.Context(), draftID, &service.SubmitVisitInput{
		VisitorName:  req.VisitorName,
		VisitorPhone: req.VisitorPhone,
		Purpose:      req.Purpose,
		VehicleReg:   req.VehicleReg,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Visit request submitted", request)
}

// GetRequest handles fetching a submitted access request
// @Summary Get Visit Request
// @Description Get a submitted visit request by ID
// @Tags visits
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.APIResponse
// @Router /visit-requests/{id} [get]
func (h *VisitHandler) GetRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	request, err := h.visitService.GetVisitRequest(c.Request.Context(), requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visit request retrieved", request)
}

// ListRequests handles listing a premise's access requests
// @Summary List Visit Requests
// @Description List the access requests of a managed premise
// @Tags visits
// @Security BearerAuth
// @Produce json
// @Param id path string true "Premise ID"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param status query int false "Status filter"
// @Success 200 {object} response.APIResponse
// @Router /premises/{id}/visit-requests [get]
func (h *VisitHandler) ListRequests(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	premiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid premise ID")
		return
	}

	params := &repository.VisitFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			if status := enum.VisitStatus(parsed); status.IsValid() {
				params.Status = &status
			}
		}
	}

	result, err := h.visitService.ListVisitRequests(c.Request.Context(), *userID, premiseID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Visit requests retrieved", result)
}

// UpdateRequestStatusRequest represents the status update body
type UpdateRequestStatusRequest struct {
	Status enum.VisitStatus `json:"status"`
}

// UpdateRequestStatus handles approving, denying or checking in a visit
// @Summary Update Visit Status
// @Description Move a visit request between states
// @Tags visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body UpdateRequestStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /visit-requests/{id}/status [patch]
func (h *VisitHandler) UpdateRequestStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	request, err := h.visitService.UpdateVisitStatus(c.Request.Context(), *userID, requestID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Visit status updated", request)
}
