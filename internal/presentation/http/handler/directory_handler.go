package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
)

// DirectoryHandler handles premise and tenant directory HTTP requests
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// CreatePremiseRequest represents the premise creation body
type CreatePremiseRequest struct {
	Name    string           `json:"name" binding:"required"`
	Type    enum.PremiseType `json:"type"`
	Address *string          `json:"address"`
}

// CreatePremise handles registering a premise
// @Summary Create Premise
// @Description Register a premise managed by the current user
// @Tags premises
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePremiseRequest true "Premise details"
// @Success 201 {object} response.APIResponse
// @Router /premises [post]
func (h *DirectoryHandler) CreatePremise(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreatePremiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	premise, err := h.directoryService.CreatePremise(c.Request.Context(), *userID, &service.CreatePremiseInput{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Premise created", premise)
}

// GetPremise handles fetching a premise with its directory
// @Summary Get Premise
// @Description Get a premise and its tenant directory
// @Tags premises
// @Produce json
// @Param id path string true "Premise ID"
// @Param search query string false "Filter tenants by name or service"
// @Success 200 {object} response.APIResponse
// @Router /premises/{id} [get]
func (h *DirectoryHandler) GetPremise(c *gin.Context) {
	premiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid premise ID")
		return
	}

	premise, err := h.directoryService.GetPremise(c.Request.Context(), premiseID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Premise retrieved", premise)
}

// ListPremises handles listing premises
// @Summary List Premises
// @Description List premises with optional name search
// @Tags premises
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Name search"
// @Success 200 {object} response.APIResponse
// @Router /premises [get]
func (h *DirectoryHandler) ListPremises(c *gin.Context) {
	result, err := h.directoryService.ListPremises(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Premises retrieved", result)
}

// AddTenantRequest represents the directory entry body
type AddTenantRequest struct {
	Name      string  `json:"name" binding:"required"`
	Service   *string `json:"service"`
	Unit      *string `json:"unit"`
	AvatarURL *string `json:"avatar_url"`
}

// AddTenant handles adding an entry to a premise directory
// @Summary Add Tenant
// @Description Add a tenant to a premise's directory
// @Tags premises
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Premise ID"
// @Param request body AddTenantRequest true "Tenant details"
// @Success 201 {object} response.APIResponse
// @Router /premises/{id}/tenants [post]
func (h *DirectoryHandler) AddTenant(c *gin.Context) {
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

	var req AddTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.directoryService.AddTenant(c.Request.Context(), *userID, premiseID, &service.AddTenantInput{
		Name:      req.Name,
		Service:   req.Service,
		Unit:      req.Unit,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tenant added", tenant)
}

// ListTenants handles listing a premise's directory
// @Summary List Tenants
// @Description List a premise's directory with optional search
// @Tags premises
// @Produce json
// @Param id path string true "Premise ID"
// @Param search query string false "Name or service search"
// @Success 200 {object} response.APIResponse
// @Router /premises/{id}/tenants [get]
func (h *DirectoryHandler) ListTenants(c *gin.Context) {
	premiseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid premise ID")
		return
	}

	tenants, err := h.directoryService.ListTenants(c.Request.Context(), premiseID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenants retrieved", tenants)
}

// UpdateTenantRequest represents the directory entry update body
type UpdateTenantRequest struct {
	Name      *string `json:"name"`
	Service   *string `json:"service"`
	Unit      *string `json:"unit"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateTenant handles editing a directory entry
// @Summary Update Tenant
// @Description Edit a tenant directory entry
// @Tags premises
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body UpdateTenantRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /tenants/{id} [put]
func (h *DirectoryHandler) UpdateTenant(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tenant, err := h.directoryService.UpdateTenant(c.Request.Context(), *userID, tenantID, &service.UpdateTenantInput{
		Name:      req.Name,
		Service:   req.Service,
		Unit:      req.Unit,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tenant updated", tenant)
}

// RemoveTenant handles deleting a directory entry
// @Summary Remove Tenant
// @Description Remove a tenant from a premise's directory
// @Tags premises
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.APIResponse
// @Router /tenants/{id} [delete]
func (h *DirectoryHandler) RemoveTenant(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	tenantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tenant ID")
		return
	}

	if err := h.directoryService.RemoveTenant(c.Request.Context(), *userID, tenantID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
