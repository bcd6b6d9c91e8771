package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/enum"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
)

// GigHandler handles gig board HTTP requests
type GigHandler struct {
	gigService *service.GigService
}

// NewGigHandler creates a new gig handler
func NewGigHandler(gigService *service.GigService) *GigHandler {
	return &GigHandler{gigService: gigService}
}

// CreateGigRequest represents the gig creation body
type CreateGigRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	Currency    string   `json:"currency"`
	Location    *string  `json:"location"`
	Contact     *string  `json:"contact"`
}

// Create handles posting a gig
// @Summary Create Gig
// @Description Post a gig under the current user
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateGigRequest true "Gig details"
// @Success 201 {object} response.APIResponse
// @Router /gigs [post]
func (h *GigHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	gig, err := h.gigService.CreateGig(c.Request.Context(), *userID, &service.CreateGigInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Location:    req.Location,
		Contact:     req.Contact,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Gig created", gig)
}

// Get handles fetching a gig
// @Summary Get Gig
// @Description Get a gig by ID
// @Tags gigs
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} response.APIResponse
// @Router /gigs/{id} [get]
func (h *GigHandler) Get(c *gin.Context) {
	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gig ID")
		return
	}

	gig, err := h.gigService.GetGig(c.Request.Context(), gigID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Gig retrieved", gig)
}

// List handles browsing the gig board
// @Summary List Gigs
// @Description Browse gigs with search and status filters
// @Tags gigs
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Title search"
// @Param status query int false "Status filter"
// @Param poster_id query string false "Poster filter"
// @Success 200 {object} response.APIResponse
// @Router /gigs [get]
func (h *GigHandler) List(c *gin.Context) {
	params := &repository.GigFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			if status := enum.GigStatus(parsed); status.IsValid() {
				params.Status = &status
			}
		}
	}
	if p := c.Query("poster_id"); p != "" {
		if posterID, err := uuid.Parse(p); err == nil {
			params.PosterID = &posterID
		}
	}

	result, err := h.gigService.ListGigs(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Gigs retrieved", result)
}

// UpdateGigRequest represents the gig update body
type UpdateGigRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
	Location    *string  `json:"location"`
	Contact     *string  `json:"contact"`
}

// Update handles editing a gig
// @Summary Update Gig
// @Description Edit a gig posting
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body UpdateGigRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /gigs/{id} [put]
func (h *GigHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gig ID")
		return
	}

	var req UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	gig, err := h.gigService.UpdateGig(c.Request.Context(), *userID, gigID, &service.UpdateGigInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Location:    req.Location,
		Contact:     req.Contact,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Gig updated", gig)
}

// UpdateGigStatusRequest represents the status update body
type UpdateGigStatusRequest struct {
	Status enum.GigStatus `json:"status"`
}

// UpdateStatus handles opening, filling or closing a gig
// @Summary Update Gig Status
// @Description Move a gig between open, filled and closed
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body UpdateGigStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /gigs/{id}/status [patch]
func (h *GigHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gig ID")
		return
	}

	var req UpdateGigStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	gig, err := h.gigService.UpdateGigStatus(c.Request.Context(), *userID, gigID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Gig status updated", gig)
}

// Delete handles removing a gig
// @Summary Delete Gig
// @Description Remove a gig posting
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gig ID"
// @Success 204 "No Content"
// @Router /gigs/{id} [delete]
func (h *GigHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid gig ID")
		return
	}

	if err := h.gigService.DeleteGig(c.Request.Context(), *userID, gigID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
