package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles business profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles fetching the caller's business profile
// @Summary Get Business Profile
// @Description Get the authenticated user's business profile
// @Tags business-profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /business-profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.profileService.GetBusinessProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile retrieved successfully", profile)
}

// UpsertProfileRequest represents the business profile body
type UpsertProfileRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	LogoURL  *string `json:"logo_url"`
	Currency string  `json:"currency"`
}

// Upsert handles creating or replacing the caller's business profile
// @Summary Upsert Business Profile
// @Description Create or update the authenticated user's business profile
// @Tags business-profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpsertProfileRequest true "Business profile"
// @Success 200 {object} response.APIResponse
// @Router /business-profile [put]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpsertBusinessProfile(c.Request.Context(), *userID, &service.UpsertProfileInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		LogoURL:  req.LogoURL,
		Currency: req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business profile saved successfully", profile)
}
