package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/internal/application/service"
	"github.com/noid254/qaribu-api/internal/domain/repository"
	"github.com/noid254/qaribu-api/internal/presentation/http/dto/response"
)

// ListingHandler handles catalogue listing HTTP requests
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CreateListingRequest represents the listing creation body
type CreateListingRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
}

// Create handles publishing a catalogue listing
// @Summary Create Listing
// @Description Publish a catalogue listing under the current user
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateListingRequest true "Listing details"
// @Success 201 {object} response.APIResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	listing, err := h.listingService.CreateListing(c.Request.Context(), *userID, &service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    req.Currency,
		Images:      req.Images,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Listing created", listing)
}

// Get handles fetching a listing
// @Summary Get Listing
// @Description Get a catalogue listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.GetListing(c.Request.Context(), listingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Listing retrieved", listing)
}

// List handles browsing the catalogue
// @Summary List Listings
// @Description Browse catalogue listings with search and category filters
// @Tags listings
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Title search"
// @Param category query string false "Category filter"
// @Param owner_id query string false "Owner filter"
// @Success 200 {object} response.APIResponse
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	params := &repository.ListingFilterParams{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
	}
	if o := c.Query("owner_id"); o != "" {
		if ownerID, err := uuid.Parse(o); err == nil {
			params.OwnerID = &ownerID
		}
	}

	result, err := h.listingService.ListListings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Listings retrieved", result)
}

// UpdateListingRequest represents the listing update body
type UpdateListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
}

// Update handles editing a listing
// @Summary Update Listing
// @Description Edit a catalogue listing
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body UpdateListingRequest true "Fields to update"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	listing, err := h.listingService.UpdateListing(c.Request.Context(), *userID, listingID, &service.UpdateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Listing updated", listing)
}

// AddImageRequest represents the gallery append body
type AddImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// AddImage handles appending to a listing's gallery
// @Summary Add Listing Image
// @Description Append an image to a listing's gallery
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body AddImageRequest true "Image URL"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id}/images [post]
func (h *ListingHandler) AddImage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	listing, err := h.listingService.AddListingImage(c.Request.Context(), *userID, listingID, req.ImageURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image added", listing)
}

// RemoveImage handles removing a gallery image by position
// @Summary Remove Listing Image
// @Description Remove an image from a listing's gallery by index
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Param index path int true "Image index"
// @Success 200 {object} response.APIResponse
// @Router /listings/{id}/images/{index} [delete]
func (h *ListingHandler) RemoveImage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	index, err := parseNonNegativeInt(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid image index")
		return
	}

	listing, err := h.listingService.RemoveListingImage(c.Request.Context(), *userID, listingID, index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image removed", listing)
}

// Delete handles removing a listing
// @Summary Delete Listing
// @Description Remove a catalogue listing
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid listing ID")
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), *userID, listingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
