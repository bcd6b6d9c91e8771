package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// paginationFromQuery reads page/per_page query parameters
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			params.Page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			params.PerPage = parsed
		}
	}
	return params
}

// Helper functions for parsing query parameters
func parsePositiveInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 1 {
		return 1, err
	}
	return result, nil
}

func parseNonNegativeInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 0 {
		return 0, err
	}
	return result, nil
}
