package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noid254/qaribu-api/pkg/apperror"
	"github.com/noid254/qaribu-api/pkg/pagination"
)

// APIResponse is the envelope every endpoint answers with
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries per-request metadata. The request ID comes from the logging
// middleware so a client can quote it back when reporting a problem.
type Meta struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

func write(c *gin.Context, status int, body APIResponse) {
	body.Meta = &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: c.GetString("request_id"),
	}
	c.JSON(status, body)
}

// OK sends a 200 with a payload
func OK(c *gin.Context, message string, data interface{}) {
	write(c, 200, APIResponse{Success: true, Message: message, Data: data})
}

// Created sends a 201 with the created resource
func Created(c *gin.Context, message string, data interface{}) {
	write(c, 201, APIResponse{Success: true, Message: message, Data: data})
}

// SuccessWithPagination sends a page of results
func SuccessWithPagination[T any](c *gin.Context, status int, message string, result *pagination.PaginatedResult[T]) {
	write(c, status, APIResponse{Success: true, Message: message, Data: result})
}

// NoContent sends an empty 204
func NoContent(c *gin.Context) {
	c.Status(204)
}

// Error maps a service error onto the envelope using its AppError status
func Error(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	write(c, appErr.Code, APIResponse{Success: false, Message: appErr.Message, Errors: appErr.Errors})
}

// BadRequest sends a 400 with a message
func BadRequest(c *gin.Context, message string) {
	write(c, 400, APIResponse{Success: false, Message: message})
}

// Unauthorized sends a 401 with a message
func Unauthorized(c *gin.Context, message string) {
	write(c, 401, APIResponse{Success: false, Message: message})
}
