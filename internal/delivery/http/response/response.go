// Package response defines the wire shapes of the public API. The contract
// is deliberately small: successes carry a message, failures carry an error
// string plus an optional detail for server-side faults.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of every successful call.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed call. Detail is only populated
// for server-side faults; client errors get the message alone.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Message renders a success body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// MessageWithData renders a success body carrying a payload.
func MessageWithData(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, MessageResponse{Message: message, Data: data})
}

// ClientError renders a 4xx body with the user-facing message only.
func ClientError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// ServerError renders a 5xx body with message and diagnostic detail.
func ServerError(c echo.Context, statusCode int, message, detail string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message, Detail: detail})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return ClientError(c, http.StatusBadRequest, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message, detail string) error {
	return ServerError(c, http.StatusInternalServerError, message, detail)
}
