// Package response defines the wire shapes shared by handlers and the
// central error handler.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the shape of every failed request. Errors carries
// field-level validation messages and is omitted otherwise.
type ErrorBody struct {
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Errors  []string `json:"errors,omitempty"`
}

// Registered is the body of a successful registration.
type Registered struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoggedIn is the body of a successful login.
type LoggedIn struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// OrderCreated is the body of a successful order submission.
type OrderCreated struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// Error writes an ErrorBody with the given status.
func Error(c echo.Context, statusCode int, errorCode, message string, fieldErrors []string) error {
	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Code:    errorCode,
		Errors:  fieldErrors,
	})
}
