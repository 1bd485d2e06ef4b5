// Package common holds the response helpers shared by the webapi handlers:
// request binding, validation at the transport boundary, and the mapping of
// domain errors to status codes.
package common

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
}

// ErrorResponseJSON writes a response following RFC 9457 Problem Details.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail string) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidKind),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidDescription),
		errors.Is(err, ledger.ErrLimitExceeded):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Returns the populated struct, or writes a 422
// problem response and returns nil; the accompanying error is then the
// outcome of writing that response.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Validation failed", err.Error())
	}
	return &input, nil
}
