package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// NotFoundError is returned by services when a referenced record does
// not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// UnauthorizedError is returned when credentials or tokens do not
// check out.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// ErrorHandler maps typed service errors to JSON envelopes. Anything
// untyped becomes a 500 with a generic message so internals never leak.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr   *ValidationError
		notFoundErr     *NotFoundError
		unauthorizedErr *UnauthorizedError
		fiberErr        *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse(notFoundErr.Message))
	case errors.As(err, &unauthorizedErr):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(unauthorizedErr.Message))
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
