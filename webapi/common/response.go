// Package common holds the response envelope and request binding helpers
// shared by all handler packages.
package common

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/swiftflow/swiftflow/pkg/domain"
)

// Response is the fixed API envelope. Every endpoint, success or failure,
// answers in this shape.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SuccessJSON writes a success envelope.
func SuccessJSON(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Response{Success: true, Data: data})
}

// SuccessMessageJSON writes a success envelope with a message.
func SuccessMessageJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Success: true, Message: message, Data: data})
}

// FailJSON writes a failure envelope with a human-readable message.
func FailJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Success: false, Message: message})
}

// ErrorJSON maps a service error to the envelope. Known kinds surface
// their message; anything else is logged and reported generically so no
// implementation detail leaks.
func ErrorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownCurrencyPair),
		errors.Is(err, domain.ErrProviderUnavailable),
		errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return FailJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUserUnauthorized):
		return FailJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUserNotFound):
		return FailJSON(c, fiber.StatusNotFound, err.Error())
	default:
		slog.Error("unexpected error", "path", c.OriginalURL(), "error", err)
		return FailJSON(c, fiber.StatusInternalServerError, "Something went wrong")
	}
}

var validate = validator.New()

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the error response has already been
// written and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, FailJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, FailJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return &input, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Tag() {
		case "required":
			return "Please provide " + f.Field()
		case "gt", "gte":
			return f.Field() + " must be a positive number"
		case "email":
			return "Please provide a valid email"
		case "min", "max":
			return f.Field() + " is out of range"
		case "len", "alpha":
			return f.Field() + " must be a 3-letter currency code"
		case "oneof":
			return "Please select a valid " + f.Field() + " option"
		}
		return "Invalid value for " + f.Field()
	}
	return "Validation failed"
}
