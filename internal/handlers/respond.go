package handlers

import (
	"fmt"
	"log"

	"musicstore/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// handleError translates a domain error into an HTTP response. Unexpected
// errors are logged and surfaced as an opaque 500 so internals never leak.
func handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindBadRequest, apperrors.KindValidation:
		status = fiber.StatusBadRequest
	case apperrors.KindConflict:
		status = fiber.StatusConflict
	case apperrors.KindPaymentRequired:
		status = fiber.StatusPaymentRequired
	case apperrors.KindAccessDenied:
		status = fiber.StatusForbidden
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{
			"message": "internal server error",
			"code":    "internal_error",
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
		"code":    apperrors.CodeOf(err),
	})
}

// forbidden is the response for a failed authorization predicate.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": "access denied",
		"code":    "access_denied",
	})
}

// badBody is the response for an unparseable request body.
func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// validationFailed renders a per-field error map for a failed struct
// validation, in the shape clients already rely on.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
