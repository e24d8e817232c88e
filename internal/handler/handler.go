package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/validation"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "sflix-catalog-service",
	})
}

// ErrorHandler renders errors that escape a handler as ErrorResponse.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled error", "error", err, "status", code)
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

// writeError maps domain errors to HTTP responses.
func writeError(c fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, validation.ErrInvalid), errors.Is(err, catalog.ErrInvalidView):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrTitleNotFound), errors.Is(err, catalog.ErrProfileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	}
	slog.Error(msg, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msg})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}

// bindJSON decodes the request body into dst and validates it.
func bindJSON(c fiber.Ctx, v *validation.Validator, dst any) error {
	if err := c.Bind().JSON(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", validation.ErrInvalid)
	}
	return v.Validate(dst)
}
