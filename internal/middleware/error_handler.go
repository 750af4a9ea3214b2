package middleware

import (
	"errors"

	"storetrack/internal/logging"
	"storetrack/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ErrorHandler maps service errors to JSON responses: validation failures to
// 400, missing entities to 404, everything else to 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		ve *services.ValidationError
		ne *services.NotFoundError
		fe *fiber.Error
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ve.Message,
			"code":    ve.Code,
		})
	case errors.As(err, &ne):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": ne.Message,
			"code":    ne.Code,
		})
	case errors.As(err, &fe):
		return c.Status(fe.Code).JSON(fiber.Map{
			"message": fe.Message,
		})
	}

	logging.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals(requestid.ConfigDefault.ContextKey)).
		Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// BadRequest responds with 400 for a body that could not be parsed.
func BadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
