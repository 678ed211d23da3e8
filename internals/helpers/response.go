package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Success envelope: {"success": true, "message": ..., "data"?: ...}
// Failures never go through here; they are fiber errors rendered by the
// app-level error handler as {"error": msg}.
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// JsonList wraps paginated reads.
func JsonList(c *fiber.Ctx, data interface{}, pagination interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// ValidationError flattens validator.v10 output into one message the
// error handler can render.
func ValidationError(err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid input")
	}
	msg := "invalid input"
	if len(ve) > 0 {
		msg = "invalid field: " + ve[0].Field() + " (" + ve[0].Tag() + ")"
	}
	return fiber.NewError(fiber.StatusBadRequest, msg)
}
