package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DBError maps driver failures onto the error taxonomy: referential and
// uniqueness breaks are the caller's problem (409), the rest is
// infrastructure (500). Classification is by driver message substring,
// which holds for both postgres and the sqlite test driver.
func DBError(stage string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key"):
		return fiber.NewError(fiber.StatusConflict, stage+": admission number not registered (foreign key)")
	case strings.Contains(msg, "duplicate"), strings.Contains(msg, "unique"):
		return fiber.NewError(fiber.StatusConflict, stage+": duplicate row")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, stage+": "+err.Error())
	}
}
