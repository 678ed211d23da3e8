package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/location/service"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type VerifyLocationRequest struct {
	UserID string  `json:"userId" validate:"required"`
	Lat    float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng    float64 `json:"lng" validate:"required,min=-180,max=180"`
}

type LocationController struct {
	DB *gorm.DB
}

// POST /api/verify-location
func (h *LocationController) Verify(c *fiber.Ctx) error {
	var req VerifyLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(err)
	}

	result, err := service.VerifyLocation(c.Context(), h.DB, req.UserID, req.Lat, req.Lng, time.Now())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "location verified", result)
}
