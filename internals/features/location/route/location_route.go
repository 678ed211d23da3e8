package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationController "campusdesk_backend/internals/features/location/controller"
)

func LocationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &locationController.LocationController{DB: db}
	r.Post("/verify-location", ctl.Verify) // POST /api/verify-location
}
