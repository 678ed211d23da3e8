package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementController "campusdesk_backend/internals/features/academics/placements/controller"
)

func PlacementRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &placementController.PlacementController{DB: db}
	r.Post("/placement", ctl.Create) // POST /api/placement
}
