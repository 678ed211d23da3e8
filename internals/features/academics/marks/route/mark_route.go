package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	markController "campusdesk_backend/internals/features/academics/marks/controller"
)

func MarkRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &markController.MarkController{DB: db}
	r.Post("/marks", ctl.Create) // POST /api/marks
}
