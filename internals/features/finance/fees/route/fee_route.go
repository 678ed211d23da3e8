package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "campusdesk_backend/internals/features/finance/fees/controller"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &feeController.FeeController{DB: db}
	r.Post("/fees", ctl.Create) // POST /api/fees
}
