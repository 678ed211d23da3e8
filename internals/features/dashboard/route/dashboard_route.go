package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "campusdesk_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &dashboardController.DashboardController{DB: db}
	r.Get("/dashboard", ctl.Overview) // GET /api/dashboard
}
