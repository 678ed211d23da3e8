package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "campusdesk_backend/internals/features/academics/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentController{DB: db}
	r.Get("/students", ctl.List)       // GET /api/students
	r.Get("/students/:id", ctl.Detail) // GET /api/students/:id
}
