package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditController "campusdesk_backend/internals/features/audit/controller"
)

func AuditRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &auditController.AuditController{DB: db}
	r.Post("/delete-student-data", ctl.DeleteStudentData) // POST   /api/delete-student-data
	r.Get("/deleted-log", ctl.ListLog)                    // GET    /api/deleted-log
	r.Delete("/deleted-log", ctl.PurgeLog)                // DELETE /api/deleted-log
	r.Post("/restore-log", ctl.Restore)                   // POST   /api/restore-log
}
