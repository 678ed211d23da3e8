package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ingestionController "campusdesk_backend/internals/features/ingestion/controller"
)

func IngestionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &ingestionController.UploadController{DB: db}
	r.Post("/upload", ctl.Upload) // POST /api/upload
}
