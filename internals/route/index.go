package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogFeature "campusdesk_backend/internals/features/academics/catalog"
	markRoute "campusdesk_backend/internals/features/academics/marks/route"
	placementRoute "campusdesk_backend/internals/features/academics/placements/route"
	studentRoute "campusdesk_backend/internals/features/academics/students/route"
	auditRoute "campusdesk_backend/internals/features/audit/route"
	dashboardRoute "campusdesk_backend/internals/features/dashboard/route"
	ingestionRoute "campusdesk_backend/internals/features/ingestion/route"
	locationRoute "campusdesk_backend/internals/features/location/route"
	feeRoute "campusdesk_backend/internals/features/finance/fees/route"
)

// SetupRoutes mounts every feature under /api. Caller identity is an
// opaque header; there is no auth layer here.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up ingestion routes...")
	ingestionRoute.IngestionRoutes(api, db)

	log.Println("[INFO] Setting up record routes...")
	markRoute.MarkRoutes(api, db)
	feeRoute.FeeRoutes(api, db)
	placementRoute.PlacementRoutes(api, db)

	log.Println("[INFO] Setting up audit routes...")
	auditRoute.AuditRoutes(api, db)

	log.Println("[INFO] Setting up dashboard routes...")
	dashboardRoute.DashboardRoutes(api, db)

	log.Println("[INFO] Setting up student routes...")
	studentRoute.StudentRoutes(api, db)
	catalogFeature.CatalogRoutes(api, db)

	log.Println("[INFO] Setting up location routes...")
	locationRoute.LocationRoutes(api, db)
}
