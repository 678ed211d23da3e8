package seeds

import (
	"gorm.io/gorm"

	students "campusdesk_backend/internals/seeds/students"
)

// RunAllSeeds loads demo data. Enabled with RUN_SEEDS=true; intended
// for local development, never for a live tenant database.
func RunAllSeeds(db *gorm.DB) {
	students.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
}
