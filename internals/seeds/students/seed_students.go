package students

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk_backend/internals/features/academics/students/model"
)

type seedStudent struct {
	AdmissionNo string `json:"admissionNo"`
	CollegeCode string `json:"collegeCode"`
	ProgramCode string `json:"programCode"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
}

// SeedStudentsFromJSON loads a demo cohort. Existing rows are left
// untouched, so the seed is safe to run on every boot.
func SeedStudentsFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Seed file %s not readable: %v", path, err)
		return
	}

	var entries []seedStudent
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		log.Printf("⚠️ Seed file %s is not valid JSON: %v", path, err)
		return
	}

	rows := make([]model.StudentModel, 0, len(entries))
	for _, e := range entries {
		s := model.StudentModel{
			StudentAdmissionNo: e.AdmissionNo,
			StudentCollegeCode: e.CollegeCode,
			StudentProgramCode: e.ProgramCode,
			StudentName:        e.Name,
			StudentGender:      e.Gender,
		}
		s.ApplyDefaults()
		rows = append(rows, s)
	}
	if len(rows) == 0 {
		return
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		log.Printf("⚠️ Student seed failed: %v", err)
		return
	}
	log.Printf("✅ Seeded %d demo students", len(rows))
}
