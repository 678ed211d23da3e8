package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk_backend/internals/features/academics/students/model"
)

// UpsertStudents inserts first-seen students and refreshes the rest.
// On conflict name and college are always overwritten; the father
// contact only when the incoming value is non-empty.
func UpsertStudents(tx *gorm.DB, students []model.StudentModel) error {
	if len(students) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_admission_no"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"student_name":         gorm.Expr("excluded.student_name"),
			"student_college_code": gorm.Expr("excluded.student_college_code"),
			"student_father_no":    gorm.Expr("CASE WHEN excluded.student_father_no <> '' THEN excluded.student_father_no ELSE students.student_father_no END"),
		}),
	}).Create(&students).Error
}
