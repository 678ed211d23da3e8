package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk_backend/internals/features/academics/placements/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

// UpsertPlacement inserts or replaces the one placement row a student
// can have, then flips the student's placed flag. The contact number is
// copied onto the student when supplied.
func UpsertPlacement(tx *gorm.DB, p model.PlacementModel) error {
	p.PlacementID = 0
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "placement_admission_no"}},
		UpdateAll: true,
	}).Create(&p).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{"student_is_placed": true}
	if p.PlacementContactNo != "" {
		updates["student_contact_no"] = p.PlacementContactNo
	}
	return tx.Model(&studentModel.StudentModel{}).
		Where("student_admission_no = ?", p.PlacementAdmissionNo).
		Updates(updates).Error
}
