package service

import (
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/academics/marks/model"
)

// ReplaceMark enforces "one score per subject per semester per student":
// any existing row for the key is dropped and the new one inserted as a
// whole. Not a field merge.
func ReplaceMark(tx *gorm.DB, m model.MarkModel) error {
	if err := tx.
		Where("mark_admission_no = ? AND mark_subject_code = ? AND mark_semester = ?",
			m.MarkAdmissionNo, m.MarkSubjectCode, m.MarkSemester).
		Delete(&model.MarkModel{}).Error; err != nil {
		return err
	}
	m.MarkID = 0
	return tx.Create(&m).Error
}
