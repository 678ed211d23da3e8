package service

import (
	"errors"

	"gorm.io/gorm"

	"campusdesk_backend/internals/features/academics/attendance/model"
)

// MergeDay inserts a fresh day-row or folds the upload into the stored
// one under the sticky-Present rule.
func MergeDay(tx *gorm.DB, day model.AttendanceModel) error {
	var existing model.AttendanceModel
	err := tx.
		Where("attendance_admission_no = ? AND attendance_date = ?",
			day.AttendanceAdmissionNo, day.AttendanceDate).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		day.AttendanceID = 0
		return tx.Create(&day).Error
	}
	if err != nil {
		return err
	}

	existing.Merge(day.AttendanceMorning, day.AttendanceAfternoon)
	return tx.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", existing.AttendanceID).
		Updates(map[string]interface{}{
			"attendance_morning":   existing.AttendanceMorning,
			"attendance_afternoon": existing.AttendanceAfternoon,
		}).Error
}
