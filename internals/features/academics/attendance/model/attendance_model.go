package model

import (
	"time"

	"campusdesk_backend/internals/constants"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

// AttendanceModel is one day-row per student: two half-day slots, each
// Present/Absent. Unique on (admission_no, date).
type AttendanceModel struct {
	AttendanceID          int64     `gorm:"primaryKey;autoIncrement;column:attendance_id" json:"attendance_id"`
	AttendanceAdmissionNo string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_attendance_day;column:attendance_admission_no" json:"attendance_admission_no"`
	AttendanceDate        time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_day;column:attendance_date" json:"attendance_date"`
	AttendanceMorning     string    `gorm:"type:varchar(10);not null;default:'Absent';column:attendance_morning" json:"attendance_morning"`
	AttendanceAfternoon   string    `gorm:"type:varchar(10);not null;default:'Absent';column:attendance_afternoon" json:"attendance_afternoon"`

	Student *studentModel.StudentModel `gorm:"foreignKey:AttendanceAdmissionNo;references:StudentAdmissionNo;constraint:OnDelete:CASCADE" json:"-"`
}

func (AttendanceModel) TableName() string { return "student_attendance" }

// MergeSlot applies the conservative re-upload rule: a slot already
// Present never goes back to Absent; only Absent → Present is accepted.
func MergeSlot(existing, incoming string) string {
	if existing == constants.SlotPresent {
		return constants.SlotPresent
	}
	if incoming == constants.SlotPresent {
		return constants.SlotPresent
	}
	return constants.SlotAbsent
}

// Merge folds an incoming day-row into the stored one, slot by slot.
func (m *AttendanceModel) Merge(morning, afternoon string) {
	m.AttendanceMorning = MergeSlot(m.AttendanceMorning, morning)
	m.AttendanceAfternoon = MergeSlot(m.AttendanceAfternoon, afternoon)
}
