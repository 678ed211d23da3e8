package model

import (
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

// MarkModel holds one score per (student, semester, subject). A re-upload
// for the same key replaces the row wholesale.
type MarkModel struct {
	MarkID          int64  `gorm:"primaryKey;autoIncrement;column:mark_id" json:"mark_id"`
	MarkAdmissionNo string `gorm:"type:varchar(20);not null;index;column:mark_admission_no" json:"mark_admission_no"`
	MarkSemester    int    `gorm:"not null;column:mark_semester" json:"mark_semester"`
	MarkSubjectCode string `gorm:"type:varchar(20);not null;column:mark_subject_code" json:"mark_subject_code"`
	MarkSubjectName string `gorm:"type:varchar(120);column:mark_subject_name" json:"mark_subject_name"`
	MarkInternal    int    `gorm:"not null;default:0;column:mark_internal" json:"mark_internal"`
	MarkExternal    int    `gorm:"not null;default:0;column:mark_external" json:"mark_external"`
	MarkObtained    int    `gorm:"not null;default:0;column:mark_obtained" json:"mark_obtained"`
	MarkMax         int    `gorm:"not null;default:0;column:mark_max" json:"mark_max"`
	MarkResult      string `gorm:"type:varchar(10);column:mark_result" json:"mark_result"`

	Student *studentModel.StudentModel `gorm:"foreignKey:MarkAdmissionNo;references:StudentAdmissionNo;constraint:OnDelete:CASCADE" json:"-"`
}

func (MarkModel) TableName() string { return "student_marks" }
