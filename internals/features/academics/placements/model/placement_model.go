package model

import (
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

// PlacementModel is one-to-one with a student; upserts replace the prior
// record and flip the student's placed flag as a side effect.
type PlacementModel struct {
	PlacementID          int64  `gorm:"primaryKey;autoIncrement;column:placement_id" json:"placement_id"`
	PlacementAdmissionNo string `gorm:"type:varchar(20);not null;uniqueIndex;column:placement_admission_no" json:"placement_admission_no"`
	PlacementCompany     string `gorm:"type:varchar(120);not null;column:placement_company" json:"placement_company"`
	PlacementRole        string `gorm:"type:varchar(80);column:placement_role" json:"placement_role"`
	PlacementPackage     string `gorm:"type:varchar(40);column:placement_package" json:"placement_package"`
	PlacementContactNo   string `gorm:"type:varchar(15);column:placement_contact_no" json:"placement_contact_no"`
	PlacementYear        int    `gorm:"column:placement_year" json:"placement_year"`

	Student *studentModel.StudentModel `gorm:"foreignKey:PlacementAdmissionNo;references:StudentAdmissionNo;constraint:OnDelete:CASCADE" json:"-"`
}

func (PlacementModel) TableName() string { return "placement_details" }
