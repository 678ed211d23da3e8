package model

import (
	"time"

	"github.com/shopspring/decimal"

	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

// FeeModel is an append-only ledger row. No uniqueness beyond the
// identifying fields: repeated submissions create new rows (caller's
// responsibility to avoid duplicates).
type FeeModel struct {
	FeeID           int64           `gorm:"primaryKey;autoIncrement;column:fee_id" json:"fee_id"`
	FeeAdmissionNo  string          `gorm:"type:varchar(20);not null;index;column:fee_admission_no" json:"fee_admission_no"`
	FeeAcademicYear string          `gorm:"type:varchar(10);not null;column:fee_academic_year" json:"fee_academic_year"`
	FeeSemester     int             `gorm:"not null;column:fee_semester" json:"fee_semester"`
	FeeType         string          `gorm:"type:varchar(40);not null;column:fee_type" json:"fee_type"`
	FeeAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null;column:fee_amount" json:"fee_amount"`
	FeePaidOn       *time.Time      `gorm:"type:date;column:fee_paid_on" json:"fee_paid_on,omitempty"`
	FeeReceiptNo    string          `gorm:"type:varchar(40);column:fee_receipt_no" json:"fee_receipt_no"`

	Student *studentModel.StudentModel `gorm:"foreignKey:FeeAdmissionNo;references:StudentAdmissionNo;constraint:OnDelete:CASCADE" json:"-"`
}

func (FeeModel) TableName() string { return "student_fees" }
