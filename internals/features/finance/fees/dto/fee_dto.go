package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	studentModel "campusdesk_backend/internals/features/academics/students/model"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
)

type CreateFeeRequest struct {
	AdmissionNo string `json:"admissionNo" validate:"required"`
	Name        string `json:"name" validate:"required"`
	CollegeCode string `json:"collegeCode" validate:"required"`
	ProgramCode string `json:"programCode"`
	RollNo      string `json:"rollNo"`
	Gender      string `json:"gender"`
	FatherNo    string `json:"fatherNo"`

	AcademicYear string          `json:"academicYear" validate:"required"`
	Semester     int             `json:"semester" validate:"required,min=1"`
	FeeType      string          `json:"feeType" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaidOn       string          `json:"paidOn"`
	ReceiptNo    string          `json:"receiptNo"`
}

func (r CreateFeeRequest) CanonicalAdmissionNo() string {
	return strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
}

func (r CreateFeeRequest) ToModel() feeModel.FeeModel {
	f := feeModel.FeeModel{
		FeeAdmissionNo:  r.CanonicalAdmissionNo(),
		FeeAcademicYear: strings.TrimSpace(r.AcademicYear),
		FeeSemester:     r.Semester,
		FeeType:         strings.TrimSpace(r.FeeType),
		FeeAmount:       r.Amount,
		FeeReceiptNo:    strings.TrimSpace(r.ReceiptNo),
	}
	if d, err := time.Parse(time.DateOnly, strings.TrimSpace(r.PaidOn)); err == nil {
		f.FeePaidOn = &d
	}
	return f
}

func (r CreateFeeRequest) StudentStub() studentModel.StudentModel {
	s := studentModel.StudentModel{
		StudentAdmissionNo: r.CanonicalAdmissionNo(),
		StudentCollegeCode: strings.ToUpper(strings.TrimSpace(r.CollegeCode)),
		StudentProgramCode: strings.ToUpper(strings.TrimSpace(r.ProgramCode)),
		StudentRollNo:      strings.TrimSpace(r.RollNo),
		StudentName:        strings.TrimSpace(r.Name),
		StudentGender:      strings.TrimSpace(r.Gender),
		StudentFatherNo:    strings.TrimSpace(r.FatherNo),
	}
	s.ApplyDefaults()
	return s
}
