package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"campusdesk_backend/internals/constants"
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
)

// UploadRequest is the tagged bulk-ingest payload. The record type is a
// closed enum checked at the boundary; per-type required fields are
// enforced by the normalizer so a bad row aborts before any write.
type UploadRequest struct {
	Type    constants.RecordType `json:"type" validate:"required"`
	College string               `json:"college" validate:"required"`
	Records []UploadRecord       `json:"records" validate:"required,min=1"`
}

// UploadRecord carries the superset of fields across the three record
// types; the type tag on the batch decides which ones matter.
type UploadRecord struct {
	AdmissionNo string `json:"admissionNo"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	CollegeCode string `json:"collegeCode"`
	ProgramCode string `json:"programCode"`
	RollNo      string `json:"rollNo"`
	FatherNo    string `json:"fatherNo"`

	// marks
	Semester    int    `json:"semester"`
	SubjectCode string `json:"subjectCode"`
	SubjectName string `json:"subjectName"`
	Internal    int    `json:"internal"`
	External    int    `json:"external"`
	Obtained    int    `json:"marksObtained"`
	Max         int    `json:"maxMarks"`
	Result      string `json:"result"`

	// fee
	AcademicYear string          `json:"academicYear"`
	FeeType      string          `json:"feeType"`
	Amount       decimal.Decimal `json:"amount"`
	PaidOn       string          `json:"paidOn"`
	ReceiptNo    string          `json:"receiptNo"`

	// studentAttendance
	Date      string `json:"date"` // YYYY-MM-DD
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
}

func (r UploadRecord) ToMark(admissionNo string) markModel.MarkModel {
	return markModel.MarkModel{
		MarkAdmissionNo: admissionNo,
		MarkSemester:    r.Semester,
		MarkSubjectCode: strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		MarkSubjectName: strings.TrimSpace(r.SubjectName),
		MarkInternal:    r.Internal,
		MarkExternal:    r.External,
		MarkObtained:    r.Obtained,
		MarkMax:         r.Max,
		MarkResult:      strings.TrimSpace(r.Result),
	}
}

func (r UploadRecord) ToFee(admissionNo string) feeModel.FeeModel {
	f := feeModel.FeeModel{
		FeeAdmissionNo:  admissionNo,
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

func (r UploadRecord) ToAttendance(admissionNo string, date time.Time) attendanceModel.AttendanceModel {
	return attendanceModel.AttendanceModel{
		AttendanceAdmissionNo: admissionNo,
		AttendanceDate:        date,
		AttendanceMorning:     NormalizeSlot(r.Morning),
		AttendanceAfternoon:   NormalizeSlot(r.Afternoon),
	}
}

// NormalizeSlot collapses any non-Present value (including blanks) to
// Absent.
func NormalizeSlot(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), constants.SlotPresent) {
		return constants.SlotPresent
	}
	return constants.SlotAbsent
}
