package dto

import (
	"strings"

	markModel "campusdesk_backend/internals/features/academics/marks/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

type CreateMarkRequest struct {
	AdmissionNo string `json:"admissionNo" validate:"required"`
	Name        string `json:"name" validate:"required"`
	CollegeCode string `json:"collegeCode" validate:"required"`
	ProgramCode string `json:"programCode"`
	RollNo      string `json:"rollNo"`
	Gender      string `json:"gender"`
	FatherNo    string `json:"fatherNo"`

	Semester    int    `json:"semester" validate:"required,min=1"`
	SubjectCode string `json:"subjectCode" validate:"required"`
	SubjectName string `json:"subjectName"`
	Internal    int    `json:"internal" validate:"min=0"`
	External    int    `json:"external" validate:"min=0"`
	Obtained    int    `json:"marksObtained" validate:"min=0"`
	Max         int    `json:"maxMarks" validate:"min=0"`
	Result      string `json:"result"`
}

func (r CreateMarkRequest) CanonicalAdmissionNo() string {
	return strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
}

func (r CreateMarkRequest) ToModel() markModel.MarkModel {
	return markModel.MarkModel{
		MarkAdmissionNo: r.CanonicalAdmissionNo(),
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

func (r CreateMarkRequest) StudentStub() studentModel.StudentModel {
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
