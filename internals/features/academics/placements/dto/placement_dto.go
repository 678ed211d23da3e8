package dto

import (
	"strings"

	placementModel "campusdesk_backend/internals/features/academics/placements/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

type CreatePlacementRequest struct {
	AdmissionNo string `json:"admissionNo" validate:"required"`
	Name        string `json:"name" validate:"required"`
	CollegeCode string `json:"collegeCode" validate:"required"`
	ProgramCode string `json:"programCode"`
	RollNo      string `json:"rollNo"`
	Gender      string `json:"gender"`

	Company   string `json:"company" validate:"required"`
	Role      string `json:"role"`
	Package   string `json:"package"`
	ContactNo string `json:"contactNo"`
	Year      int    `json:"year"`
}

func (r CreatePlacementRequest) CanonicalAdmissionNo() string {
	return strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
}

func (r CreatePlacementRequest) ToModel() placementModel.PlacementModel {
	return placementModel.PlacementModel{
		PlacementAdmissionNo: r.CanonicalAdmissionNo(),
		PlacementCompany:     strings.TrimSpace(r.Company),
		PlacementRole:        strings.TrimSpace(r.Role),
		PlacementPackage:     strings.TrimSpace(r.Package),
		PlacementContactNo:   strings.TrimSpace(r.ContactNo),
		PlacementYear:        r.Year,
	}
}

func (r CreatePlacementRequest) StudentStub() studentModel.StudentModel {
	s := studentModel.StudentModel{
		StudentAdmissionNo: r.CanonicalAdmissionNo(),
		StudentCollegeCode: strings.ToUpper(strings.TrimSpace(r.CollegeCode)),
		StudentProgramCode: strings.ToUpper(strings.TrimSpace(r.ProgramCode)),
		StudentRollNo:      strings.TrimSpace(r.RollNo),
		StudentName:        strings.TrimSpace(r.Name),
		StudentGender:      strings.TrimSpace(r.Gender),
	}
	s.ApplyDefaults()
	return s
}
