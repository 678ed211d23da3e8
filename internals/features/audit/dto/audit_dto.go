package dto

import (
	"strings"

	"campusdesk_backend/internals/constants"
)

// DeleteStudentDataRequest scopes an audited delete. Admission number
// and data type are always required; semester narrows marks and fees,
// academic year narrows fees (exact) and attendance (July-1 lower
// bound).
type DeleteStudentDataRequest struct {
	AdmissionNo  string               `json:"admissionNo" validate:"required"`
	DataType     constants.RecordType `json:"dataType" validate:"required"`
	Semester     *int                 `json:"semester"`
	AcademicYear string               `json:"academicYear"`
	DeletedBy    string               `json:"deletedBy" validate:"required"`
	Reason       string               `json:"reason"`
}

func (r DeleteStudentDataRequest) CanonicalAdmissionNo() string {
	return strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
}

type RestoreRequest struct {
	LogIDs []int64 `json:"logIds" validate:"required,min=1"`
}
