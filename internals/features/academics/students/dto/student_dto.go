package dto

import (
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	placementModel "campusdesk_backend/internals/features/academics/placements/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
)

// StudentDetailResponse bundles a student with every child row set.
type StudentDetailResponse struct {
	Student    studentModel.StudentModel       `json:"student"`
	Marks      []markModel.MarkModel           `json:"marks"`
	Attendance []attendanceModel.AttendanceModel `json:"attendance"`
	Fees       []feeModel.FeeModel             `json:"fees"`
	Placement  *placementModel.PlacementModel  `json:"placement,omitempty"`
}
