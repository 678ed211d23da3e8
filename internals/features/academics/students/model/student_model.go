package model

import (
	"time"

	"campusdesk_backend/internals/constants"
)

// StudentModel is the registry row every child table hangs off.
// Admission number is the natural PK and never changes.
type StudentModel struct {
	StudentAdmissionNo string `gorm:"type:varchar(20);primaryKey;column:student_admission_no" json:"student_admission_no"`
	StudentCollegeCode string `gorm:"type:varchar(10);not null;column:student_college_code" json:"student_college_code"`
	StudentProgramCode string `gorm:"type:varchar(10);not null;column:student_program_code" json:"student_program_code"`
	StudentRollNo      string `gorm:"type:varchar(10);column:student_roll_no" json:"student_roll_no"`
	StudentName        string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentGender      string `gorm:"type:varchar(10);column:student_gender" json:"student_gender"`
	StudentIsPlaced    bool   `gorm:"not null;default:false;column:student_is_placed" json:"student_is_placed"`
	StudentFatherNo    string `gorm:"type:varchar(15);column:student_father_no" json:"student_father_no"`
	StudentContactNo   string `gorm:"type:varchar(15);column:student_contact_no" json:"student_contact_no"`

	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

// ApplyDefaults fills the fields an ingestion row may omit: the program
// falls back to the catch-all code, the roll number to the admission
// number's last two characters.
func (s *StudentModel) ApplyDefaults() {
	if s.StudentProgramCode == "" {
		s.StudentProgramCode = constants.DefaultProgramCode
	}
	if s.StudentRollNo == "" && len(s.StudentAdmissionNo) >= 2 {
		s.StudentRollNo = s.StudentAdmissionNo[len(s.StudentAdmissionNo)-2:]
	}
}
