package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campusdesk_backend/internals/constants"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	"campusdesk_backend/internals/features/ingestion/dto"
)

// NormalizedBatch is what the upsert engine consumes: canonicalized
// rows plus the deduplicated first-seen student set.
type NormalizedBatch struct {
	Type     constants.RecordType
	College  string
	Students []studentModel.StudentModel
	Rows     []NormalizedRow
	Skipped  int
}

// NormalizedRow pairs a surviving record with its canonical admission
// number.
type NormalizedRow struct {
	AdmissionNo string
	Record      dto.UploadRecord
}

// NormalizeBatch canonicalizes an upload before any write:
//   - rows without an admission number are skipped, not fatal;
//   - a non-"all" college scope must match every row's own college code
//     (case-insensitive, trimmed); the first mismatch aborts the batch;
//   - one first-seen student per admission number, last value per field
//     winning within the batch, with the program falling back to the
//     default and the roll number to the admission number's tail.
func NormalizeBatch(req dto.UploadRequest) (*NormalizedBatch, error) {
	if !req.Type.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("unknown record type %q", string(req.Type)))
	}

	scope := strings.TrimSpace(req.College)
	wildcard := strings.EqualFold(scope, constants.ScopeAll)

	batch := &NormalizedBatch{Type: req.Type, College: strings.ToUpper(scope)}
	seen := map[string]int{} // admission no -> index into Students

	for _, r := range req.Records {
		adm := strings.ToUpper(strings.TrimSpace(r.AdmissionNo))
		if adm == "" {
			batch.Skipped++
			continue
		}

		college := strings.ToUpper(strings.TrimSpace(r.CollegeCode))
		if !wildcard && !strings.EqualFold(college, scope) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("college scope mismatch: record has %q, upload declared %q", r.CollegeCode, scope))
		}

		if err := validateRow(req.Type, r); err != nil {
			return nil, err
		}

		idx, ok := seen[adm]
		if !ok {
			seen[adm] = len(batch.Students)
			batch.Students = append(batch.Students, firstSeenStudent(adm, college, r))
		} else {
			mergeStudentFields(&batch.Students[idx], college, r)
		}

		batch.Rows = append(batch.Rows, NormalizedRow{AdmissionNo: adm, Record: r})
	}

	return batch, nil
}

func validateRow(t constants.RecordType, r dto.UploadRecord) error {
	switch t {
	case constants.RecordTypeMarks:
		if strings.TrimSpace(r.SubjectCode) == "" || r.Semester <= 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("marks row for %s needs subjectCode and semester", r.AdmissionNo))
		}
	case constants.RecordTypeFee:
		if strings.TrimSpace(r.AcademicYear) == "" || strings.TrimSpace(r.FeeType) == "" {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("fee row for %s needs academicYear and feeType", r.AdmissionNo))
		}
	case constants.RecordTypeAttendance:
		if strings.TrimSpace(r.Date) == "" {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("attendance row for %s needs a date", r.AdmissionNo))
		}
	}
	return nil
}

func firstSeenStudent(adm, college string, r dto.UploadRecord) studentModel.StudentModel {
	s := studentModel.StudentModel{
		StudentAdmissionNo: adm,
		StudentCollegeCode: college,
		StudentProgramCode: strings.ToUpper(strings.TrimSpace(r.ProgramCode)),
		StudentRollNo:      strings.TrimSpace(r.RollNo),
		StudentName:        strings.TrimSpace(r.Name),
		StudentGender:      strings.TrimSpace(r.Gender),
		StudentFatherNo:    strings.TrimSpace(r.FatherNo),
	}
	s.ApplyDefaults()
	return s
}

// mergeStudentFields: last non-empty value per field wins within the
// batch.
func mergeStudentFields(s *studentModel.StudentModel, college string, r dto.UploadRecord) {
	if college != "" {
		s.StudentCollegeCode = college
	}
	if v := strings.TrimSpace(r.Name); v != "" {
		s.StudentName = v
	}
	if v := strings.TrimSpace(r.Gender); v != "" {
		s.StudentGender = v
	}
	if v := strings.ToUpper(strings.TrimSpace(r.ProgramCode)); v != "" {
		s.StudentProgramCode = v
	}
	if v := strings.TrimSpace(r.RollNo); v != "" {
		s.StudentRollNo = v
	}
	if v := strings.TrimSpace(r.FatherNo); v != "" {
		s.StudentFatherNo = v
	}
}
