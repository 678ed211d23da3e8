package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk_backend/internals/constants"
	"campusdesk_backend/internals/features/ingestion/dto"
)

func marksRow(adm, college string) dto.UploadRecord {
	return dto.UploadRecord{
		AdmissionNo: adm,
		CollegeCode: college,
		Name:        "Test Student",
		Semester:    3,
		SubjectCode: "bca301",
	}
}

func TestNormalizeBatch_SkipsRowsWithoutAdmissionNo(t *testing.T) {
	req := dto.UploadRequest{
		Type:    constants.RecordTypeMarks,
		College: "all",
		Records: []dto.UploadRecord{
			marksRow("21AB001", "KMC"),
			marksRow("   ", "KMC"),
			marksRow("", "KMC"),
		},
	}

	batch, err := NormalizeBatch(req)
	require.NoError(t, err)
	assert.Len(t, batch.Rows, 1)
	assert.Equal(t, 2, batch.Skipped)
}

func TestNormalizeBatch_ScopeMismatchAbortsNamingBothValues(t *testing.T) {
	req := dto.UploadRequest{
		Type:    constants.RecordTypeMarks,
		College: "KMC",
		Records: []dto.UploadRecord{
			marksRow("21AB001", "kmc "), // case/space insensitive match
			marksRow("21AB002", "RGM"),
		},
	}

	batch, err := NormalizeBatch(req)
	require.Error(t, err)
	assert.Nil(t, batch)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "RGM")
	assert.Contains(t, fe.Message, "KMC")
}

func TestNormalizeBatch_StudentDefaultsAndDedupe(t *testing.T) {
	req := dto.UploadRequest{
		Type:    constants.RecordTypeMarks,
		College: "all",
		Records: []dto.UploadRecord{
			{AdmissionNo: "21ab047", CollegeCode: "kmc", Name: "First Name", Semester: 1, SubjectCode: "S1"},
			{AdmissionNo: "21AB047", CollegeCode: "KMC", Name: "Second Name", FatherNo: "9000000000", Semester: 2, SubjectCode: "S2"},
		},
	}

	batch, err := NormalizeBatch(req)
	require.NoError(t, err)

	require.Len(t, batch.Students, 1)
	s := batch.Students[0]
	assert.Equal(t, "21AB047", s.StudentAdmissionNo)
	assert.Equal(t, "KMC", s.StudentCollegeCode)
	// last value per field wins within the batch
	assert.Equal(t, "Second Name", s.StudentName)
	assert.Equal(t, "9000000000", s.StudentFatherNo)
	// defaults: program falls back, roll comes from the admission tail
	assert.Equal(t, constants.DefaultProgramCode, s.StudentProgramCode)
	assert.Equal(t, "47", s.StudentRollNo)

	assert.Len(t, batch.Rows, 2)
}

func TestNormalizeBatch_RejectsUnknownType(t *testing.T) {
	req := dto.UploadRequest{
		Type:    constants.RecordType("grades"),
		College: "all",
		Records: []dto.UploadRecord{marksRow("21AB001", "KMC")},
	}

	_, err := NormalizeBatch(req)
	require.Error(t, err)
}

func TestNormalizeBatch_MarksRowNeedsSubjectAndSemester(t *testing.T) {
	req := dto.UploadRequest{
		Type:    constants.RecordTypeMarks,
		College: "all",
		Records: []dto.UploadRecord{
			{AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "X"},
		},
	}

	_, err := NormalizeBatch(req)
	require.Error(t, err)
}
