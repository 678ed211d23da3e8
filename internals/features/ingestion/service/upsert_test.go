package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusdesk_backend/internals/constants"
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	"campusdesk_backend/internals/features/ingestion/dto"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&markModel.MarkModel{},
		&attendanceModel.AttendanceModel{},
		&feeModel.FeeModel{},
	))
	return db
}

func marksBatch(records ...dto.UploadRecord) dto.UploadRequest {
	return dto.UploadRequest{Type: constants.RecordTypeMarks, College: "all", Records: records}
}

func TestApplyBatch_MarksReuploadIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	req := marksBatch(dto.UploadRecord{
		AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A",
		Semester: 3, SubjectCode: "BCA301", Internal: 20, External: 45, Obtained: 65, Max: 100,
	})

	for i := 0; i < 2; i++ {
		batch, err := NormalizeBatch(req)
		require.NoError(t, err)
		count, err := engine.ApplyBatch(context.Background(), batch)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}

	var rows []markModel.MarkModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "replace semantics: same key never accumulates")
	assert.Equal(t, 65, rows[0].MarkObtained)
}

func TestApplyBatch_MarksReplaceOverwritesScore(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	first := marksBatch(dto.UploadRecord{
		AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A",
		Semester: 3, SubjectCode: "BCA301", Internal: 10, External: 20, Obtained: 30, Max: 100,
	})
	second := marksBatch(dto.UploadRecord{
		AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A",
		Semester: 3, SubjectCode: "BCA301", Internal: 22, External: 48, Obtained: 70, Max: 100,
	})

	for _, req := range []dto.UploadRequest{first, second} {
		batch, err := NormalizeBatch(req)
		require.NoError(t, err)
		_, err = engine.ApplyBatch(context.Background(), batch)
		require.NoError(t, err)
	}

	var rows []markModel.MarkModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 70, rows[0].MarkObtained)
	assert.Equal(t, 22, rows[0].MarkInternal)
}

func TestApplyBatch_AttendancePresentIsSticky(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	upload := func(morning, afternoon string) {
		req := dto.UploadRequest{
			Type: constants.RecordTypeAttendance, College: "all",
			Records: []dto.UploadRecord{{
				AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A",
				Date: "2024-01-15", Morning: morning, Afternoon: afternoon,
			}},
		}
		batch, err := NormalizeBatch(req)
		require.NoError(t, err)
		_, err = engine.ApplyBatch(context.Background(), batch)
		require.NoError(t, err)
	}

	upload("Present", "Absent")
	upload("Absent", "Present") // fills the other slot, must not downgrade morning
	upload("Absent", "Absent")  // no-op: Present never becomes Absent

	var rows []attendanceModel.AttendanceModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "one row per student per day")
	assert.Equal(t, constants.SlotPresent, rows[0].AttendanceMorning)
	assert.Equal(t, constants.SlotPresent, rows[0].AttendanceAfternoon)
}

func TestApplyBatch_FeeResubmissionAppends(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	req := dto.UploadRequest{
		Type: constants.RecordTypeFee, College: "all",
		Records: []dto.UploadRecord{{
			AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A",
			AcademicYear: "2023-24", Semester: 3, FeeType: "tuition",
		}},
	}

	for i := 0; i < 2; i++ {
		batch, err := NormalizeBatch(req)
		require.NoError(t, err)
		_, err = engine.ApplyBatch(context.Background(), batch)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&feeModel.FeeModel{}).Count(&count).Error)
	// documented gap: the ledger never deduplicates
	assert.Equal(t, int64(2), count)
}

func TestApplyBatch_FatherContactCoalesces(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	withFather := marksBatch(dto.UploadRecord{
		AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A", FatherNo: "9000000001",
		Semester: 1, SubjectCode: "S1",
	})
	withoutFather := marksBatch(dto.UploadRecord{
		AdmissionNo: "21AB001", CollegeCode: "KMC", Name: "A Renamed",
		Semester: 2, SubjectCode: "S2",
	})

	for _, req := range []dto.UploadRequest{withFather, withoutFather} {
		batch, err := NormalizeBatch(req)
		require.NoError(t, err)
		_, err = engine.ApplyBatch(context.Background(), batch)
		require.NoError(t, err)
	}

	var s studentModel.StudentModel
	require.NoError(t, db.First(&s, "student_admission_no = ?", "21AB001").Error)
	assert.Equal(t, "A Renamed", s.StudentName, "name is always overwritten")
	assert.Equal(t, "9000000001", s.StudentFatherNo, "empty upload must not erase the contact")
}

func TestApplyBatch_RowFailureRollsBackWholeBatch(t *testing.T) {
	db := openTestDB(t)
	engine := NewUpsertEngine(db)

	// hand-built batch: second row references a student the batch never
	// upserts, so the FK write fails after the first row succeeded
	batch := &NormalizedBatch{
		Type: constants.RecordTypeMarks,
		Students: []studentModel.StudentModel{{
			StudentAdmissionNo: "21AB001", StudentCollegeCode: "KMC",
			StudentProgramCode: "BCA", StudentName: "A", StudentRollNo: "01",
		}},
		Rows: []NormalizedRow{
			{AdmissionNo: "21AB001", Record: dto.UploadRecord{Semester: 1, SubjectCode: "S1"}},
			{AdmissionNo: "99ZZ999", Record: dto.UploadRecord{Semester: 1, SubjectCode: "S1"}},
		},
	}

	_, err := engine.ApplyBatch(context.Background(), batch)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&markModel.MarkModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "no partial commit")
}
