package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/constants"
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	"campusdesk_backend/internals/features/audit/dto"
	"campusdesk_backend/internals/features/audit/model"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
	helper "campusdesk_backend/internals/helpers"
)

// ScopeLabel tags every audited delete; the narrowing lives in the
// snapshot itself.
const ScopeLabel = "student-data"

type CaptureResult struct {
	LogID int64 `json:"logId"`
	Rows  int   `json:"rows"`
}

// DeleteWithCapture snapshots every row the filter matches into one
// deleted_data_log entry, then deletes them with the identical filter.
// Both steps commit together; zero matches fails the request and writes
// nothing.
func DeleteWithCapture(ctx context.Context, db *gorm.DB, req dto.DeleteStudentDataRequest) (*CaptureResult, error) {
	adm := req.CanonicalAdmissionNo()

	var result CaptureResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			snapshot []byte
			count    int
			err      error
		)
		switch req.DataType {
		case constants.RecordTypeMarks:
			snapshot, count, err = captureMarks(tx, adm, req.Semester)
		case constants.RecordTypeFee:
			snapshot, count, err = captureFees(tx, adm, req.AcademicYear, req.Semester)
		case constants.RecordTypeAttendance:
			snapshot, count, err = captureAttendance(tx, adm, req.AcademicYear)
		default:
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("unknown data type %q", string(req.DataType)))
		}
		if err != nil {
			return err
		}

		entry := model.DeletedLogModel{
			LogAdmissionNo: adm,
			LogDataType:    req.DataType,
			LogScope:       ScopeLabel,
			LogDeletedBy:   strings.TrimSpace(req.DeletedBy),
			LogReason:      strings.TrimSpace(req.Reason),
			LogSnapshot:    snapshot,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return helper.DBError("audit log write", err)
		}

		result = CaptureResult{LogID: entry.LogID, Rows: count}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func captureMarks(tx *gorm.DB, adm string, semester *int) ([]byte, int, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		q = q.Where("mark_admission_no = ?", adm)
		if semester != nil {
			q = q.Where("mark_semester = ?", *semester)
		}
		return q
	}

	var rows []markModel.MarkModel
	if err := filter(tx).Find(&rows).Error; err != nil {
		return nil, 0, helper.DBError("snapshot select", err)
	}
	if len(rows) == 0 {
		return nil, 0, fiber.NewError(fiber.StatusNotFound, "no records found")
	}
	snapshot, err := sonic.Marshal(rows)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "snapshot encode: "+err.Error())
	}
	if err := filter(tx).Delete(&markModel.MarkModel{}).Error; err != nil {
		return nil, 0, helper.DBError("marks delete", err)
	}
	return snapshot, len(rows), nil
}

func captureFees(tx *gorm.DB, adm, academicYear string, semester *int) ([]byte, int, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		q = q.Where("fee_admission_no = ?", adm)
		if y := strings.TrimSpace(academicYear); y != "" {
			q = q.Where("fee_academic_year = ?", y)
		}
		if semester != nil {
			q = q.Where("fee_semester = ?", *semester)
		}
		return q
	}

	var rows []feeModel.FeeModel
	if err := filter(tx).Find(&rows).Error; err != nil {
		return nil, 0, helper.DBError("snapshot select", err)
	}
	if len(rows) == 0 {
		return nil, 0, fiber.NewError(fiber.StatusNotFound, "no records found")
	}
	snapshot, err := sonic.Marshal(rows)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "snapshot encode: "+err.Error())
	}
	if err := filter(tx).Delete(&feeModel.FeeModel{}).Error; err != nil {
		return nil, 0, helper.DBError("fees delete", err)
	}
	return snapshot, len(rows), nil
}

func captureAttendance(tx *gorm.DB, adm, academicYear string) ([]byte, int, error) {
	// A year that is present but unparseable is a client error, never a
	// silent delete over the student's whole history.
	year := strings.TrimSpace(academicYear)
	var cutoff time.Time
	haveCutoff := false
	if year != "" {
		c, ok := AcademicYearCutoff(year)
		if !ok {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("bad academic year %q", academicYear))
		}
		cutoff, haveCutoff = c, true
	}

	filter := func(q *gorm.DB) *gorm.DB {
		q = q.Where("attendance_admission_no = ?", adm)
		if haveCutoff {
			q = q.Where("attendance_date >= ?", cutoff)
		}
		return q
	}

	var rows []attendanceModel.AttendanceModel
	if err := filter(tx).Find(&rows).Error; err != nil {
		return nil, 0, helper.DBError("snapshot select", err)
	}
	if len(rows) == 0 {
		return nil, 0, fiber.NewError(fiber.StatusNotFound, "no records found")
	}
	snapshot, err := sonic.Marshal(rows)
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "snapshot encode: "+err.Error())
	}
	if err := filter(tx).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
		return nil, 0, helper.DBError("attendance delete", err)
	}
	return snapshot, len(rows), nil
}

// AcademicYearCutoff maps an academic-year string ("2023-24") to that
// year's July 1, the session start used as the attendance lower bound.
func AcademicYearCutoff(academicYear string) (time.Time, bool) {
	y := strings.TrimSpace(academicYear)
	if len(y) < 4 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(y[:4])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC), true
}
