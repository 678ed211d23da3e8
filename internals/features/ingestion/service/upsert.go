package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/constants"
	attendanceService "campusdesk_backend/internals/features/academics/attendance/service"
	markService "campusdesk_backend/internals/features/academics/marks/service"
	studentService "campusdesk_backend/internals/features/academics/students/service"
	helper "campusdesk_backend/internals/helpers"
)

// UpsertEngine applies a normalized batch under one all-or-nothing
// transaction: student upserts first, then the type-specific writes.
// Any row failure rolls the whole batch back.
type UpsertEngine struct {
	DB *gorm.DB
}

func NewUpsertEngine(db *gorm.DB) *UpsertEngine {
	return &UpsertEngine{DB: db}
}

// ApplyBatch returns the number of submitted rows on success. The count
// does not split inserted vs updated rows; callers report it as-is.
func (e *UpsertEngine) ApplyBatch(ctx context.Context, batch *NormalizedBatch) (int, error) {
	err := e.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := studentService.UpsertStudents(tx, batch.Students); err != nil {
			return helper.DBError("student upsert", err)
		}

		switch batch.Type {
		case constants.RecordTypeMarks:
			return e.applyMarks(tx, batch.Rows)
		case constants.RecordTypeFee:
			return e.applyFees(tx, batch.Rows)
		case constants.RecordTypeAttendance:
			return e.applyAttendance(tx, batch.Rows)
		default:
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("unknown record type %q", string(batch.Type)))
		}
	})
	if err != nil {
		return 0, err
	}
	return len(batch.Rows), nil
}

func (e *UpsertEngine) applyMarks(tx *gorm.DB, rows []NormalizedRow) error {
	for i, row := range rows {
		if err := markService.ReplaceMark(tx, row.Record.ToMark(row.AdmissionNo)); err != nil {
			return helper.DBError(fmt.Sprintf("marks write (row %d of %d)", i+1, len(rows)), err)
		}
	}
	return nil
}

func (e *UpsertEngine) applyFees(tx *gorm.DB, rows []NormalizedRow) error {
	for i, row := range rows {
		fee := row.Record.ToFee(row.AdmissionNo)
		if err := tx.Create(&fee).Error; err != nil {
			return helper.DBError(fmt.Sprintf("fee write (row %d of %d)", i+1, len(rows)), err)
		}
	}
	return nil
}

func (e *UpsertEngine) applyAttendance(tx *gorm.DB, rows []NormalizedRow) error {
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, strings.TrimSpace(row.Record.Date))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("attendance write (row %d of %d): bad date %q", i+1, len(rows), row.Record.Date))
		}
		day := row.Record.ToAttendance(row.AdmissionNo, date)
		if err := attendanceService.MergeDay(tx, day); err != nil {
			return helper.DBError(fmt.Sprintf("attendance write (row %d of %d)", i+1, len(rows)), err)
		}
	}
	return nil
}
