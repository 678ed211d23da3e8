package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/constants"
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	"campusdesk_backend/internals/features/audit/model"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
	helper "campusdesk_backend/internals/helpers"
)

// Restore replays the snapshots of the given log entries back into
// their origin tables (fresh sequence IDs), then removes the consumed
// entries in one bulk delete. One transaction end to end: a single
// failed reinsertion restores nothing.
func Restore(ctx context.Context, db *gorm.DB, logIDs []int64) (int, error) {
	restored := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entries []model.DeletedLogModel
		if err := tx.Where("log_id IN ?", logIDs).Find(&entries).Error; err != nil {
			return helper.DBError("log select", err)
		}
		if len(entries) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no log entries found")
		}
		if len(entries) != len(dedupe(logIDs)) {
			return fiber.NewError(fiber.StatusNotFound, "one or more log entries not found")
		}

		for _, entry := range entries {
			n, err := replayEntry(tx, entry)
			if err != nil {
				return err
			}
			restored += n
		}

		if err := tx.Where("log_id IN ?", logIDs).Delete(&model.DeletedLogModel{}).Error; err != nil {
			return helper.DBError("log delete", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return restored, nil
}

func replayEntry(tx *gorm.DB, entry model.DeletedLogModel) (int, error) {
	switch entry.LogDataType {
	case constants.RecordTypeMarks:
		var rows []markModel.MarkModel
		if err := sonic.Unmarshal(entry.LogSnapshot, &rows); err != nil {
			return 0, fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("snapshot decode (log %d): %v", entry.LogID, err))
		}
		for i := range rows {
			rows[i].MarkID = 0
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return 0, helper.DBError(fmt.Sprintf("marks restore (log %d)", entry.LogID), err)
			}
		}
		return len(rows), nil

	case constants.RecordTypeFee:
		var rows []feeModel.FeeModel
		if err := sonic.Unmarshal(entry.LogSnapshot, &rows); err != nil {
			return 0, fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("snapshot decode (log %d): %v", entry.LogID, err))
		}
		for i := range rows {
			rows[i].FeeID = 0
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return 0, helper.DBError(fmt.Sprintf("fees restore (log %d)", entry.LogID), err)
			}
		}
		return len(rows), nil

	case constants.RecordTypeAttendance:
		var rows []attendanceModel.AttendanceModel
		if err := sonic.Unmarshal(entry.LogSnapshot, &rows); err != nil {
			return 0, fiber.NewError(fiber.StatusInternalServerError,
				fmt.Sprintf("snapshot decode (log %d): %v", entry.LogID, err))
		}
		for i := range rows {
			rows[i].AttendanceID = 0
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return 0, helper.DBError(fmt.Sprintf("attendance restore (log %d)", entry.LogID), err)
			}
		}
		return len(rows), nil

	default:
		return 0, fiber.NewError(fiber.StatusInternalServerError,
			fmt.Sprintf("log %d has unknown data type %q", entry.LogID, string(entry.LogDataType)))
	}
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
