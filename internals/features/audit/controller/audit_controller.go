package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/audit/dto"
	"campusdesk_backend/internals/features/audit/model"
	"campusdesk_backend/internals/features/audit/service"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type AuditController struct {
	DB *gorm.DB
}

// POST /api/delete-student-data
func (h *AuditController) DeleteStudentData(c *fiber.Ctx) error {
	var req dto.DeleteStudentDataRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(err)
	}
	if !req.DataType.Valid() {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("unknown data type %q", string(req.DataType)))
	}

	result, err := service.DeleteWithCapture(c.Context(), h.DB, req)
	if err != nil {
		return err
	}

	return helper.JsonOK(c,
		fmt.Sprintf("%d records deleted and logged", result.Rows),
		result,
	)
}

// GET /api/deleted-log
func (h *AuditController) ListLog(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.DeletedLogModel{}).Count(&total).Error; err != nil {
		return helper.DBError("log count", err)
	}

	var entries []model.DeletedLogModel
	if err := h.DB.WithContext(c.Context()).
		Order("log_deleted_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&entries).Error; err != nil {
		return helper.DBError("log select", err)
	}

	return helper.JsonList(c, entries, helper.BuildPagination(total, paging))
}

// DELETE /api/deleted-log
// Operator purge of the whole log. Restoring the purged entries is no
// longer possible afterwards.
func (h *AuditController) PurgeLog(c *fiber.Ctx) error {
	res := h.DB.WithContext(c.Context()).
		Where("log_id IS NOT NULL").
		Delete(&model.DeletedLogModel{})
	if res.Error != nil {
		return helper.DBError("log purge", res.Error)
	}
	return helper.JsonOK(c,
		fmt.Sprintf("%d log entries purged", res.RowsAffected), nil)
}

// POST /api/restore-log
func (h *AuditController) Restore(c *fiber.Ctx) error {
	var req dto.RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(err)
	}

	restored, err := service.Restore(c.Context(), h.DB, req.LogIDs)
	if err != nil {
		return err
	}

	return helper.JsonOK(c,
		fmt.Sprintf("%d rows restored", restored),
		fiber.Map{"restored": restored},
	)
}
