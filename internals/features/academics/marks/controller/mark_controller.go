package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/academics/marks/dto"
	markService "campusdesk_backend/internals/features/academics/marks/service"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	studentService "campusdesk_backend/internals/features/academics/students/service"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type MarkController struct {
	DB *gorm.DB
}

// POST /api/marks
// Single-record variant of the bulk path: student stub upsert + replace
// on (admission, subject, semester), one transaction.
func (h *MarkController) Create(c *fiber.Ctx) error {
	var req dto.CreateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(err)
	}

	if err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := studentService.UpsertStudents(tx, []studentModel.StudentModel{req.StudentStub()}); err != nil {
			return helper.DBError("student upsert", err)
		}
		if err := markService.ReplaceMark(tx, req.ToModel()); err != nil {
			return helper.DBError("mark write", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "mark saved", nil)
}
