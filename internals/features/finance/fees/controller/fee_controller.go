package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "campusdesk_backend/internals/features/academics/students/model"
	studentService "campusdesk_backend/internals/features/academics/students/service"
	"campusdesk_backend/internals/features/finance/fees/dto"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type FeeController struct {
	DB *gorm.DB
}

// POST /api/fees
// Insert-only: the ledger is append-only and repeated submissions are
// not deduplicated (caller's responsibility).
func (h *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeRequest
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
		fee := req.ToModel()
		if err := tx.Create(&fee).Error; err != nil {
			return helper.DBError("fee write", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "fee recorded", nil)
}
