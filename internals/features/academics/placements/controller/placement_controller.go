package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/academics/placements/dto"
	placementService "campusdesk_backend/internals/features/academics/placements/service"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	studentService "campusdesk_backend/internals/features/academics/students/service"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type PlacementController struct {
	DB *gorm.DB
}

// POST /api/placement
// Insert-or-update on the student's single placement row; flips the
// student's placed flag in the same transaction.
func (h *PlacementController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlacementRequest
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
		if err := placementService.UpsertPlacement(tx, req.ToModel()); err != nil {
			return helper.DBError("placement write", err)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "placement recorded", nil)
}
