package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/ingestion/dto"
	"campusdesk_backend/internals/features/ingestion/service"
	helper "campusdesk_backend/internals/helpers"
)

var validate = validator.New()

type UploadController struct {
	DB *gorm.DB
}

// POST /api/upload
// Bulk ingest: normalize → upsert under one transaction. Nothing is
// written when the batch aborts.
func (h *UploadController) Upload(c *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(err)
	}

	batch, err := service.NormalizeBatch(req)
	if err != nil {
		return err
	}
	if len(batch.Rows) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no usable records in upload")
	}

	engine := service.NewUpsertEngine(h.DB)
	count, err := engine.ApplyBatch(c.Context(), batch)
	if err != nil {
		return err
	}

	return helper.JsonOK(c,
		fmt.Sprintf("%d records processed", count),
		fiber.Map{"submitted": count, "skipped": batch.Skipped},
	)
}
