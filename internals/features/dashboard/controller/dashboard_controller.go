package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusdesk_backend/internals/features/dashboard/service"
	helper "campusdesk_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

// GET /api/dashboard?college=&program=&rollNo=&admissionYear=
// Read-only cohort metrics. "all" (or omitted) skips a filter.
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	filter := service.CohortFilter{
		College:       c.Query("college"),
		Program:       c.Query("program", c.Query("department")),
		RollNo:        c.Query("rollNo"),
		AdmissionYear: c.Query("admissionYear"),
	}

	resp, err := service.NewAggregator(h.DB).Overview(c.Context(), filter)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "dashboard metrics", resp)
}
