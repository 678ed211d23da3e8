package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "campusdesk_backend/internals/helpers"
)

type CatalogController struct{}

// GET /api/subjects?program=&semester=
func (h *CatalogController) Subjects(c *fiber.Ctx) error {
	program := strings.ToUpper(strings.TrimSpace(c.Query("program")))
	semester, _ := strconv.Atoi(strings.TrimSpace(c.Query("semester")))
	if program == "" || semester <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "program and semester required")
	}

	list, ok := Lookup(program, semester)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("no subjects for %s semester %d", program, semester))
	}
	return helper.JsonOK(c, "subject list", list)
}

func CatalogRoutes(r fiber.Router, _ *gorm.DB) {
	ctl := &CatalogController{}
	r.Get("/subjects", ctl.Subjects) // GET /api/subjects
}
