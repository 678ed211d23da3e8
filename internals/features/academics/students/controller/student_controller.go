package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementModel "campusdesk_backend/internals/features/academics/placements/model"
	"campusdesk_backend/internals/features/academics/students/dto"
	"campusdesk_backend/internals/features/academics/students/model"
	helper "campusdesk_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

// GET /api/students?college=&program=&rollNo=&q=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.StudentModel{})
	if v := strings.TrimSpace(c.Query("college")); v != "" {
		q = q.Where("student_college_code = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(c.Query("program")); v != "" {
		q = q.Where("student_program_code = ?", strings.ToUpper(v))
	}
	if v := strings.TrimSpace(c.Query("rollNo")); v != "" {
		q = q.Where("student_roll_no = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToUpper(v) + "%"
		q = q.Where("student_admission_no LIKE ? OR UPPER(student_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.DBError("student count", err)
	}

	var students []model.StudentModel
	if err := q.Order("student_admission_no").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.DBError("student select", err)
	}

	return helper.JsonList(c, students, helper.BuildPagination(total, paging))
}

// GET /api/students/:id
func (h *StudentController) Detail(c *fiber.Ctx) error {
	adm := strings.ToUpper(strings.TrimSpace(c.Params("id")))
	if adm == "" {
		return fiber.NewError(fiber.StatusBadRequest, "admission number required")
	}

	db := h.DB.WithContext(c.Context())

	var student model.StudentModel
	if err := db.First(&student, "student_admission_no = ?", adm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return helper.DBError("student select", err)
	}

	resp := dto.StudentDetailResponse{Student: student}

	if err := db.Where("mark_admission_no = ?", adm).
		Order("mark_semester, mark_subject_code").
		Find(&resp.Marks).Error; err != nil {
		return helper.DBError("marks select", err)
	}
	if err := db.Where("attendance_admission_no = ?", adm).
		Order("attendance_date").
		Find(&resp.Attendance).Error; err != nil {
		return helper.DBError("attendance select", err)
	}
	if err := db.Where("fee_admission_no = ?", adm).
		Order("fee_academic_year, fee_semester").
		Find(&resp.Fees).Error; err != nil {
		return helper.DBError("fees select", err)
	}

	var placement placementModel.PlacementModel
	err := db.First(&placement, "placement_admission_no = ?", adm).Error
	switch {
	case err == nil:
		resp.Placement = &placement
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no placement yet
	default:
		return helper.DBError("placement select", err)
	}

	return helper.JsonOK(c, "student detail", resp)
}
