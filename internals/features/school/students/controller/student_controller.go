// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type StudentHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/students)
========================= */

func (h *StudentHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	// Sorting whitelist
	allowedSort := map[string]string{
		"created_at":   "student_created_at",
		"admission_no": "student_admission_no",
		"last_name":    "student_last_name",
		"status":       "student_status",
	}
	sortBy := strings.ToLower(strings.TrimSpace(c.Query("sort_by", "created_at")))
	col, ok := allowedSort[sortBy]
	if !ok {
		col = allowedSort["created_at"]
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		dir = "ASC"
	}

	q := h.DB.WithContext(c.Context()).
		Model(&studentModel.Student{})

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_class_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // active|graduated|withdrawn
		q = q.Where("student_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR LOWER(student_admission_no) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []studentModel.Student
	if err := q.Order(col + " " + dir).Order("student_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List students", dto.ToStudentResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /api/students/:id)
========================= */

func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Student detail", dto.ToStudentResponse(m))
}

/* =========================
   Create (POST /api/students)
========================= */

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.StudentAdmissionNo = strings.ToUpper(strings.TrimSpace(in.StudentAdmissionNo))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "admission number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create student")
	}
	return helper.JsonCreated(c, "created", dto.ToStudentResponse(m))
}

/* =========================
   Update (PATCH /api/students/:id)
========================= */

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update student")
	}
	return helper.JsonUpdated(c, "updated", dto.ToStudentResponse(m))
}

/* =========================
   Delete (DELETE /api/students/:id) — soft delete
========================= */

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&studentModel.Student{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"student_id": id})
}
