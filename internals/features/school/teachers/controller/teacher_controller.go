// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/school/teachers/dto"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
	helper "schoolhub_backend/internals/helpers"
)

type TeacherHandler struct {
	DB *gorm.DB
}

func (h *TeacherHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	allowedSort := map[string]string{
		"created_at": "teacher_created_at",
		"staff_no":   "teacher_staff_no",
		"last_name":  "teacher_last_name",
		"status":     "teacher_status",
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

	q := h.DB.WithContext(c.Context()).Model(&teacherModel.Teacher{})

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("teacher_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(teacher_first_name) LIKE ? OR LOWER(teacher_last_name) LIKE ? OR LOWER(teacher_staff_no) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []teacherModel.Teacher
	if err := q.Order(col + " " + dir).Order("teacher_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List teachers", dto.ToTeacherResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *TeacherHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m teacherModel.Teacher
	if err := h.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Teacher detail", dto.ToTeacherResponse(m))
}

func (h *TeacherHandler) Create(c *fiber.Ctx) error {
	var in dto.TeacherCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.TeacherStaffNo = strings.ToUpper(strings.TrimSpace(in.TeacherStaffNo))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := dto.TeacherCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "staff number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create teacher")
	}
	return helper.JsonCreated(c, "created", dto.ToTeacherResponse(m))
}

func (h *TeacherHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.TeacherUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m teacherModel.Teacher
	if err := h.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyTeacherUpdate(&m, in)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update teacher")
	}
	return helper.JsonUpdated(c, "updated", dto.ToTeacherResponse(m))
}

func (h *TeacherHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&teacherModel.Teacher{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "teacher not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"teacher_id": id})
}
