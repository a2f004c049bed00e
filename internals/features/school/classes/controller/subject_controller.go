// file: internals/features/school/classes/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/school/classes/dto"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	helper "schoolhub_backend/internals/helpers"
)

type SubjectHandler struct {
	DB *gorm.DB
}

func (h *SubjectHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 50, 200)

	q := h.DB.WithContext(c.Context()).Model(&classModel.Subject{})

	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("subject_teacher_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []classModel.Subject
	if err := q.Order("subject_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List subjects", dto.ToSubjectResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *SubjectHandler) Create(c *fiber.Ctx) error {
	var in dto.SubjectCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.SubjectCode = strings.ToUpper(strings.TrimSpace(in.SubjectCode))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := classModel.Subject{
		SubjectName:      strings.TrimSpace(in.SubjectName),
		SubjectCode:      in.SubjectCode,
		SubjectTeacherID: in.SubjectTeacherID,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "subject code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create subject")
	}
	return helper.JsonCreated(c, "created", dto.ToSubjectResponse(m))
}

func (h *SubjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.SubjectUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m classModel.Subject
	if err := h.DB.WithContext(c.Context()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*in.SubjectName)
	}
	if in.SubjectTeacherID != nil {
		m.SubjectTeacherID = in.SubjectTeacherID
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update subject")
	}
	return helper.JsonUpdated(c, "updated", dto.ToSubjectResponse(m))
}

func (h *SubjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&classModel.Subject{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"subject_id": id})
}
