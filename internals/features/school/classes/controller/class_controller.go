// file: internals/features/school/classes/controller/class_controller.go
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

type ClassHandler struct {
	DB *gorm.DB
}

func (h *ClassHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).Model(&classModel.Class{})

	if v := strings.TrimSpace(c.Query("level")); v != "" {
		q = q.Where("class_level = ?", v)
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("class_teacher_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []classModel.Class
	if err := q.Order("class_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List classes", dto.ToClassResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (h *ClassHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m classModel.Class
	if err := h.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Class detail", dto.ToClassResponse(m))
}

func (h *ClassHandler) Create(c *fiber.Ctx) error {
	var in dto.ClassCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	in.ClassName = strings.ToUpper(strings.TrimSpace(in.ClassName))
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := dto.ClassCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "class name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create class")
	}
	return helper.JsonCreated(c, "created", dto.ToClassResponse(m))
}

func (h *ClassHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.ClassUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.ClassName != nil {
		name := strings.ToUpper(strings.TrimSpace(*in.ClassName))
		in.ClassName = &name
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m classModel.Class
	if err := h.DB.WithContext(c.Context()).
		First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyClassUpdate(&m, in)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "class name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update class")
	}
	return helper.JsonUpdated(c, "updated", dto.ToClassResponse(m))
}

func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&classModel.Class{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "class not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"class_id": id})
}
