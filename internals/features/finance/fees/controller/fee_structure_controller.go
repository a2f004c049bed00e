// file: internals/features/finance/fees/controller/fee_structure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/finance/fees/dto"
	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	"schoolhub_backend/internals/features/finance/fees/service"
	helper "schoolhub_backend/internals/helpers"
)

type FeeStructureHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/fee-structures)
========================= */

func (h *FeeStructureHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).Model(&feeModel.FeeStructure{})

	if v := strings.TrimSpace(c.Query("class_level")); v != "" {
		q = q.Where("fee_structure_class_level = ?", v)
	}
	if v := strings.TrimSpace(c.Query("term")); v != "" {
		q = q.Where("fee_structure_term = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fee_structure_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []feeModel.FeeStructure
	if err := q.Order("fee_structure_created_at DESC").Order("fee_structure_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List fee structures", dto.ToFeeStructureResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Create (POST /api/fee-structures)
========================= */

func (h *FeeStructureHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeStructureCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := feeModel.FeeStructure{
		FeeStructureFeeType:      strings.TrimSpace(in.FeeStructureFeeType),
		FeeStructureClassLevel:   strings.TrimSpace(in.FeeStructureClassLevel),
		FeeStructureAmountKobo:   in.FeeStructureAmountKobo,
		FeeStructureTerm:         in.FeeStructureTerm,
		FeeStructureAcademicYear: in.FeeStructureAcademicYear,
		FeeStructureDueDate:      in.FeeStructureDueDate,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create fee structure")
	}
	return helper.JsonCreated(c, "created", dto.ToFeeStructureResponse(m))
}

/* =========================
   Apply (POST /api/fee-structures/:id/apply)
   Stamps fee records for every active student at the structure's level.
========================= */

func (h *FeeStructureHandler) Apply(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	report, err := service.ApplyFeeStructure(h.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, service.ErrStructureNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to apply fee structure")
	}
	return helper.JsonOK(c, "fee structure applied", report)
}

/* =========================
   Delete (DELETE /api/fee-structures/:id) — soft delete
   Fee records already stamped from it stay untouched.
========================= */

func (h *FeeStructureHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&feeModel.FeeStructure{}, "fee_structure_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete fee structure")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee structure not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"fee_structure_id": id})
}
