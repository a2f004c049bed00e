// file: internals/features/finance/coupons/controller/coupon_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/finance/coupons/dto"
	couponModel "schoolhub_backend/internals/features/finance/coupons/model"
	"schoolhub_backend/internals/features/finance/coupons/service"
	helper "schoolhub_backend/internals/helpers"
)

type CouponHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/coupons)
========================= */

func (h *CouponHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).Model(&couponModel.Coupon{})

	if v := strings.TrimSpace(c.Query("active")); v != "" { // true|false
		if strings.EqualFold(v, "true") {
			q = q.Where("coupon_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("coupon_is_active = FALSE")
		}
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("coupon_code LIKE ?", "%"+strings.ToUpper(v)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []couponModel.Coupon
	if err := q.Order("coupon_created_at DESC").Order("coupon_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List coupons", dto.ToCouponResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Create (POST /api/coupons)
========================= */

func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var in dto.CouponCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	code, err := service.NormalizeCode(in.CouponCode)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"coupon_code": {err.Error()}})
	}
	if in.CouponDiscountType == string(couponModel.DiscountTypePercentage) &&
		(in.CouponDiscountValue < 1 || in.CouponDiscountValue > 100) {
		return helper.JsonValidationError(c, map[string][]string{"coupon_discount_value": {"percentage must be 1-100"}})
	}

	m := couponModel.Coupon{
		CouponCode:          code,
		CouponDiscountType:  couponModel.DiscountType(in.CouponDiscountType),
		CouponDiscountValue: in.CouponDiscountValue,
		CouponMaxUses:       in.CouponMaxUses,
		CouponExpiryDate:    in.CouponExpiryDate,
		CouponIsActive:      true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "coupon code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create coupon")
	}
	return helper.JsonCreated(c, "created", dto.ToCouponResponse(m))
}

/* =========================
   Update (PATCH /api/coupons/:id)
========================= */

func (h *CouponHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.CouponUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m couponModel.Coupon
	if err := h.DB.WithContext(c.Context()).
		First(&m, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "coupon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyCouponUpdate(&m, in)
	if m.CouponDiscountType == couponModel.DiscountTypePercentage &&
		(m.CouponDiscountValue < 1 || m.CouponDiscountValue > 100) {
		return helper.JsonValidationError(c, map[string][]string{"coupon_discount_value": {"percentage must be 1-100"}})
	}
	if m.CouponMaxUses < m.CouponUsedCount {
		return helper.JsonValidationError(c, map[string][]string{"coupon_max_uses": {"cannot be below the current used count"}})
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update coupon")
	}
	return helper.JsonUpdated(c, "updated", dto.ToCouponResponse(m))
}

/* =========================
   Validate (POST /api/coupons/validate)
   Side-effect free; usage is recorded by the payment recorder after the
   consuming payment succeeds.
========================= */

func (h *CouponHandler) Validate(c *fiber.Ctx) error {
	var in dto.CouponValidateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	v, _, err := service.ValidateCode(h.DB.WithContext(c.Context()), in.CouponCode, in.BalanceKobo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to validate coupon")
	}
	return helper.JsonOK(c, "coupon validation", v)
}

/* =========================
   Delete (DELETE /api/coupons/:id) — soft delete
========================= */

func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&couponModel.Coupon{}, "coupon_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete coupon")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "coupon not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"coupon_id": id})
}
