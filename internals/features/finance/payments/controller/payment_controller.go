// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/finance/payments/dto"
	"schoolhub_backend/internals/features/finance/payments/gateway"
	paymentModel "schoolhub_backend/internals/features/finance/payments/model"
	"schoolhub_backend/internals/features/finance/payments/service"
	helper "schoolhub_backend/internals/helpers"
)

type PaymentHandler struct {
	DB *gorm.DB
}

// whitelist of sortable columns
var paymentSortColumns = map[string]string{
	"payment_date": "payment_date",
	"amount":       "payment_amount_kobo",
	"created_at":   "payment_created_at",
}

/* =========================
   List (GET /api/payments)
   Filters: fee_record_id, student_id, method, status
========================= */

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.Context()).Model(&paymentModel.Payment{})

	if v := strings.TrimSpace(c.Query("fee_record_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee_record_id")
		}
		q = q.Where("payment_fee_record_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("payment_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("method")); v != "" {
		q = q.Where("payment_method = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("payment_status = ?", strings.ToLower(v))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sortCol := paymentSortColumns["payment_date"]
	if v, ok := paymentSortColumns[strings.ToLower(strings.TrimSpace(c.Query("sort_by")))]; ok {
		sortCol = v
	}
	order := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		order = "ASC"
	}

	var list []paymentModel.Payment
	if err := q.Order(sortCol + " " + order).Order("payment_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List payments", dto.ToPaymentResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /api/payments/:id)
========================= */

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m paymentModel.Payment
	if err := h.DB.WithContext(c.Context()).
		First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "payment detail", dto.ToPaymentResponse(m))
}

/* =========================
   Create (POST /api/payments)
   Manual methods settle immediately; method=paystack only records a
   pending payment, settled later by the verify endpoint.
========================= */

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	recIn := service.RecordPaymentInput{
		FeeRecordID:    in.PaymentFeeRecordID,
		AmountKobo:     in.PaymentAmountKobo,
		Method:         paymentModel.PaymentMethod(in.PaymentMethod),
		CouponCode:     in.PaymentCouponCode,
		TransactionRef: in.PaymentTransactionRef,
		Metadata:       in.PaymentMetadata,
	}
	if s, ok := c.Locals("user_id").(string); ok {
		if uid, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
			recIn.RecordedBy = &uid
		}
	}

	if recIn.Method == paymentModel.PaymentMethodPaystack {
		pay, err := service.CreatePendingPayment(h.DB.WithContext(c.Context()), recIn)
		if err != nil {
			return mapRecorderError(c, err)
		}
		return helper.JsonCreated(c, "payment pending gateway verification", dto.ToPaymentResponse(*pay))
	}

	fee, pay, err := service.RecordPayment(h.DB.WithContext(c.Context()), recIn)
	if err != nil {
		return mapRecorderError(c, err)
	}
	return helper.JsonCreated(c, "payment recorded", fiber.Map{
		"payment": dto.ToPaymentResponse(*pay),
		"fee_record": fiber.Map{
			"fee_record_id":               fee.FeeRecordID,
			"fee_record_amount_kobo":      fee.FeeRecordAmountKobo,
			"fee_record_amount_paid_kobo": fee.FeeRecordAmountPaidKobo,
			"fee_record_balance_kobo":     fee.FeeRecordBalanceKobo,
			"fee_record_status":           fee.FeeRecordStatus,
		},
	})
}

/* =========================
   Verify (GET /api/paystack/verify/:reference)
   Confirms the charge with Paystack, then settles or fails the pending
   payment. Safe to call repeatedly for the same reference.
========================= */

func (h *PaymentHandler) VerifyPaystack(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Params("reference"))
	if reference == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "reference required")
	}

	res, err := gateway.VerifyTransaction(c.Context(), reference)
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "payment gateway not configured")
		}
		log.Printf("[ERROR] paystack verify %s: %v", reference, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "gateway verification failed")
	}

	if !res.Success() {
		if err := service.FailPendingPayment(h.DB.WithContext(c.Context()), reference); err != nil &&
			!errors.Is(err, service.ErrPaymentNotPending) {
			log.Printf("[ERROR] mark payment failed %s: %v", reference, err)
		}
		return helper.JsonOK(c, "transaction not successful", fiber.Map{
			"status":         false,
			"gateway_status": res.Status,
		})
	}

	fee, pay, err := service.CompletePendingPayment(h.DB.WithContext(c.Context()), reference)
	if err != nil {
		return mapRecorderError(c, err)
	}
	return helper.JsonOK(c, "payment verified", fiber.Map{
		"status":  true,
		"payment": dto.ToPaymentResponse(*pay),
		"fee_record": fiber.Map{
			"fee_record_id":           fee.FeeRecordID,
			"fee_record_balance_kobo": fee.FeeRecordBalanceKobo,
			"fee_record_status":       fee.FeeRecordStatus,
		},
	})
}

func mapRecorderError(c *fiber.Ctx, err error) error {
	var couponErr service.ErrCouponRejected
	switch {
	case errors.Is(err, service.ErrFeeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPaymentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrAmountExceedsBalance),
		errors.Is(err, service.ErrPaymentNotPending):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &couponErr):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, couponErr.Error())
	default:
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "transaction reference already used")
		}
		log.Printf("[ERROR] payment recorder: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to process payment")
	}
}
