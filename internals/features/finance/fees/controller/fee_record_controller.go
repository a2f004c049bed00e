// file: internals/features/finance/fees/controller/fee_record_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/finance/fees/dto"
	feeModel "schoolhub_backend/internals/features/finance/fees/model"
	paymentModel "schoolhub_backend/internals/features/finance/payments/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type FeeRecordHandler struct {
	DB *gorm.DB
}

var feeSortColumns = map[string]string{
	"created_at": "fee_record_created_at",
	"due_date":   "fee_record_due_date",
	"balance":    "fee_record_balance_kobo",
	"student":    "fee_record_student_name",
}

/* =========================
   List (GET /api/fees)
   Filters: student_id, class_id, status (incl. overdue), term,
   academic_year. The overdue filter matches unpaid/partial fees past due.
========================= */

func (h *FeeRecordHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)
	now := time.Now()

	q := h.DB.WithContext(c.Context()).Model(&feeModel.FeeRecord{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("fee_record_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid class_id")
		}
		q = q.Where("fee_record_class_id = ?", id)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		if v == string(feeModel.FeeStatusOverdue) {
			q = q.Where("fee_record_status <> ?", feeModel.FeeStatusPaid).
				Where("fee_record_due_date IS NOT NULL AND fee_record_due_date < ?", now)
		} else {
			q = q.Where("fee_record_status = ?", v)
		}
	}
	if v := strings.TrimSpace(c.Query("term")); v != "" {
		q = q.Where("fee_record_term = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fee_record_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sortCol := feeSortColumns["created_at"]
	if v, ok := feeSortColumns[strings.ToLower(strings.TrimSpace(c.Query("sort_by")))]; ok {
		sortCol = v
	}
	order := "DESC"
	if strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc") {
		order = "ASC"
	}

	var list []feeModel.FeeRecord
	if err := q.Order(sortCol + " " + order).Order("fee_record_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List fees", dto.ToFeeRecordResponses(list, now),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /api/fees/:id)
========================= */

func (h *FeeRecordHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m feeModel.FeeRecord
	if err := h.DB.WithContext(c.Context()).
		First(&m, "fee_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "fee detail", dto.ToFeeRecordResponse(m, time.Now()))
}

/* =========================
   Create (POST /api/fees) — manual fee for one student
========================= */

func (h *FeeRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeRecordCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var student studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&student, "student_id = ?", in.FeeRecordStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := feeModel.FeeRecord{
		FeeRecordStudentID:    student.StudentID,
		FeeRecordStudentName:  student.FullName(),
		FeeRecordClassID:      student.StudentClassID,
		FeeRecordFeeType:      strings.TrimSpace(in.FeeRecordFeeType),
		FeeRecordAmountKobo:   in.FeeRecordAmountKobo,
		FeeRecordBalanceKobo:  in.FeeRecordAmountKobo,
		FeeRecordStatus:       feeModel.FeeStatusUnpaid,
		FeeRecordDueDate:      in.FeeRecordDueDate,
		FeeRecordTerm:         in.FeeRecordTerm,
		FeeRecordAcademicYear: in.FeeRecordAcademicYear,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create fee record")
	}
	return helper.JsonCreated(c, "created", dto.ToFeeRecordResponse(m, time.Now()))
}

/* =========================
   Delete (DELETE /api/fees/:id) — soft delete
   Blocked once any payment references the record; the payment log must
   keep a live target.
========================= */

func (h *FeeRecordHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	db := h.DB.WithContext(c.Context())

	var payments int64
	if err := db.Model(&paymentModel.Payment{}).
		Where("payment_fee_record_id = ?", id).
		Count(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if payments > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "fee record has payments and cannot be deleted")
	}

	res := db.Delete(&feeModel.FeeRecord{}, "fee_record_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete fee record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee record not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"fee_record_id": id})
}
