// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "schoolhub_backend/internals/features/academics/attendance/dto"
	attendanceModel "schoolhub_backend/internals/features/academics/attendance/model"
	helper "schoolhub_backend/internals/helpers"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/attendance)
========================= */

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 50, 500)

	q := h.DB.WithContext(c.Context()).Model(&attendanceModel.AttendanceRecord{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_student_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("attendance_class_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("attendance_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("attendance_date = ?", t)
		}
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("attendance_date >= ?", t)
		}
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("attendance_date <= ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []attendanceModel.AttendanceRecord
	if err := q.Order("attendance_date DESC").Order("attendance_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List attendance", dto.ToAttendanceResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Mark (POST /api/attendance/mark)
   One class, one date, many students. Re-marking a student for
   the same date overwrites the earlier status (upsert).
========================= */

func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var in dto.AttendanceMarkDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var markedBy *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			markedBy = &id
		}
	}

	day := in.Date.Truncate(24 * time.Hour)
	rows := make([]attendanceModel.AttendanceRecord, 0, len(in.Entries))
	for _, e := range in.Entries {
		rows = append(rows, attendanceModel.AttendanceRecord{
			AttendanceStudentID: e.StudentID,
			AttendanceClassID:   in.ClassID,
			AttendanceDate:      day,
			AttendanceStatus:    attendanceModel.AttendanceStatus(e.Status),
			AttendanceMarkedBy:  markedBy,
			AttendanceNote:      e.Note,
		})
	}

	if err := h.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status", "attendance_marked_by", "attendance_note", "attendance_updated_at",
			}),
		}).
		Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to record attendance")
	}

	return helper.JsonCreated(c, "attendance recorded", dto.ToAttendanceResponses(rows))
}

/* =========================
   Update (PATCH /api/attendance/:id)
========================= */

func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.AttendanceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m attendanceModel.AttendanceRecord
	if err := h.DB.WithContext(c.Context()).
		First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if in.Status != nil {
		m.AttendanceStatus = attendanceModel.AttendanceStatus(*in.Status)
	}
	if in.Note != nil {
		m.AttendanceNote = in.Note
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update attendance")
	}
	return helper.JsonUpdated(c, "updated", dto.ToAttendanceResponse(m))
}

/* =========================
   Delete (DELETE /api/attendance/:id)
========================= */

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&attendanceModel.AttendanceRecord{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"attendance_id": id})
}
