// file: internals/features/academics/results/controller/result_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "schoolhub_backend/internals/features/academics/results/dto"
	resultModel "schoolhub_backend/internals/features/academics/results/model"
	"schoolhub_backend/internals/features/academics/results/service"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

type ResultHandler struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/results)
========================= */

func (h *ResultHandler) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	allowedSort := map[string]string{
		"created_at": "result_created_at",
		"average":    "result_average_score",
		"total":      "result_total_score",
		"position":   "result_position",
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

	q := h.DB.WithContext(c.Context()).Model(&resultModel.Result{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("result_student_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("result_class_id = ?", id)
		}
	}
	if v := strings.TrimSpace(c.Query("term")); v != "" { // first|second|third
		q = q.Where("result_term = ?", v)
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("result_academic_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" { // draft|published
		q = q.Where("result_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []resultModel.Result
	if err := q.Preload("ResultSubjects").
		Order(col + " " + dir).Order("result_id DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List results", dto.ToResultResponses(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* =========================
   Detail (GET /api/results/:id)
========================= */

func (h *ResultHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m resultModel.Result
	if err := h.DB.WithContext(c.Context()).
		Preload("ResultSubjects").
		First(&m, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Result detail", dto.ToResultResponse(m))
}

/* =========================
   Create (POST /api/results)
   Grades and aggregates are computed server-side; a duplicate
   student/term/year result is a conflict.
========================= */

func (h *ResultHandler) Create(c *fiber.Ctx) error {
	var in dto.ResultCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var student studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&student, "student_id = ?", in.ResultStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	subjects := make([]resultModel.SubjectScore, 0, len(in.Subjects))
	for _, s := range in.Subjects {
		row, err := service.BuildSubjectScore(strings.TrimSpace(s.SubjectName), s.CA1, s.CA2, s.Exam)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"subjects": {err.Error()}})
		}
		subjects = append(subjects, row)
	}
	totalScore, averageScore := service.Aggregate(subjects)

	m := resultModel.Result{
		ResultStudentID:        in.ResultStudentID,
		ResultStudentName:      student.FullName(),
		ResultClassID:          in.ResultClassID,
		ResultTerm:             resultModel.Term(in.ResultTerm),
		ResultAcademicYear:     strings.TrimSpace(in.ResultAcademicYear),
		ResultTotalScore:       totalScore,
		ResultAverageScore:     averageScore,
		ResultTeacherRemarks:   in.TeacherRemarks,
		ResultPrincipalRemarks: in.PrincipalRemarks,
		ResultStatus:           resultModel.ResultStatusDraft,
		ResultSubjects:         subjects,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "result already exists for this student/term/year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create result")
	}
	return helper.JsonCreated(c, "created", dto.ToResultResponse(m))
}

/* =========================
   Update (PATCH /api/results/:id) — draft only
========================= */

func (h *ResultHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.ResultUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m resultModel.Result
	if err := h.DB.WithContext(c.Context()).
		Preload("ResultSubjects").
		First(&m, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.ResultStatus == resultModel.ResultStatusPublished {
		return helper.JsonError(c, fiber.StatusConflict, "published result cannot be edited")
	}

	if in.TeacherRemarks != nil {
		m.ResultTeacherRemarks = in.TeacherRemarks
	}
	if in.PrincipalRemarks != nil {
		m.ResultPrincipalRemarks = in.PrincipalRemarks
	}

	// score bounds are validated before the transaction touches anything
	var subjects []resultModel.SubjectScore
	if len(in.Subjects) > 0 {
		subjects = make([]resultModel.SubjectScore, 0, len(in.Subjects))
		for _, s := range in.Subjects {
			row, buildErr := service.BuildSubjectScore(strings.TrimSpace(s.SubjectName), s.CA1, s.CA2, s.Exam)
			if buildErr != nil {
				return helper.JsonValidationError(c, map[string][]string{"subjects": {buildErr.Error()}})
			}
			row.SubjectScoreResultID = m.ResultID
			subjects = append(subjects, row)
		}
	}

	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if len(subjects) > 0 {
			if delErr := tx.Where("subject_score_result_id = ?", m.ResultID).
				Delete(&resultModel.SubjectScore{}).Error; delErr != nil {
				return delErr
			}
			if insErr := tx.Create(&subjects).Error; insErr != nil {
				return insErr
			}
			m.ResultSubjects = subjects
			m.ResultTotalScore, m.ResultAverageScore = service.Aggregate(subjects)
		}
		return tx.Omit("ResultSubjects").Save(&m).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update result")
	}
	return helper.JsonUpdated(c, "updated", dto.ToResultResponse(m))
}

/* =========================
   Publish (POST /api/results/:id/publish)
========================= */

func (h *ResultHandler) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	m, err := service.PublishResult(h.DB.WithContext(c.Context()), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResultNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "result not found")
		case errors.Is(err, service.ErrAlreadyPublished):
			return helper.JsonError(c, fiber.StatusConflict, "result already published")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to publish result")
		}
	}
	return helper.JsonOK(c, "result published", dto.ToResultResponse(*m))
}

/* =========================
   Delete (DELETE /api/results/:id) — draft only
========================= */

func (h *ResultHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m resultModel.Result
	if err := h.DB.WithContext(c.Context()).
		First(&m, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.ResultStatus == resultModel.ResultStatusPublished {
		return helper.JsonError(c, fiber.StatusConflict, "published result cannot be deleted")
	}

	if err := h.DB.WithContext(c.Context()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete result")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"result_id": id})
}
