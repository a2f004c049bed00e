// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "schoolhub_backend/internals/features/school/classes/model"
)

////////////////////////////////////////////////////////////////////////////////
// CLASSES — DTO
////////////////////////////////////////////////////////////////////////////////

type ClassCreateDTO struct {
	ClassName      string     `json:"class_name" validate:"required,min=2,max=30"`
	ClassLevel     string     `json:"class_level" validate:"required,min=2,max=20"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassCapacity  *int       `json:"class_capacity,omitempty" validate:"omitempty,min=1,max=200"`
}

type ClassUpdateDTO struct {
	ClassName      *string    `json:"class_name,omitempty" validate:"omitempty,min=2,max=30"`
	ClassLevel     *string    `json:"class_level,omitempty" validate:"omitempty,min=2,max=20"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassCapacity  *int       `json:"class_capacity,omitempty" validate:"omitempty,min=1,max=200"`
}

type ClassResponse struct {
	ClassID        uuid.UUID  `json:"class_id"`
	ClassName      string     `json:"class_name"`
	ClassLevel     string     `json:"class_level"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	ClassCapacity  int        `json:"class_capacity"`
	ClassCreatedAt time.Time  `json:"class_created_at"`
	ClassUpdatedAt time.Time  `json:"class_updated_at"`
}

func ToClassResponse(m classModel.Class) ClassResponse {
	return ClassResponse{
		ClassID:        m.ClassID,
		ClassName:      m.ClassName,
		ClassLevel:     m.ClassLevel,
		ClassTeacherID: m.ClassTeacherID,
		ClassCapacity:  m.ClassCapacity,
		ClassCreatedAt: m.ClassCreatedAt,
		ClassUpdatedAt: m.ClassUpdatedAt,
	}
}

func ToClassResponses(list []classModel.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClassResponse(v))
	}
	return out
}

func ClassCreateDTOToModel(d ClassCreateDTO) classModel.Class {
	m := classModel.Class{
		ClassName:      d.ClassName,
		ClassLevel:     d.ClassLevel,
		ClassTeacherID: d.ClassTeacherID,
		ClassCapacity:  40,
	}
	if d.ClassCapacity != nil {
		m.ClassCapacity = *d.ClassCapacity
	}
	return m
}

func ApplyClassUpdate(m *classModel.Class, d ClassUpdateDTO) {
	if d.ClassName != nil {
		m.ClassName = *d.ClassName
	}
	if d.ClassLevel != nil {
		m.ClassLevel = *d.ClassLevel
	}
	if d.ClassTeacherID != nil {
		m.ClassTeacherID = d.ClassTeacherID
	}
	if d.ClassCapacity != nil {
		m.ClassCapacity = *d.ClassCapacity
	}
}

////////////////////////////////////////////////////////////////////////////////
// SUBJECTS — DTO
////////////////////////////////////////////////////////////////////////////////

type SubjectCreateDTO struct {
	SubjectName      string     `json:"subject_name" validate:"required,min=2,max=80"`
	SubjectCode      string     `json:"subject_code" validate:"required,min=2,max=20"`
	SubjectTeacherID *uuid.UUID `json:"subject_teacher_id,omitempty"`
}

type SubjectUpdateDTO struct {
	SubjectName      *string    `json:"subject_name,omitempty" validate:"omitempty,min=2,max=80"`
	SubjectTeacherID *uuid.UUID `json:"subject_teacher_id,omitempty"`
}

type SubjectResponse struct {
	SubjectID        uuid.UUID  `json:"subject_id"`
	SubjectName      string     `json:"subject_name"`
	SubjectCode      string     `json:"subject_code"`
	SubjectTeacherID *uuid.UUID `json:"subject_teacher_id,omitempty"`
	SubjectCreatedAt time.Time  `json:"subject_created_at"`
	SubjectUpdatedAt time.Time  `json:"subject_updated_at"`
}

func ToSubjectResponse(m classModel.Subject) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCode:      m.SubjectCode,
		SubjectTeacherID: m.SubjectTeacherID,
		SubjectCreatedAt: m.SubjectCreatedAt,
		SubjectUpdatedAt: m.SubjectUpdatedAt,
	}
}

func ToSubjectResponses(list []classModel.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSubjectResponse(v))
	}
	return out
}
