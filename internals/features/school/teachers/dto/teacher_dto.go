// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
)

type TeacherCreateDTO struct {
	TeacherStaffNo   string  `json:"teacher_staff_no" validate:"required,min=3,max=30"`
	TeacherFirstName string  `json:"teacher_first_name" validate:"required,min=1,max=60"`
	TeacherLastName  string  `json:"teacher_last_name" validate:"required,min=1,max=60"`
	TeacherEmail     *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone     *string `json:"teacher_phone,omitempty"`
	TeacherSpecialty *string `json:"teacher_specialty,omitempty"`
}

type TeacherUpdateDTO struct {
	TeacherFirstName *string `json:"teacher_first_name,omitempty" validate:"omitempty,min=1,max=60"`
	TeacherLastName  *string `json:"teacher_last_name,omitempty" validate:"omitempty,min=1,max=60"`
	TeacherEmail     *string `json:"teacher_email,omitempty" validate:"omitempty,email"`
	TeacherPhone     *string `json:"teacher_phone,omitempty"`
	TeacherSpecialty *string `json:"teacher_specialty,omitempty"`
	TeacherStatus    *string `json:"teacher_status,omitempty" validate:"omitempty,oneof=active on_leave resigned"`
}

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherStaffNo   string    `json:"teacher_staff_no"`
	TeacherFirstName string    `json:"teacher_first_name"`
	TeacherLastName  string    `json:"teacher_last_name"`
	TeacherEmail     *string   `json:"teacher_email,omitempty"`
	TeacherPhone     *string   `json:"teacher_phone,omitempty"`
	TeacherSpecialty *string   `json:"teacher_specialty,omitempty"`
	TeacherStatus    string    `json:"teacher_status"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at"`
}

func ToTeacherResponse(m teacherModel.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherStaffNo:   m.TeacherStaffNo,
		TeacherFirstName: m.TeacherFirstName,
		TeacherLastName:  m.TeacherLastName,
		TeacherEmail:     m.TeacherEmail,
		TeacherPhone:     m.TeacherPhone,
		TeacherSpecialty: m.TeacherSpecialty,
		TeacherStatus:    string(m.TeacherStatus),
		TeacherCreatedAt: m.TeacherCreatedAt,
		TeacherUpdatedAt: m.TeacherUpdatedAt,
	}
}

func ToTeacherResponses(list []teacherModel.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToTeacherResponse(v))
	}
	return out
}

func TeacherCreateDTOToModel(d TeacherCreateDTO) teacherModel.Teacher {
	return teacherModel.Teacher{
		TeacherStaffNo:   d.TeacherStaffNo,
		TeacherFirstName: d.TeacherFirstName,
		TeacherLastName:  d.TeacherLastName,
		TeacherEmail:     d.TeacherEmail,
		TeacherPhone:     d.TeacherPhone,
		TeacherSpecialty: d.TeacherSpecialty,
		TeacherStatus:    teacherModel.TeacherStatusActive,
	}
}

func ApplyTeacherUpdate(m *teacherModel.Teacher, d TeacherUpdateDTO) {
	if d.TeacherFirstName != nil {
		m.TeacherFirstName = *d.TeacherFirstName
	}
	if d.TeacherLastName != nil {
		m.TeacherLastName = *d.TeacherLastName
	}
	if d.TeacherEmail != nil {
		m.TeacherEmail = d.TeacherEmail
	}
	if d.TeacherPhone != nil {
		m.TeacherPhone = d.TeacherPhone
	}
	if d.TeacherSpecialty != nil {
		m.TeacherSpecialty = d.TeacherSpecialty
	}
	if d.TeacherStatus != nil {
		m.TeacherStatus = teacherModel.TeacherStatus(*d.TeacherStatus)
	}
}
