// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "schoolhub_backend/internals/features/school/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type StudentCreateDTO struct {
	StudentAdmissionNo   string     `json:"student_admission_no" validate:"required,min=3,max=30"`
	StudentFirstName     string     `json:"student_first_name" validate:"required,min=1,max=60"`
	StudentLastName      string     `json:"student_last_name" validate:"required,min=1,max=60"`
	StudentGender        string     `json:"student_gender" validate:"omitempty,oneof=male female"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth,omitempty"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentEmail         *string    `json:"student_email,omitempty" validate:"omitempty,email"`
}

// Update (partial)
type StudentUpdateDTO struct {
	StudentFirstName     *string    `json:"student_first_name,omitempty" validate:"omitempty,min=1,max=60"`
	StudentLastName      *string    `json:"student_last_name,omitempty" validate:"omitempty,min=1,max=60"`
	StudentGender        *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth,omitempty"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentEmail         *string    `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentStatus        *string    `json:"student_status,omitempty" validate:"omitempty,oneof=active graduated withdrawn"`
}

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentAdmissionNo   string     `json:"student_admission_no"`
	StudentFirstName     string     `json:"student_first_name"`
	StudentLastName      string     `json:"student_last_name"`
	StudentGender        string     `json:"student_gender"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth,omitempty"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentEmail         *string    `json:"student_email,omitempty"`
	StudentStatus        string     `json:"student_status"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
	StudentUpdatedAt     time.Time  `json:"student_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m studentModel.Student) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentAdmissionNo:   m.StudentAdmissionNo,
		StudentFirstName:     m.StudentFirstName,
		StudentLastName:      m.StudentLastName,
		StudentGender:        m.StudentGender,
		StudentDateOfBirth:   m.StudentDateOfBirth,
		StudentClassID:       m.StudentClassID,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentEmail:         m.StudentEmail,
		StudentStatus:        string(m.StudentStatus),
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []studentModel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) studentModel.Student {
	return studentModel.Student{
		StudentAdmissionNo:   d.StudentAdmissionNo,
		StudentFirstName:     d.StudentFirstName,
		StudentLastName:      d.StudentLastName,
		StudentGender:        d.StudentGender,
		StudentDateOfBirth:   d.StudentDateOfBirth,
		StudentClassID:       d.StudentClassID,
		StudentGuardianName:  d.StudentGuardianName,
		StudentGuardianPhone: d.StudentGuardianPhone,
		StudentEmail:         d.StudentEmail,
		StudentStatus:        studentModel.StudentStatusActive,
	}
}

// apply partial update, does not touch admission no
func ApplyStudentUpdate(m *studentModel.Student, d StudentUpdateDTO) {
	if d.StudentFirstName != nil {
		m.StudentFirstName = *d.StudentFirstName
	}
	if d.StudentLastName != nil {
		m.StudentLastName = *d.StudentLastName
	}
	if d.StudentGender != nil {
		m.StudentGender = *d.StudentGender
	}
	if d.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = d.StudentDateOfBirth
	}
	if d.StudentClassID != nil {
		m.StudentClassID = d.StudentClassID
	}
	if d.StudentGuardianName != nil {
		m.StudentGuardianName = d.StudentGuardianName
	}
	if d.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = d.StudentGuardianPhone
	}
	if d.StudentEmail != nil {
		m.StudentEmail = d.StudentEmail
	}
	if d.StudentStatus != nil {
		m.StudentStatus = studentModel.StudentStatus(*d.StudentStatus)
	}
}
