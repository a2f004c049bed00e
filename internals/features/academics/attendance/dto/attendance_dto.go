// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "schoolhub_backend/internals/features/academics/attendance/model"
)

////////////////////////////////////////////////////////////////////////////////
// ATTENDANCE — DTO
////////////////////////////////////////////////////////////////////////////////

type AttendanceEntryDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note,omitempty"`
}

// Bulk mark: one class, one date, many students
type AttendanceMarkDTO struct {
	ClassID uuid.UUID            `json:"class_id" validate:"required"`
	Date    time.Time            `json:"date" validate:"required"`
	Entries []AttendanceEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

type AttendanceUpdateDTO struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=present absent late excused"`
	Note   *string `json:"note,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID  `json:"attendance_id"`
	AttendanceStudentID uuid.UUID  `json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID  `json:"attendance_class_id"`
	AttendanceDate      time.Time  `json:"attendance_date"`
	AttendanceStatus    string     `json:"attendance_status"`
	AttendanceMarkedBy  *uuid.UUID `json:"attendance_marked_by,omitempty"`
	AttendanceNote      *string    `json:"attendance_note,omitempty"`
	AttendanceCreatedAt time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time  `json:"attendance_updated_at"`
}

func ToAttendanceResponse(m attendanceModel.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceClassID:   m.AttendanceClassID,
		AttendanceDate:      m.AttendanceDate,
		AttendanceStatus:    string(m.AttendanceStatus),
		AttendanceMarkedBy:  m.AttendanceMarkedBy,
		AttendanceNote:      m.AttendanceNote,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

func ToAttendanceResponses(list []attendanceModel.AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAttendanceResponse(v))
	}
	return out
}
