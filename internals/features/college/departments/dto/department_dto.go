// file: internals/features/college/departments/dto/department_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campusschedule_backend/internals/constants"
	"campusschedule_backend/internals/features/college/departments/model"
)

// =======================
// Request DTO
// =======================

type DepartmentCreateDTO struct {
	DepartmentName      string   `json:"department_name"      validate:"required,min=2,max=100"`
	DepartmentCode      string   `json:"department_code"      validate:"omitempty,max=20"`
	DepartmentSemesters []string `json:"department_semesters" validate:"omitempty,dive,oneof='Semester 1' 'Semester 2' 'Semester 3' 'Semester 4' 'Semester 5' 'Semester 6'"`
	// pointer: bedakan "tidak dikirim" vs string kosong
	DepartmentActiveSemester *string `json:"department_active_semester,omitempty" validate:"omitempty,oneof='Semester 1' 'Semester 2' 'Semester 3' 'Semester 4' 'Semester 5' 'Semester 6'"`
}

type DepartmentUpdateDTO struct {
	DepartmentName      *string  `json:"department_name,omitempty"      validate:"omitempty,min=2,max=100"`
	DepartmentCode      *string  `json:"department_code,omitempty"      validate:"omitempty,max=20"`
	DepartmentSemesters []string `json:"department_semesters,omitempty" validate:"omitempty,dive,oneof='Semester 1' 'Semester 2' 'Semester 3' 'Semester 4' 'Semester 5' 'Semester 6'"`
}

// Switch semester aktif: single metadata write, tidak menyentuh entries.
type SetActiveSemesterDTO struct {
	DepartmentActiveSemester string `json:"department_active_semester" validate:"required,oneof='Semester 1' 'Semester 2' 'Semester 3' 'Semester 4' 'Semester 5' 'Semester 6'"`
}

// =======================
// Response DTO
// =======================

type DepartmentResponseDTO struct {
	DepartmentID             uuid.UUID `json:"department_id"`
	DepartmentName           string    `json:"department_name"`
	DepartmentCode           string    `json:"department_code,omitempty"`
	DepartmentSemesters      []string  `json:"department_semesters"`
	DepartmentActiveSemester string    `json:"department_active_semester"`
	DepartmentCreatedAt      time.Time `json:"department_created_at"`
	DepartmentUpdatedAt      time.Time `json:"department_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *DepartmentCreateDTO) Normalize() {
	p.DepartmentName = strings.TrimSpace(p.DepartmentName)
	p.DepartmentCode = strings.TrimSpace(p.DepartmentCode)
}

func (p *DepartmentCreateDTO) ToModel() model.DepartmentModel {
	semesters := p.DepartmentSemesters
	if len(semesters) == 0 {
		semesters = constants.SemesterLabels
	}
	active := constants.DefaultActiveSemester
	if p.DepartmentActiveSemester != nil {
		active = *p.DepartmentActiveSemester
	}
	return model.DepartmentModel{
		DepartmentName:           p.DepartmentName,
		DepartmentCode:           p.DepartmentCode,
		DepartmentSemesters:      pq.StringArray(semesters),
		DepartmentActiveSemester: active,
	}
}

func (u *DepartmentUpdateDTO) ApplyUpdates(ent *model.DepartmentModel) {
	if u.DepartmentName != nil {
		ent.DepartmentName = strings.TrimSpace(*u.DepartmentName)
	}
	if u.DepartmentCode != nil {
		ent.DepartmentCode = strings.TrimSpace(*u.DepartmentCode)
	}
	if len(u.DepartmentSemesters) > 0 {
		ent.DepartmentSemesters = pq.StringArray(u.DepartmentSemesters)
	}
}

func FromModel(ent model.DepartmentModel) DepartmentResponseDTO {
	return DepartmentResponseDTO{
		DepartmentID:             ent.DepartmentID,
		DepartmentName:           ent.DepartmentName,
		DepartmentCode:           ent.DepartmentCode,
		DepartmentSemesters:      []string(ent.DepartmentSemesters),
		DepartmentActiveSemester: ent.DepartmentActiveSemester,
		DepartmentCreatedAt:      ent.DepartmentCreatedAt,
		DepartmentUpdatedAt:      ent.DepartmentUpdatedAt,
	}
}

func FromModels(ents []model.DepartmentModel) []DepartmentResponseDTO {
	out := make([]DepartmentResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
