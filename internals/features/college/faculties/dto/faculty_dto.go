// file: internals/features/college/faculties/dto/faculty_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campusschedule_backend/internals/features/college/faculties/model"
)

// =======================
// Request DTO
// =======================

type FacultyCreateDTO struct {
	FacultyName         string  `json:"faculty_name"          validate:"required,min=2,max=100"`
	FacultyDepartmentID *string `json:"faculty_department_id,omitempty" validate:"omitempty,uuid4"`
}

type FacultyUpdateDTO struct {
	FacultyName         *string `json:"faculty_name,omitempty"          validate:"omitempty,min=2,max=100"`
	FacultyDepartmentID *string `json:"faculty_department_id,omitempty" validate:"omitempty,uuid4"`
}

// =======================
// Response DTO
// =======================

type FacultyResponseDTO struct {
	FacultyID           uuid.UUID  `json:"faculty_id"`
	FacultyName         string     `json:"faculty_name"`
	FacultyDepartmentID *uuid.UUID `json:"faculty_department_id,omitempty"`
	FacultyCreatedAt    time.Time  `json:"faculty_created_at"`
	FacultyUpdatedAt    time.Time  `json:"faculty_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *FacultyCreateDTO) Normalize() {
	p.FacultyName = strings.TrimSpace(p.FacultyName)
}

func (p *FacultyCreateDTO) ToModel() (model.FacultyModel, error) {
	ent := model.FacultyModel{
		FacultyName: p.FacultyName,
	}
	if p.FacultyDepartmentID != nil && strings.TrimSpace(*p.FacultyDepartmentID) != "" {
		id, err := uuid.Parse(*p.FacultyDepartmentID)
		if err != nil {
			return ent, err
		}
		ent.FacultyDepartmentID = &id
	}
	return ent, nil
}

func (u *FacultyUpdateDTO) ApplyUpdates(ent *model.FacultyModel) error {
	if u.FacultyName != nil {
		ent.FacultyName = strings.TrimSpace(*u.FacultyName)
	}
	if u.FacultyDepartmentID != nil {
		if strings.TrimSpace(*u.FacultyDepartmentID) == "" {
			ent.FacultyDepartmentID = nil
		} else {
			id, err := uuid.Parse(*u.FacultyDepartmentID)
			if err != nil {
				return err
			}
			ent.FacultyDepartmentID = &id
		}
	}
	return nil
}

func FromModel(ent model.FacultyModel) FacultyResponseDTO {
	return FacultyResponseDTO{
		FacultyID:           ent.FacultyID,
		FacultyName:         ent.FacultyName,
		FacultyDepartmentID: ent.FacultyDepartmentID,
		FacultyCreatedAt:    ent.FacultyCreatedAt,
		FacultyUpdatedAt:    ent.FacultyUpdatedAt,
	}
}

func FromModels(ents []model.FacultyModel) []FacultyResponseDTO {
	out := make([]FacultyResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
