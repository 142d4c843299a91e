// file: internals/features/college/timetable/dto/timetable_entry_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "campusschedule_backend/internals/features/college/timetable/model"
	svc "campusschedule_backend/internals/features/college/timetable/service"
)

// =======================
// Request DTO
// =======================

// Satu submission operator. Mode lab dipilih eksplisit lewat flag is_lab
// (radio button di form lama); klasifikasi break tetap dari teks subject.
type TimetableEntryCreateDTO struct {
	TimetableEntryDepartmentID string `json:"timetable_entry_department_id" validate:"required,uuid4"`
	TimetableEntrySemester     string `json:"timetable_entry_semester"      validate:"required"`
	// kosong hanya untuk break "semua hari"
	TimetableEntryDay     string `json:"timetable_entry_day"     validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	TimetableEntrySubject string `json:"timetable_entry_subject" validate:"required,min=2,max=100"`

	TimetableEntryStartTime string `json:"timetable_entry_start_time" validate:"required,len=5"`
	TimetableEntryEndTime   string `json:"timetable_entry_end_time"   validate:"required,len=5"`

	TimetableEntryFacultyID  *string  `json:"timetable_entry_faculty_id,omitempty"   validate:"omitempty,uuid4"`
	TimetableEntryLabFaculty []string `json:"timetable_entry_lab_faculty,omitempty"  validate:"omitempty,dive,uuid4"`
	TimetableEntryIsLab      bool     `json:"timetable_entry_is_lab"`

	// untuk validasi update (delete+recreate): baris lama tidak memblokir dirinya
	TimetableEntryExcludeID *string `json:"timetable_entry_exclude_id,omitempty" validate:"omitempty,uuid4"`
}

// Dry-run pengecekan konflik tanpa persist (dipakai form sebelum submit).
// Subject wajib saat is_lab supaya pengecualian grup lab identik bisa dinilai.
type ConflictCheckDTO struct {
	FacultyID    string  `json:"faculty_id"    validate:"required,uuid4"`
	DepartmentID string  `json:"department_id" validate:"required,uuid4"`
	Semester     string  `json:"semester"      validate:"required"`
	Day          string  `json:"day"           validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	StartTime    string  `json:"start_time"    validate:"required,len=5"`
	EndTime      string  `json:"end_time"      validate:"required,len=5"`
	Subject      string  `json:"subject,omitempty" validate:"required_if=IsLab true"`
	ExcludeID    *string `json:"exclude_id,omitempty" validate:"omitempty,uuid4"`
	IsLab        bool    `json:"is_lab"`
}

// =======================
// Response DTO
// =======================

type TimetableEntryResponseDTO struct {
	TimetableEntryID           uuid.UUID  `json:"timetable_entry_id"`
	TimetableEntryDepartmentID uuid.UUID  `json:"timetable_entry_department_id"`
	TimetableEntryFacultyID    *uuid.UUID `json:"timetable_entry_faculty_id,omitempty"`
	TimetableEntrySubject      string     `json:"timetable_entry_subject"`
	TimetableEntryDay          string     `json:"timetable_entry_day"`
	TimetableEntrySemester     string     `json:"timetable_entry_semester"`
	TimetableEntryStartTime    string     `json:"timetable_entry_start_time"`
	TimetableEntryEndTime      string     `json:"timetable_entry_end_time"`
	TimetableEntryIsBreak      bool       `json:"timetable_entry_is_break"`
	TimetableEntryCreatedAt    time.Time  `json:"timetable_entry_created_at"`
}

// =======================
// Helpers
// =======================

func (p *TimetableEntryCreateDTO) Normalize() {
	p.TimetableEntrySubject = strings.TrimSpace(p.TimetableEntrySubject)
	p.TimetableEntrySemester = strings.TrimSpace(p.TimetableEntrySemester)
	p.TimetableEntryStartTime = strings.TrimSpace(p.TimetableEntryStartTime)
	p.TimetableEntryEndTime = strings.TrimSpace(p.TimetableEntryEndTime)
}

// ToCandidate menerjemahkan bentuk HTTP ke kandidat engine. Error parse UUID
// dikembalikan sebagai FieldError supaya taksonominya konsisten.
func (p *TimetableEntryCreateDTO) ToCandidate() (svc.Candidate, error) {
	deptID, err := uuid.Parse(p.TimetableEntryDepartmentID)
	if err != nil {
		return svc.Candidate{}, &svc.FieldError{Field: "timetable_entry_department_id", Message: "bukan UUID valid"}
	}

	cand := svc.Candidate{
		DepartmentID: deptID,
		Semester:     p.TimetableEntrySemester,
		Day:          p.TimetableEntryDay,
		Subject:      p.TimetableEntrySubject,
		StartTime:    p.TimetableEntryStartTime,
		EndTime:      p.TimetableEntryEndTime,
		LabMode:      p.TimetableEntryIsLab,
	}

	if p.TimetableEntryFacultyID != nil && strings.TrimSpace(*p.TimetableEntryFacultyID) != "" {
		id, err := uuid.Parse(*p.TimetableEntryFacultyID)
		if err != nil {
			return svc.Candidate{}, &svc.FieldError{Field: "timetable_entry_faculty_id", Message: "bukan UUID valid"}
		}
		cand.FacultyID = &id
	}

	for _, raw := range p.TimetableEntryLabFaculty {
		id, err := uuid.Parse(raw)
		if err != nil {
			return svc.Candidate{}, &svc.FieldError{Field: "timetable_entry_lab_faculty", Message: "berisi UUID tidak valid"}
		}
		cand.LabFacultyIDs = append(cand.LabFacultyIDs, id)
	}

	if p.TimetableEntryExcludeID != nil && strings.TrimSpace(*p.TimetableEntryExcludeID) != "" {
		id, err := uuid.Parse(*p.TimetableEntryExcludeID)
		if err != nil {
			return svc.Candidate{}, &svc.FieldError{Field: "timetable_entry_exclude_id", Message: "bukan UUID valid"}
		}
		cand.ExcludeID = &id
	}

	return cand, nil
}

func EntryFromModel(ent m.TimetableEntryModel) TimetableEntryResponseDTO {
	return TimetableEntryResponseDTO{
		TimetableEntryID:           ent.TimetableEntryID,
		TimetableEntryDepartmentID: ent.TimetableEntryDepartmentID,
		TimetableEntryFacultyID:    ent.TimetableEntryFacultyID,
		TimetableEntrySubject:      ent.TimetableEntrySubject,
		TimetableEntryDay:          ent.TimetableEntryDay,
		TimetableEntrySemester:     ent.TimetableEntrySemester,
		TimetableEntryStartTime:    ent.TimetableEntryStartTime,
		TimetableEntryEndTime:      ent.TimetableEntryEndTime,
		TimetableEntryIsBreak:      ent.TimetableEntryFacultyID == nil,
		TimetableEntryCreatedAt:    ent.TimetableEntryCreatedAt,
	}
}

func EntriesFromModels(ents []m.TimetableEntryModel) []TimetableEntryResponseDTO {
	out := make([]TimetableEntryResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, EntryFromModel(e))
	}
	return out
}
