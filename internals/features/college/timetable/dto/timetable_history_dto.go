// file: internals/features/college/timetable/dto/timetable_history_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "campusschedule_backend/internals/features/college/timetable/model"
)

// =======================
// Request DTO
// =======================

type ArchiveTimetableDTO struct {
	TimetableHistorySemester string `json:"timetable_history_semester" validate:"required"`
	TimetableHistoryYear     int    `json:"timetable_history_year"     validate:"required,min=2000,max=2100"`
}

// =======================
// Response DTO
// =======================

// Ringkasan arsip untuk listing (tanpa payload snapshot).
type TimetableHistoryListItemDTO struct {
	TimetableHistoryID           uuid.UUID `json:"timetable_history_id"`
	TimetableHistoryDepartmentID uuid.UUID `json:"timetable_history_department_id"`
	TimetableHistorySemester     string    `json:"timetable_history_semester"`
	TimetableHistoryYear         int       `json:"timetable_history_year"`
	TimetableHistoryCreatedAt    time.Time `json:"timetable_history_created_at"`
}

func HistoryFromModel(ent m.TimetableHistoryModel) TimetableHistoryListItemDTO {
	return TimetableHistoryListItemDTO{
		TimetableHistoryID:           ent.TimetableHistoryID,
		TimetableHistoryDepartmentID: ent.TimetableHistoryDepartmentID,
		TimetableHistorySemester:     ent.TimetableHistorySemester,
		TimetableHistoryYear:         ent.TimetableHistoryYear,
		TimetableHistoryCreatedAt:    ent.TimetableHistoryCreatedAt,
	}
}

func HistoriesFromModels(ents []m.TimetableHistoryModel) []TimetableHistoryListItemDTO {
	out := make([]TimetableHistoryListItemDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, HistoryFromModel(e))
	}
	return out
}
