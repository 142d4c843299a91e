// file: internals/features/college/timetable/model/timetable_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TimetableHistoryModel adalah arsip immutable satu department+semester pada
// satu tahun. Dibuat hanya lewat aksi archive eksplisit; arsip MENYALIN baris
// live, tidak memindahkan. Tidak pernah di-update setelah insert.
type TimetableHistoryModel struct {
	// PK
	TimetableHistoryID uuid.UUID `gorm:"column:timetable_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_history_id"`

	TimetableHistoryDepartmentID uuid.UUID `gorm:"column:timetable_history_department_id;type:uuid;not null;index" json:"timetable_history_department_id"`
	TimetableHistorySemester     string    `gorm:"column:timetable_history_semester;type:varchar(50);not null" json:"timetable_history_semester"`
	TimetableHistoryYear         int       `gorm:"column:timetable_history_year;not null;index" json:"timetable_history_year"`

	// Daftar SnapshotEntry (lihat service.SnapshotEntry) sebagai JSONB.
	TimetableHistoryDataSnapshot datatypes.JSON `gorm:"column:timetable_history_data_snapshot;type:jsonb;not null" json:"timetable_history_data_snapshot"`

	TimetableHistoryCreatedAt time.Time `gorm:"column:timetable_history_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_history_created_at"`
}

func (TimetableHistoryModel) TableName() string { return "timetable_histories" }
