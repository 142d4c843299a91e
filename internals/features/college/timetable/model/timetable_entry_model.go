// file: internals/features/college/timetable/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TimetableEntryModel adalah satu sel jadwal: (department, semester, day,
// start, end) + faculty. Lab session = beberapa baris dengan key slot yang
// sama, subject sama, faculty berbeda. Break = faculty NULL.
//
// Jam disimpan sebagai string "HH:MM" zero-padded sehingga urutan leksikal ==
// urutan kronologis; perbandingan overlap bisa langsung di SQL maupun di Go.
//
// Baris tidak pernah di-update untuk field yang relevan konflik; perubahan
// dimodelkan sebagai delete + create ulang lewat EntryService.
type TimetableEntryModel struct {
	// PK
	TimetableEntryID uuid.UUID `gorm:"column:timetable_entry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_entry_id"`

	TimetableEntryDepartmentID uuid.UUID `gorm:"column:timetable_entry_department_id;type:uuid;not null;index;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_department_id"`

	// NULL ⇒ break/recess (tidak pernah ikut pengecekan konflik)
	TimetableEntryFacultyID *uuid.UUID `gorm:"column:timetable_entry_faculty_id;type:uuid;index;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_faculty_id,omitempty"`

	TimetableEntrySubject  string `gorm:"column:timetable_entry_subject;type:varchar(100);not null" json:"timetable_entry_subject"`
	TimetableEntryDay      string `gorm:"column:timetable_entry_day;type:varchar(10);not null;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_day"`
	TimetableEntrySemester string `gorm:"column:timetable_entry_semester;type:varchar(20);not null;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_semester"`

	TimetableEntryStartTime string `gorm:"column:timetable_entry_start_time;type:varchar(5);not null;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_start_time"`
	TimetableEntryEndTime   string `gorm:"column:timetable_entry_end_time;type:varchar(5);not null;uniqueIndex:uq_timetable_entries_slot_faculty" json:"timetable_entry_end_time"`

	// Audit
	TimetableEntryCreatedAt time.Time `gorm:"column:timetable_entry_created_at;type:timestamptz;not null;autoCreateTime" json:"timetable_entry_created_at"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
