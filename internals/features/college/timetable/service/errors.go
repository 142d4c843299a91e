// file: internals/features/college/timetable/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Taksonomi error engine. Semua recoverable per-submission: tidak ada yang
// fatal ke proses, tidak ada partial write (lihat EntryService).

var (
	ErrDepartmentNotFound = errors.New("department tidak ditemukan")
	ErrFacultyNotFound    = errors.New("faculty tidak ditemukan")
	ErrEntryNotFound      = errors.New("timetable entry tidak ditemukan")
	ErrHistoryNotFound    = errors.New("arsip timetable tidak ditemukan")
	ErrNothingToArchive   = errors.New("tidak ada entry untuk diarsipkan")
)

// FieldError: kegagalan struktural pada satu field kandidat (start >= end,
// faculty tidak sesuai mode, dst). Selalu bisa diperbaiki caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateSlotError: sel (department, semester, day, start, end) sudah
// terisi dan submission bukan lab. Beda dari ConflictError — ini bukan soal
// faculty, melainkan sel yang sama dipakai dua kali.
type DuplicateSlotError struct {
	DepartmentID uuid.UUID `json:"department_id"`
	Semester     string    `json:"semester"`
	Day          string    `json:"day"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
}

func (e *DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot %s %s-%s (%s) sudah terisi; gunakan mode lab untuk lebih dari satu pengajar",
		e.Day, e.StartTime, e.EndTime, e.Semester)
}

// ConflictError: faculty sudah terpakai di semester aktif department lain
// (atau department yang sama, di luar pengecualian lab). Membawa konflik
// pertama untuk pesan operator; seluruh submission dibatalkan.
type ConflictError struct {
	FacultyID   uuid.UUID            `json:"faculty_id"`
	FacultyName string               `json:"faculty_name"`
	Conflicts   []ConflictDescriptor `json:"conflicts"`
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return fmt.Sprintf("CONFLICT: %s sudah terjadwal", e.FacultyName)
	}
	first := e.Conflicts[0]
	return fmt.Sprintf("CONFLICT: %s sudah mengajar di %s (%s)",
		e.FacultyName, first.DepartmentName, first.Semester)
}
