// file: internals/features/college/timetable/service/conflict_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	deptModel "campusschedule_backend/internals/features/college/departments/model"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

/* =========================
   Scope & descriptor
   ========================= */

// ConflictScope: department+semester milik kandidat yang sedang divalidasi.
// Dihitung sekali per pengecekan, bukan di-fetch ulang per baris.
type ConflictScope struct {
	DepartmentID uuid.UUID
	Semester     string
}

// ConflictQuery: satu pengecekan ketersediaan faculty. Subject hanya dipakai
// mode lab — pengecualian lab berlaku untuk grup identik (department,
// semester, day, start, end, subject), bukan sembarang overlap di department
// sendiri.
type ConflictQuery struct {
	FacultyID uuid.UUID
	Day       string
	StartTime string
	EndTime   string
	Subject   string
	IsLab     bool
	Scope     ConflictScope
	ExcludeID *uuid.UUID
}

// ConflictDescriptor: cukup detail untuk pesan operator (department &
// semester pemblokir) tanpa mengekspos model store ke caller.
type ConflictDescriptor struct {
	EntryID        uuid.UUID `json:"entry_id"`
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Semester       string    `json:"semester"`
	Day            string    `json:"day"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Subject        string    `json:"subject"`
}

/* =========================
   Arbitrase murni (unit-testable tanpa DB)
   ========================= */

// IsActiveEntry: entry ikut hitungan konflik hanya jika semesternya == semester
// aktif department PEMILIK entry itu. Booking semester non-aktif tidak pernah
// memblokir, berapapun overlap waktunya.
func IsActiveEntry(e m.TimetableEntryModel, activeSemester map[uuid.UUID]string) bool {
	return e.TimetableEntrySemester == activeSemester[e.TimetableEntryDepartmentID]
}

// BlockingConflicts menerapkan aturan arbitrase + lab exception pada kandidat
// overlap yang SUDAH terseleksi waktu/hari/faculty-nya:
//  1. break (faculty NULL) tidak pernah memblokir;
//  2. hanya entry di semester aktif department-nya yang memblokir;
//  3. lab exception: kandidat lab tidak bentrok dengan anggota grup lab
//     IDENTIK di department sendiri (department, semester, day, start, end,
//     subject semua sama) — beberapa pengajar boleh satu sesi lab. Overlap
//     lain di department sendiri tetap memblokir.
func BlockingConflicts(rows []m.TimetableEntryModel, activeSemester map[uuid.UUID]string, q ConflictQuery) []m.TimetableEntryModel {
	blocking := make([]m.TimetableEntryModel, 0, len(rows))
	for _, e := range rows {
		if e.TimetableEntryFacultyID == nil {
			continue
		}
		if !IsActiveEntry(e, activeSemester) {
			continue
		}
		if q.IsLab && sameLabGroup(e, q) {
			continue
		}
		blocking = append(blocking, e)
	}
	return blocking
}

func sameLabGroup(e m.TimetableEntryModel, q ConflictQuery) bool {
	return e.TimetableEntryDepartmentID == q.Scope.DepartmentID &&
		e.TimetableEntrySemester == q.Scope.Semester &&
		e.TimetableEntryDay == q.Day &&
		e.TimetableEntryStartTime == q.StartTime &&
		e.TimetableEntryEndTime == q.EndTime &&
		e.TimetableEntrySubject == q.Subject
}

/* =========================
   Service
   ========================= */

type ConflictService struct {
	DB *gorm.DB
}

func NewConflictService(db *gorm.DB) *ConflictService {
	return &ConflictService{DB: db}
}

// FindConflicts: scan seluruh college untuk faculty+day yang overlap dengan
// [StartTime,EndTime), lalu saring dengan aturan arbitrase. Hasil non-empty
// berarti hard rejection bagi caller.
func (s *ConflictService) FindConflicts(ctx context.Context, q ConflictQuery) ([]ConflictDescriptor, error) {
	return s.findConflictsTx(s.DB.WithContext(ctx), q)
}

// findConflictsTx dipakai EntryService di dalam transaksi yang sama dengan
// write-nya, supaya check-then-act tidak balapan dengan submission lain.
func (s *ConflictService) findConflictsTx(tx *gorm.DB, q ConflictQuery) ([]ConflictDescriptor, error) {
	sel := tx.
		Where("timetable_entry_faculty_id = ?", q.FacultyID).
		Where("timetable_entry_day = ?", q.Day).
		Where("timetable_entry_start_time < ? AND timetable_entry_end_time > ?", q.EndTime, q.StartTime)
	if q.ExcludeID != nil {
		sel = sel.Where("timetable_entry_id <> ?", *q.ExcludeID)
	}

	var rows []m.TimetableEntryModel
	if err := sel.Order("timetable_entry_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	active, names, err := activeSemesterMap(tx, rows)
	if err != nil {
		return nil, err
	}

	blocking := BlockingConflicts(rows, active, q)
	out := make([]ConflictDescriptor, 0, len(blocking))
	for _, e := range blocking {
		out = append(out, ConflictDescriptor{
			EntryID:        e.TimetableEntryID,
			DepartmentID:   e.TimetableEntryDepartmentID,
			DepartmentName: names[e.TimetableEntryDepartmentID],
			Semester:       e.TimetableEntrySemester,
			Day:            e.TimetableEntryDay,
			StartTime:      e.TimetableEntryStartTime,
			EndTime:        e.TimetableEntryEndTime,
			Subject:        e.TimetableEntrySubject,
		})
	}
	return out, nil
}

// activeSemesterMap mengambil semester aktif + nama semua department yang
// tersangkut dalam satu query.
func activeSemesterMap(tx *gorm.DB, rows []m.TimetableEntryModel) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, e := range rows {
		if _, ok := seen[e.TimetableEntryDepartmentID]; ok {
			continue
		}
		seen[e.TimetableEntryDepartmentID] = struct{}{}
		ids = append(ids, e.TimetableEntryDepartmentID)
	}

	var depts []deptModel.DepartmentModel
	if err := tx.Where("department_id IN ?", ids).Find(&depts).Error; err != nil {
		return nil, nil, err
	}

	active := make(map[uuid.UUID]string, len(depts))
	names := make(map[uuid.UUID]string, len(depts))
	for _, d := range depts {
		active[d.DepartmentID] = d.DepartmentActiveSemester
		names[d.DepartmentID] = d.DepartmentName
	}
	return active, names, nil
}
