// file: internals/features/college/timetable/service/entry_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusschedule_backend/internals/constants"
	deptModel "campusschedule_backend/internals/features/college/departments/model"
	facultyModel "campusschedule_backend/internals/features/college/faculties/model"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

/* =========================
   Candidate
   ========================= */

// Candidate adalah satu submission operator, sudah lepas dari bentuk HTTP.
// Intent diklasifikasi sekali lewat Intent() lalu dibawa eksplisit.
type Candidate struct {
	DepartmentID uuid.UUID
	Semester     string
	Day          string // kosong hanya boleh untuk break "semua hari"
	Subject      string
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"

	FacultyID     *uuid.UUID  // mode lecture: tepat satu
	LabFacultyIDs []uuid.UUID // mode lab: satu atau lebih
	LabMode       bool

	// Diisi saat memvalidasi update (delete+recreate) supaya baris lama
	// tidak memblokir dirinya sendiri.
	ExcludeID *uuid.UUID
}

func (c *Candidate) Intent() EntryIntent {
	return ClassifyIntent(c.Subject, c.LabMode)
}

// ValidateStructure: pengecekan struktural murni, fail fast, tanpa store.
func ValidateStructure(c Candidate) *FieldError {
	if strings.TrimSpace(c.Subject) == "" {
		return &FieldError{Field: "subject", Message: "subject wajib diisi"}
	}
	if !constants.IsValidSemester(c.Semester) {
		return &FieldError{Field: "semester", Message: "label semester tidak dikenal"}
	}
	if !ValidClock(c.StartTime) {
		return &FieldError{Field: "start_time", Message: "format jam harus HH:MM"}
	}
	if !ValidClock(c.EndTime) {
		return &FieldError{Field: "end_time", Message: "format jam harus HH:MM"}
	}
	if c.StartTime >= c.EndTime {
		return &FieldError{Field: "end_time", Message: "end time harus setelah start time"}
	}

	intent := c.Intent()

	if c.Day == "" {
		// hanya break yang boleh tanpa hari (di-expand ke semua hari kerja)
		if intent != IntentBreak {
			return &FieldError{Field: "day", Message: "day wajib diisi"}
		}
	} else if !constants.IsValidDay(c.Day) {
		return &FieldError{Field: "day", Message: "day tidak dikenal"}
	}

	switch intent {
	case IntentBreak:
		if c.FacultyID != nil || len(c.LabFacultyIDs) > 0 {
			return &FieldError{Field: "faculty_id", Message: "break/recess tidak boleh punya faculty"}
		}
	case IntentLecture:
		if c.FacultyID == nil {
			return &FieldError{Field: "faculty_id", Message: "lecture butuh tepat satu faculty"}
		}
		if len(c.LabFacultyIDs) > 0 {
			return &FieldError{Field: "lab_faculty_ids", Message: "lab_faculty_ids hanya untuk mode lab"}
		}
	case IntentLab:
		if len(c.LabFacultyIDs) == 0 {
			return &FieldError{Field: "lab_faculty_ids", Message: "pilih minimal satu pengajar untuk sesi lab"}
		}
		if c.FacultyID != nil {
			return &FieldError{Field: "faculty_id", Message: "faculty_id tunggal tidak dipakai di mode lab"}
		}
	}
	return nil
}

/* =========================
   Service
   ========================= */

type EntryService struct {
	DB        *gorm.DB
	Conflicts *ConflictService
}

func NewEntryService(db *gorm.DB) *EntryService {
	return &EntryService{DB: db, Conflicts: NewConflictService(db)}
}

// ValidateAndSave menjalankan seluruh state machine submission: klasifikasi →
// struktural → duplicate slot → konflik per-faculty → persist. Semuanya dalam
// SATU transaksi sehingga check-then-act tidak balapan dengan submission
// concurrent, dan roster lab bersifat all-or-nothing.
func (s *EntryService) ValidateAndSave(ctx context.Context, cand Candidate) ([]uuid.UUID, error) {
	if ferr := ValidateStructure(cand); ferr != nil {
		return nil, ferr
	}
	intent := cand.Intent()

	var savedIDs []uuid.UUID
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dept deptModel.DepartmentModel
		if err := tx.First(&dept, "department_id = ?", cand.DepartmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
		scope := ConflictScope{DepartmentID: dept.DepartmentID, Semester: cand.Semester}

		// Duplicate slot: satu sel hanya boleh satu baris, kecuali lab
		// (beberapa baris per sel memang diharapkan). Break di-handle
		// get-or-create per sel di saveBreak, termasuk saat Day kosong.
		if intent != IntentLab && cand.Day != "" {
			occupied, err := slotOccupied(tx, cand, cand.Day)
			if err != nil {
				return err
			}
			if occupied {
				return &DuplicateSlotError{
					DepartmentID: cand.DepartmentID,
					Semester:     cand.Semester,
					Day:          cand.Day,
					StartTime:    cand.StartTime,
					EndTime:      cand.EndTime,
				}
			}
		}

		switch intent {
		case IntentBreak:
			ids, err := s.saveBreak(tx, cand)
			if err != nil {
				return err
			}
			savedIDs = ids

		case IntentLecture:
			conflicts, err := s.Conflicts.findConflictsTx(tx, ConflictQuery{
				FacultyID: *cand.FacultyID,
				Day:       cand.Day,
				StartTime: cand.StartTime,
				EndTime:   cand.EndTime,
				Scope:     scope,
				ExcludeID: cand.ExcludeID,
			})
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return s.conflictError(tx, *cand.FacultyID, conflicts)
			}
			entry := newEntry(cand, cand.Day, cand.FacultyID)
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			savedIDs = []uuid.UUID{entry.TimetableEntryID}

		case IntentLab:
			// cek SEMUA pengajar dulu; konflik pertama membatalkan seluruh roster
			for _, fid := range cand.LabFacultyIDs {
				conflicts, err := s.Conflicts.findConflictsTx(tx, ConflictQuery{
					FacultyID: fid,
					Day:       cand.Day,
					StartTime: cand.StartTime,
					EndTime:   cand.EndTime,
					Subject:   cand.Subject,
					IsLab:     true,
					Scope:     scope,
					ExcludeID: cand.ExcludeID,
				})
				if err != nil {
					return err
				}
				if len(conflicts) > 0 {
					return s.conflictError(tx, fid, conflicts)
				}
			}
			batch := make([]m.TimetableEntryModel, 0, len(cand.LabFacultyIDs))
			for _, fid := range cand.LabFacultyIDs {
				f := fid
				batch = append(batch, newEntry(cand, cand.Day, &f))
			}
			if err := tx.Create(&batch).Error; err != nil {
				return err
			}
			for _, e := range batch {
				savedIDs = append(savedIDs, e.TimetableEntryID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return savedIDs, nil
}

// saveBreak: hari eksplisit → satu baris; tanpa hari → satu baris per hari
// kerja, idempotent terhadap re-submit. Get-or-create di-key per sel
// (dept, semester, day, start, end) TANPA melihat faculty: sel yang sudah
// ditempati lecture/lab dipakai ulang, tidak ditimpa baris break kedua.
func (s *EntryService) saveBreak(tx *gorm.DB, cand Candidate) ([]uuid.UUID, error) {
	days := []string{cand.Day}
	if cand.Day == "" {
		days = constants.WeekDays
	}

	var existing []m.TimetableEntryModel
	if err := tx.
		Where("timetable_entry_department_id = ? AND timetable_entry_semester = ? AND timetable_entry_start_time = ? AND timetable_entry_end_time = ? AND timetable_entry_day IN ?",
			cand.DepartmentID, cand.Semester, cand.StartTime, cand.EndTime, days).
		Order("timetable_entry_created_at ASC").
		Find(&existing).Error; err != nil {
		return nil, err
	}

	create, ids := planBreakDays(days, existing)
	if len(create) > 0 {
		batch := make([]m.TimetableEntryModel, 0, len(create))
		for _, day := range create {
			batch = append(batch, newEntry(cand, day, nil))
		}
		if err := tx.Create(&batch).Error; err != nil {
			return nil, err
		}
		for _, e := range batch {
			ids = append(ids, e.TimetableEntryID)
		}
	}
	return ids, nil
}

// planBreakDays memisahkan hari yang selnya masih kosong (perlu baris baru)
// dari hari yang sudah terisi; baris penghuni dipakai ulang apa adanya,
// walau itu lecture. Existing diasumsikan sudah terurut created_at.
func planBreakDays(days []string, existing []m.TimetableEntryModel) (create []string, reuse []uuid.UUID) {
	occupied := make(map[string]uuid.UUID, len(existing))
	for _, e := range existing {
		if _, ok := occupied[e.TimetableEntryDay]; !ok {
			occupied[e.TimetableEntryDay] = e.TimetableEntryID
		}
	}
	for _, day := range days {
		if id, ok := occupied[day]; ok {
			reuse = append(reuse, id)
		} else {
			create = append(create, day)
		}
	}
	return create, reuse
}

func (s *EntryService) conflictError(tx *gorm.DB, facultyID uuid.UUID, conflicts []ConflictDescriptor) error {
	var f facultyModel.FacultyModel
	name := facultyID.String()
	if err := tx.First(&f, "faculty_id = ?", facultyID).Error; err == nil {
		name = f.FacultyName
	}
	return &ConflictError{FacultyID: facultyID, FacultyName: name, Conflicts: conflicts}
}

// DeleteEntry menghapus satu baris; perubahan entry dimodelkan sebagai
// delete + create ulang, tidak ada update in-place untuk field konflik.
func (s *EntryService) DeleteEntry(ctx context.Context, entryID uuid.UUID) (*m.TimetableEntryModel, error) {
	var entry m.TimetableEntryModel
	if err := s.DB.WithContext(ctx).First(&entry, "timetable_entry_id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteAllEntries menghapus semua baris satu department+semester, return
// jumlah terhapus.
func (s *EntryService) DeleteAllEntries(ctx context.Context, departmentID uuid.UUID, semester string) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("timetable_entry_department_id = ? AND timetable_entry_semester = ?", departmentID, semester).
		Delete(&m.TimetableEntryModel{})
	return res.RowsAffected, res.Error
}

func newEntry(cand Candidate, day string, facultyID *uuid.UUID) m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryDepartmentID: cand.DepartmentID,
		TimetableEntryFacultyID:    facultyID,
		TimetableEntrySemester:     cand.Semester,
		TimetableEntryDay:          day,
		TimetableEntryStartTime:    cand.StartTime,
		TimetableEntryEndTime:      cand.EndTime,
		TimetableEntrySubject:      cand.Subject,
	}
}

func slotOccupied(tx *gorm.DB, cand Candidate, day string) (bool, error) {
	var count int64
	q := tx.Model(&m.TimetableEntryModel{}).
		Where("timetable_entry_department_id = ? AND timetable_entry_semester = ? AND timetable_entry_day = ? AND timetable_entry_start_time = ? AND timetable_entry_end_time = ?",
			cand.DepartmentID, cand.Semester, day, cand.StartTime, cand.EndTime)
	if cand.ExcludeID != nil {
		q = q.Where("timetable_entry_id <> ?", *cand.ExcludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
