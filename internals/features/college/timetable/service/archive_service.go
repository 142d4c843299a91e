// file: internals/features/college/timetable/service/archive_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusschedule_backend/internals/constants"
	deptModel "campusschedule_backend/internals/features/college/departments/model"
	facultyModel "campusschedule_backend/internals/features/college/faculties/model"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

type ArchiveService struct {
	DB *gorm.DB
}

func NewArchiveService(db *gorm.DB) *ArchiveService {
	return &ArchiveService{DB: db}
}

// Archive MENYALIN seluruh entries satu department+semester menjadi satu
// record history immutable. Baris live tidak disentuh. Tidak ada pengecekan
// versi: tiap pemanggilan membuat record baru.
func (s *ArchiveService) Archive(ctx context.Context, departmentID uuid.UUID, semester string, year int) (*m.TimetableHistoryModel, error) {
	var history *m.TimetableHistoryModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dept deptModel.DepartmentModel
		if err := tx.First(&dept, "department_id = ?", departmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}

		var entries []m.TimetableEntryModel
		if err := tx.
			Where("timetable_entry_department_id = ? AND timetable_entry_semester = ?", departmentID, semester).
			Order("timetable_entry_day ASC, timetable_entry_start_time ASC").
			Find(&entries).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return ErrNothingToArchive
		}

		names, err := FacultyNameMap(tx, entries)
		if err != nil {
			return err
		}

		snapshot := make([]SnapshotEntry, 0, len(entries))
		for _, e := range entries {
			row := SnapshotEntry{
				Subject:   e.TimetableEntrySubject,
				Day:       e.TimetableEntryDay,
				StartTime: e.TimetableEntryStartTime,
				EndTime:   e.TimetableEntryEndTime,
			}
			if e.TimetableEntryFacultyID == nil {
				row.IsBreak = true
				row.Faculty = constants.BreakFacultyLabel
			} else if name, ok := names[*e.TimetableEntryFacultyID]; ok {
				row.Faculty = name
			} else {
				row.Faculty = e.TimetableEntryFacultyID.String()
			}
			snapshot = append(snapshot, row)
		}

		raw, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}

		rec := m.TimetableHistoryModel{
			TimetableHistoryDepartmentID: departmentID,
			TimetableHistorySemester:     semester,
			TimetableHistoryYear:         year,
			TimetableHistoryDataSnapshot: datatypes.JSON(raw),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		history = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// DecodeSnapshot membaca kolom jsonb arsip kembali menjadi []SnapshotEntry.
func DecodeSnapshot(raw datatypes.JSON) ([]SnapshotEntry, error) {
	var rows []SnapshotEntry
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FacultyNameMap: lookup nama faculty untuk sekumpulan entries dalam satu
// query. Dipakai grid rendering dan archive.
func FacultyNameMap(tx *gorm.DB, entries []m.TimetableEntryModel) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if e.TimetableEntryFacultyID == nil {
			continue
		}
		if _, ok := seen[*e.TimetableEntryFacultyID]; ok {
			continue
		}
		seen[*e.TimetableEntryFacultyID] = struct{}{}
		ids = append(ids, *e.TimetableEntryFacultyID)
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var faculties []facultyModel.FacultyModel
	if err := tx.Where("faculty_id IN ?", ids).Find(&faculties).Error; err != nil {
		return nil, err
	}
	for _, f := range faculties {
		names[f.FacultyID] = f.FacultyName
	}
	return names, nil
}
