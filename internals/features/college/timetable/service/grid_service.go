// file: internals/features/college/timetable/service/grid_service.go
package service

import (
	"sort"

	"github.com/google/uuid"

	"campusschedule_backend/internals/constants"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

/* =========================
   Bentuk matrix
   ========================= */

// GridCell: satu isi sel. IsLab=true ⇒ satu subject, banyak pengajar.
// Sel break: Faculty = label break, IsLab=false.
type GridCell struct {
	IsLab     bool        `json:"is_lab"`
	Subject   string      `json:"subject"`
	Faculty   string      `json:"faculty,omitempty"`
	Faculties []string    `json:"faculties,omitempty"`
	EntryIDs  []uuid.UUID `json:"entry_ids,omitempty"`
}

// GridRow: satu baris waktu. Days memetakan label hari → isi sel; slice
// kosong = sel kosong, >1 elemen = sel bertumpuk (state anomali: slot sama,
// subject beda — harus tetap ter-render, tidak boleh crash).
type GridRow struct {
	TimeLabel string                `json:"time"`
	StartTime string                `json:"start_time"`
	EndTime   string                `json:"end_time"`
	Days      map[string][]GridCell `json:"days"`
}

type Matrix struct {
	Days []string  `json:"days"`
	Rows []GridRow `json:"rows"`
}

// SnapshotEntry: satu baris arsip. Times "HH:MM" 24 jam. IsBreak eksplisit;
// label lama "Break/Recess" di Faculty tetap dikenali untuk arsip lama.
type SnapshotEntry struct {
	Subject   string `json:"subject"`
	Faculty   string `json:"faculty"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBreak   bool   `json:"is_break"`
}

/* =========================
   Assembly
   ========================= */

// gridEntry: bentuk internal seragam untuk live rows maupun snapshot rows,
// supaya aturan grouping-nya satu.
type gridEntry struct {
	id      uuid.UUID // uuid.Nil untuk snapshot
	subject string
	faculty string
	day     string
	start   string
	end     string
	isBreak bool
}

// BuildMatrix menyusun matrix day×time dari entries live satu
// department+semester. facultyNames: lookup nama untuk render; id yang tidak
// ditemukan dirender sebagai string UUID (data inkonsisten tetap aman).
func BuildMatrix(entries []m.TimetableEntryModel, facultyNames map[uuid.UUID]string, days []string) Matrix {
	rows := make([]gridEntry, 0, len(entries))
	for _, e := range entries {
		ge := gridEntry{
			id:      e.TimetableEntryID,
			subject: e.TimetableEntrySubject,
			day:     e.TimetableEntryDay,
			start:   e.TimetableEntryStartTime,
			end:     e.TimetableEntryEndTime,
		}
		if e.TimetableEntryFacultyID == nil {
			ge.isBreak = true
			ge.faculty = constants.BreakFacultyLabel
		} else if name, ok := facultyNames[*e.TimetableEntryFacultyID]; ok {
			ge.faculty = name
		} else {
			ge.faculty = e.TimetableEntryFacultyID.String()
		}
		rows = append(rows, ge)
	}
	return assemble(rows, days)
}

// BuildSnapshotMatrix: algoritma yang sama untuk snapshot arsip. Snapshot
// tidak punya id faculty numerik — grouping murni per teks subject, dan baris
// break dikenali dari flag IsBreak atau label legacy.
func BuildSnapshotMatrix(snapshot []SnapshotEntry, days []string) Matrix {
	rows := make([]gridEntry, 0, len(snapshot))
	for _, e := range snapshot {
		rows = append(rows, gridEntry{
			subject: e.Subject,
			faculty: e.Faculty,
			day:     e.Day,
			start:   e.StartTime,
			end:     e.EndTime,
			isBreak: e.IsBreak || e.Faculty == constants.BreakFacultyLabel,
		})
	}
	return assemble(rows, days)
}

func assemble(entries []gridEntry, days []string) Matrix {
	// 1) baris matrix = pasangan (start,end) distinct, urut naik
	type slotKey struct{ start, end string }
	slotSet := make(map[slotKey]struct{})
	for _, e := range entries {
		slotSet[slotKey{e.start, e.end}] = struct{}{}
	}
	slots := make([]slotKey, 0, len(slotSet))
	for k := range slotSet {
		slots = append(slots, k)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].start != slots[j].start {
			return slots[i].start < slots[j].start
		}
		return slots[i].end < slots[j].end
	})

	rows := make([]GridRow, 0, len(slots))
	for _, slot := range slots {
		row := GridRow{
			TimeLabel: TimeLabel(slot.start, slot.end),
			StartTime: slot.start,
			EndTime:   slot.end,
			Days:      make(map[string][]GridCell, len(days)),
		}
		for _, day := range days {
			var selected []gridEntry
			for _, e := range entries {
				if e.day == day && e.start == slot.start && e.end == slot.end {
					selected = append(selected, e)
				}
			}
			row.Days[day] = buildCell(selected)
		}
		rows = append(rows, row)
	}
	return Matrix{Days: days, Rows: rows}
}

// buildCell menerapkan aturan grouping per sel:
//   - >1 baris, semua subject sama → satu LabCell dengan daftar pengajar;
//   - >1 baris, subject campur → sel bertumpuk per baris (anomali, render aman);
//   - 1 baris → satu PlainCell;
//   - 0 baris → slice kosong (EmptyCell).
func buildCell(selected []gridEntry) []GridCell {
	if len(selected) == 0 {
		return []GridCell{}
	}
	// determinisme: urutkan sekali, dipakai baik untuk lab roster maupun tumpukan
	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].subject != selected[j].subject {
			return selected[i].subject < selected[j].subject
		}
		if selected[i].faculty != selected[j].faculty {
			return selected[i].faculty < selected[j].faculty
		}
		return selected[i].id.String() < selected[j].id.String()
	})

	if len(selected) > 1 && sameSubject(selected) {
		cell := GridCell{
			IsLab:   true,
			Subject: selected[0].subject,
		}
		for _, e := range selected {
			if e.isBreak {
				continue
			}
			cell.Faculties = append(cell.Faculties, e.faculty)
			if e.id != uuid.Nil {
				cell.EntryIDs = append(cell.EntryIDs, e.id)
			}
		}
		return []GridCell{cell}
	}

	cells := make([]GridCell, 0, len(selected))
	for _, e := range selected {
		cell := GridCell{
			Subject: e.subject,
			Faculty: e.faculty,
		}
		if e.id != uuid.Nil {
			cell.EntryIDs = []uuid.UUID{e.id}
		}
		cells = append(cells, cell)
	}
	return cells
}

func sameSubject(entries []gridEntry) bool {
	for _, e := range entries[1:] {
		if e.subject != entries[0].subject {
			return false
		}
	}
	return true
}
