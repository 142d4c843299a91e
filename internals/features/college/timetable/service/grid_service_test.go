package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"campusschedule_backend/internals/constants"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

var facultyNames = map[uuid.UUID]string{
	drRao:  "Dr. Rao",
	drShah: "Dr. Shah",
}

func sampleEntries() []m.TimetableEntryModel {
	return []m.TimetableEntryModel{
		// lab: dua pengajar, satu subject, slot sama
		entry("66666666-6666-6666-6666-666666666661", deptBCS, &drShah, "DBMS Lab", "Monday", "Semester 1", "11:00", "13:00"),
		entry("66666666-6666-6666-6666-666666666662", deptBCS, &drRao, "DBMS Lab", "Monday", "Semester 1", "11:00", "13:00"),
		// lecture biasa
		entry("66666666-6666-6666-6666-666666666663", deptBCS, &drRao, "DBMS", "Tuesday", "Semester 1", "09:00", "10:00"),
		// break
		entry("66666666-6666-6666-6666-666666666664", deptBCS, nil, "Recess", "Monday", "Semester 1", "10:00", "10:30"),
		// anomali: slot sama, subject beda → sel bertumpuk, tidak boleh crash
		entry("66666666-6666-6666-6666-666666666665", deptBCS, &drRao, "OS", "Wednesday", "Semester 1", "09:00", "10:00"),
		entry("66666666-6666-6666-6666-666666666666", deptBCS, &drShah, "CN", "Wednesday", "Semester 1", "09:00", "10:00"),
	}
}

func TestBuildMatrixRowsOrderedByTime(t *testing.T) {
	matrix := BuildMatrix(sampleEntries(), facultyNames, constants.WeekDays)

	if len(matrix.Rows) != 3 {
		t.Fatalf("jumlah baris = %d, want 3", len(matrix.Rows))
	}
	wantLabels := []string{"09:00 - 10:00", "10:00 - 10:30", "11:00 - 13:00"}
	for i, want := range wantLabels {
		if matrix.Rows[i].TimeLabel != want {
			t.Errorf("row[%d] = %q, want %q", i, matrix.Rows[i].TimeLabel, want)
		}
	}
}

func TestBuildMatrixLabGrouping(t *testing.T) {
	matrix := BuildMatrix(sampleEntries(), facultyNames, constants.WeekDays)

	labRow := matrix.Rows[2] // 11:00 - 13:00
	cells := labRow.Days["Monday"]
	if len(cells) != 1 {
		t.Fatalf("sel lab harus collapse jadi satu, dapat %d", len(cells))
	}
	cell := cells[0]
	if !cell.IsLab {
		t.Error("sel lab tidak ditandai IsLab")
	}
	if cell.Subject != "DBMS Lab" {
		t.Errorf("subject lab = %q", cell.Subject)
	}
	// deterministik: urut nama
	want := []string{"Dr. Rao", "Dr. Shah"}
	if !reflect.DeepEqual(cell.Faculties, want) {
		t.Errorf("faculties = %v, want %v", cell.Faculties, want)
	}
	if len(cell.EntryIDs) != 2 {
		t.Errorf("member entry ids = %d, want 2", len(cell.EntryIDs))
	}
}

func TestBuildMatrixStackedCellsOnSubjectMismatch(t *testing.T) {
	matrix := BuildMatrix(sampleEntries(), facultyNames, constants.WeekDays)

	cells := matrix.Rows[0].Days["Wednesday"]
	if len(cells) != 2 {
		t.Fatalf("subject campur harus jadi sel bertumpuk, dapat %d", len(cells))
	}
	for _, cell := range cells {
		if cell.IsLab {
			t.Error("sel bertumpuk tidak boleh ditandai lab")
		}
	}
	// urut subject: CN sebelum OS
	if cells[0].Subject != "CN" || cells[1].Subject != "OS" {
		t.Errorf("urutan tumpukan = %q, %q", cells[0].Subject, cells[1].Subject)
	}
}

func TestBuildMatrixBreakAndEmptyCells(t *testing.T) {
	matrix := BuildMatrix(sampleEntries(), facultyNames, constants.WeekDays)

	breakCells := matrix.Rows[1].Days["Monday"]
	if len(breakCells) != 1 || breakCells[0].Faculty != constants.BreakFacultyLabel {
		t.Errorf("sel break = %+v", breakCells)
	}

	empty := matrix.Rows[1].Days["Friday"]
	if len(empty) != 0 {
		t.Errorf("sel kosong harus slice kosong, dapat %v", empty)
	}
}

func TestBuildMatrixDeterministic(t *testing.T) {
	entries := sampleEntries()
	first := BuildMatrix(entries, facultyNames, constants.WeekDays)

	// urutan input dibalik → output harus identik
	reversed := make([]m.TimetableEntryModel, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	second := BuildMatrix(reversed, facultyNames, constants.WeekDays)

	if !reflect.DeepEqual(first, second) {
		t.Error("BuildMatrix tidak deterministik terhadap urutan input")
	}

	third := BuildMatrix(entries, facultyNames, constants.WeekDays)
	if !reflect.DeepEqual(first, third) {
		t.Error("BuildMatrix tidak idempotent")
	}
}

func TestBuildMatrixUnknownFacultyRendersSafely(t *testing.T) {
	entries := sampleEntries()
	matrix := BuildMatrix(entries, map[uuid.UUID]string{}, constants.WeekDays)

	cells := matrix.Rows[0].Days["Tuesday"]
	if len(cells) != 1 {
		t.Fatalf("dapat %d sel", len(cells))
	}
	if cells[0].Faculty != drRao.String() {
		t.Errorf("faculty tanpa nama harus fallback ke UUID, dapat %q", cells[0].Faculty)
	}
}

// Round-trip: render snapshot arsip harus mengelompokkan lab persis seperti
// render entries live (identitas numerik faculty memang hilang).
func TestSnapshotMatrixRoundTrip(t *testing.T) {
	entries := sampleEntries()
	live := BuildMatrix(entries, facultyNames, constants.WeekDays)

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
		} else {
			row.Faculty = facultyNames[*e.TimetableEntryFacultyID]
		}
		snapshot = append(snapshot, row)
	}
	archived := BuildSnapshotMatrix(snapshot, constants.WeekDays)

	if len(archived.Rows) != len(live.Rows) {
		t.Fatalf("jumlah baris beda: %d vs %d", len(archived.Rows), len(live.Rows))
	}
	for i := range live.Rows {
		if archived.Rows[i].TimeLabel != live.Rows[i].TimeLabel {
			t.Errorf("row[%d] label %q vs %q", i, archived.Rows[i].TimeLabel, live.Rows[i].TimeLabel)
		}
		for _, day := range constants.WeekDays {
			liveCells := live.Rows[i].Days[day]
			archCells := archived.Rows[i].Days[day]
			if len(liveCells) != len(archCells) {
				t.Errorf("row[%d] %s: %d vs %d sel", i, day, len(archCells), len(liveCells))
				continue
			}
			for j := range liveCells {
				if liveCells[j].IsLab != archCells[j].IsLab ||
					liveCells[j].Subject != archCells[j].Subject ||
					liveCells[j].Faculty != archCells[j].Faculty ||
					!reflect.DeepEqual(liveCells[j].Faculties, archCells[j].Faculties) {
					t.Errorf("row[%d] %s sel[%d]: %+v vs %+v", i, day, j, archCells[j], liveCells[j])
				}
			}
		}
	}
}

// Arsip lama tanpa flag is_break: label legacy "Break/Recess" tetap dikenali.
func TestSnapshotLegacyBreakLabel(t *testing.T) {
	snapshot := []SnapshotEntry{
		{Subject: "Recess", Faculty: constants.BreakFacultyLabel, Day: "Monday", StartTime: "10:00", EndTime: "10:30"},
		{Subject: "DBMS Lab", Faculty: "Dr. Rao", Day: "Monday", StartTime: "11:00", EndTime: "13:00"},
		{Subject: "DBMS Lab", Faculty: "Dr. Shah", Day: "Monday", StartTime: "11:00", EndTime: "13:00"},
	}
	matrix := BuildSnapshotMatrix(snapshot, constants.WeekDays)

	if len(matrix.Rows) != 2 {
		t.Fatalf("jumlah baris = %d", len(matrix.Rows))
	}
	lab := matrix.Rows[1].Days["Monday"]
	if len(lab) != 1 || !lab[0].IsLab || len(lab[0].Faculties) != 2 {
		t.Errorf("lab snapshot tidak ter-group: %+v", lab)
	}
}

func TestEmptyMatrix(t *testing.T) {
	matrix := BuildMatrix(nil, nil, constants.WeekDays)
	if len(matrix.Rows) != 0 {
		t.Errorf("entries kosong harus menghasilkan matrix tanpa baris, dapat %d", len(matrix.Rows))
	}
	if len(matrix.Days) != 6 {
		t.Errorf("days harus diteruskan apa adanya, dapat %d", len(matrix.Days))
	}
}
