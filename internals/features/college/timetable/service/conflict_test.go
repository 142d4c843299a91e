package service

import (
	"testing"

	"github.com/google/uuid"

	m "campusschedule_backend/internals/features/college/timetable/model"
)

var (
	deptBCS  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	deptBCOM = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	drRao    = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	drShah   = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func entry(id string, dept uuid.UUID, faculty *uuid.UUID, subject, day, semester, start, end string) m.TimetableEntryModel {
	return m.TimetableEntryModel{
		TimetableEntryID:           uuid.MustParse(id),
		TimetableEntryDepartmentID: dept,
		TimetableEntryFacultyID:    faculty,
		TimetableEntrySubject:      subject,
		TimetableEntryDay:          day,
		TimetableEntrySemester:     semester,
		TimetableEntryStartTime:    start,
		TimetableEntryEndTime:      end,
	}
}

func TestIsActiveEntry(t *testing.T) {
	active := map[uuid.UUID]string{deptBCS: "Semester 1"}

	e := entry("33333333-3333-3333-3333-333333333331", deptBCS, &drRao, "DBMS", "Monday", "Semester 1", "09:00", "10:00")
	if !IsActiveEntry(e, active) {
		t.Error("entry semester aktif dianggap tidak aktif")
	}

	e.TimetableEntrySemester = "Semester 2"
	if IsActiveEntry(e, active) {
		t.Error("entry semester non-aktif dianggap aktif")
	}

	// department tidak dikenal di map → tidak pernah aktif
	e.TimetableEntryDepartmentID = deptBCOM
	if IsActiveEntry(e, active) {
		t.Error("entry department tanpa active semester dianggap aktif")
	}
}

func TestBlockingConflicts(t *testing.T) {
	active := map[uuid.UUID]string{
		deptBCS:  "Semester 1",
		deptBCOM: "Semester 3",
	}
	scope := ConflictScope{DepartmentID: deptBCS, Semester: "Semester 1"}

	booked := entry("44444444-4444-4444-4444-444444444441", deptBCS, &drRao, "DBMS", "Monday", "Semester 1", "09:00", "10:00")
	labSibling := entry("44444444-4444-4444-4444-444444444445", deptBCS, &drRao, "DBMS Lab", "Monday", "Semester 1", "11:00", "13:00")
	inactive := entry("44444444-4444-4444-4444-444444444442", deptBCOM, &drRao, "OS", "Monday", "Semester 1", "09:00", "10:00")
	otherDeptActive := entry("44444444-4444-4444-4444-444444444443", deptBCOM, &drRao, "OS", "Monday", "Semester 3", "09:30", "10:30")
	breakRow := entry("44444444-4444-4444-4444-444444444444", deptBCS, nil, "Recess", "Monday", "Semester 1", "09:00", "10:00")

	lectureQ := func(start, end string) ConflictQuery {
		return ConflictQuery{FacultyID: drRao, Day: "Monday", StartTime: start, EndTime: end, Scope: scope}
	}
	labQ := func(subject, start, end string) ConflictQuery {
		return ConflictQuery{FacultyID: drRao, Day: "Monday", StartTime: start, EndTime: end, Subject: subject, IsLab: true, Scope: scope}
	}

	tests := []struct {
		name string
		rows []m.TimetableEntryModel
		q    ConflictQuery
		want int
	}{
		{"same_dept_active_blocks_lecture", []m.TimetableEntryModel{booked}, lectureQ("09:00", "10:00"), 1},
		// grup lab identik (dept, semester, day, slot, subject sama) tidak saling blokir
		{"identical_lab_group_never_blocks", []m.TimetableEntryModel{labSibling}, labQ("DBMS Lab", "11:00", "13:00"), 0},
		// lab dengan subject berbeda di slot yang sama tetap kena blokir
		{"lab_different_subject_blocks", []m.TimetableEntryModel{booked}, labQ("DBMS Lab", "09:00", "10:00"), 1},
		// lab dengan subject sama tapi slot overlap (bukan identik) tetap kena blokir
		{"lab_overlapping_slot_blocks", []m.TimetableEntryModel{labSibling}, labQ("DBMS Lab", "12:00", "14:00"), 1},
		{"inactive_semester_never_blocks", []m.TimetableEntryModel{inactive}, lectureQ("09:00", "10:00"), 0},
		{"cross_dept_active_blocks", []m.TimetableEntryModel{otherDeptActive}, lectureQ("09:00", "10:00"), 1},
		{"cross_dept_active_blocks_even_lab", []m.TimetableEntryModel{otherDeptActive}, labQ("OS", "09:30", "10:30"), 1},
		{"breaks_never_block", []m.TimetableEntryModel{breakRow}, lectureQ("09:00", "10:00"), 0},
		{"mixed", []m.TimetableEntryModel{booked, inactive, otherDeptActive, breakRow}, lectureQ("09:00", "10:30"), 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := BlockingConflicts(test.rows, active, test.q)
			if len(got) != test.want {
				t.Errorf("BlockingConflicts len = %d, want %d (%v)", len(got), test.want, got)
			}
		})
	}
}

// Skenario end-to-end spek: BCS aktif Semester 1. Dr. Rao sudah mengajar DBMS
// Senin 09:00-10:00 di BCS.
func TestConflictScenarioEndToEnd(t *testing.T) {
	active := map[uuid.UUID]string{
		deptBCS:  "Semester 1",
		deptBCOM: "Semester 1",
	}
	existing := entry("55555555-5555-5555-5555-555555555551", deptBCS, &drRao, "DBMS", "Monday", "Semester 1", "09:00", "10:00")
	overlapping := []m.TimetableEntryModel{existing}

	// 1) Lecture BCOM Senin 09:30-10:30 untuk Dr. Rao → overlap & aktif → bentrok
	got := BlockingConflicts(overlapping, active, ConflictQuery{
		FacultyID: drRao, Day: "Monday", StartTime: "09:30", EndTime: "10:30",
		Scope: ConflictScope{DepartmentID: deptBCOM, Semester: "Semester 1"},
	})
	if len(got) != 1 {
		t.Fatalf("lecture lintas department seharusnya bentrok, dapat %d", len(got))
	}
	if got[0].TimetableEntryDepartmentID != deptBCS || got[0].TimetableEntrySemester != "Semester 1" {
		t.Errorf("konflik harus menunjuk BCS/Semester 1, dapat %v/%v",
			got[0].TimetableEntryDepartmentID, got[0].TimetableEntrySemester)
	}

	// 2) Lab "DBMS Lab" BCS slot yang sama tetap ditolak untuk Dr. Rao:
	//    pengecualian lab hanya berlaku untuk grup identik termasuk subject,
	//    bukan sembarang overlap di department sendiri.
	gotLab := BlockingConflicts(overlapping, active, ConflictQuery{
		FacultyID: drRao, Day: "Monday", StartTime: "09:00", EndTime: "10:00",
		Subject: "DBMS Lab", IsLab: true,
		Scope: ConflictScope{DepartmentID: deptBCS, Semester: "Semester 1"},
	})
	if len(gotLab) != 1 {
		t.Errorf("lab dengan subject berbeda harus bentrok dengan lecture lama, dapat %d", len(gotLab))
	}

	// 3) Pengajar kedua grup lab identik tidak saling blokir
	labRow := entry("55555555-5555-5555-5555-555555555552", deptBCS, &drRao, "DBMS Lab", "Monday", "Semester 1", "14:00", "16:00")
	gotSibling := BlockingConflicts([]m.TimetableEntryModel{labRow}, active, ConflictQuery{
		FacultyID: drShah, Day: "Monday", StartTime: "14:00", EndTime: "16:00",
		Subject: "DBMS Lab", IsLab: true,
		Scope: ConflictScope{DepartmentID: deptBCS, Semester: "Semester 1"},
	})
	if len(gotSibling) != 0 {
		t.Errorf("anggota grup lab identik tidak boleh saling blokir, dapat %d", len(gotSibling))
	}

	// 4) Jika BCS menonaktifkan Semester 1, booking lama tidak memblokir lagi
	active[deptBCS] = "Semester 2"
	got = BlockingConflicts(overlapping, active, ConflictQuery{
		FacultyID: drRao, Day: "Monday", StartTime: "09:30", EndTime: "10:30",
		Scope: ConflictScope{DepartmentID: deptBCOM, Semester: "Semester 1"},
	})
	if len(got) != 0 {
		t.Errorf("setelah switch active semester, entry lama tidak boleh memblokir, dapat %d", len(got))
	}
}
