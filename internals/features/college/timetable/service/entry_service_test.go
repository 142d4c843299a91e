package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"campusschedule_backend/internals/constants"
	m "campusschedule_backend/internals/features/college/timetable/model"
)

func validLecture() Candidate {
	fid := drRao
	return Candidate{
		DepartmentID: deptBCS,
		Semester:     "Semester 1",
		Day:          "Monday",
		Subject:      "DBMS",
		StartTime:    "09:00",
		EndTime:      "10:00",
		FacultyID:    &fid,
	}
}

func TestValidateStructure(t *testing.T) {
	mutate := func(fn func(*Candidate)) Candidate {
		c := validLecture()
		fn(&c)
		return c
	}

	tests := []struct {
		name      string
		cand      Candidate
		wantField string // "" = valid
	}{
		{"valid_lecture", validLecture(), ""},
		{"empty_subject", mutate(func(c *Candidate) { c.Subject = "  " }), "subject"},
		{"bad_semester", mutate(func(c *Candidate) { c.Semester = "Trimester 1" }), "semester"},
		{"bad_start_format", mutate(func(c *Candidate) { c.StartTime = "9:00" }), "start_time"},
		{"bad_end_format", mutate(func(c *Candidate) { c.EndTime = "25:00" }), "end_time"},
		{"start_equals_end", mutate(func(c *Candidate) { c.EndTime = "09:00" }), "end_time"},
		{"start_after_end", mutate(func(c *Candidate) { c.StartTime = "11:00"; c.EndTime = "10:00" }), "end_time"},
		{"lecture_without_day", mutate(func(c *Candidate) { c.Day = "" }), "day"},
		{"unknown_day", mutate(func(c *Candidate) { c.Day = "Sunday" }), "day"},
		{"lecture_without_faculty", mutate(func(c *Candidate) { c.FacultyID = nil }), "faculty_id"},
		{"lecture_with_lab_roster", mutate(func(c *Candidate) { c.LabFacultyIDs = []uuid.UUID{drShah} }), "lab_faculty_ids"},
		{
			"lab_without_roster",
			mutate(func(c *Candidate) { c.LabMode = true; c.FacultyID = nil; c.Subject = "DBMS Lab" }),
			"lab_faculty_ids",
		},
		{
			"lab_with_single_faculty_set",
			mutate(func(c *Candidate) {
				c.LabMode = true
				c.Subject = "DBMS Lab"
				c.LabFacultyIDs = []uuid.UUID{drRao}
			}),
			"faculty_id",
		},
		{
			"valid_lab",
			mutate(func(c *Candidate) {
				c.LabMode = true
				c.Subject = "DBMS Lab"
				c.FacultyID = nil
				c.LabFacultyIDs = []uuid.UUID{drRao, drShah}
			}),
			"",
		},
		{
			"break_with_faculty_rejected",
			mutate(func(c *Candidate) { c.Subject = "Lunch Break" }),
			"faculty_id",
		},
		{
			"break_without_day_allowed",
			mutate(func(c *Candidate) { c.Subject = "Recess"; c.Day = ""; c.FacultyID = nil }),
			"",
		},
		{
			"break_with_day_allowed",
			mutate(func(c *Candidate) { c.Subject = "Recess"; c.FacultyID = nil }),
			"",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateStructure(test.cand)
			if test.wantField == "" {
				if err != nil {
					t.Errorf("kandidat valid ditolak: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("kandidat invalid lolos, harusnya gagal di field %q", test.wantField)
			}
			if err.Field != test.wantField {
				t.Errorf("gagal di field %q, want %q (%s)", err.Field, test.wantField, err.Message)
			}
		})
	}
}

func TestCandidateIntent(t *testing.T) {
	c := validLecture()
	if c.Intent() != IntentLecture {
		t.Errorf("Intent() = %v, want lecture", c.Intent())
	}
	c.LabMode = true
	if c.Intent() != IntentLab {
		t.Errorf("Intent() = %v, want lab", c.Intent())
	}
	c.Subject = "Tea Interval"
	if c.Intent() != IntentBreak {
		t.Errorf("Intent() = %v, want break (subject break menang atas mode lab)", c.Intent())
	}
}

func TestErrorMessages(t *testing.T) {
	dup := &DuplicateSlotError{
		DepartmentID: deptBCS,
		Semester:     "Semester 1",
		Day:          "Monday",
		StartTime:    "09:00",
		EndTime:      "10:00",
	}
	if dup.Error() == "" {
		t.Error("DuplicateSlotError.Error() kosong")
	}

	conflict := &ConflictError{
		FacultyID:   drRao,
		FacultyName: "Dr. Rao",
		Conflicts: []ConflictDescriptor{{
			DepartmentID:   deptBCS,
			DepartmentName: "BCS",
			Semester:       "Semester 1",
		}},
	}
	want := "CONFLICT: Dr. Rao sudah mengajar di BCS (Semester 1)"
	if conflict.Error() != want {
		t.Errorf("ConflictError.Error() = %q, want %q", conflict.Error(), want)
	}

	ferr := &FieldError{Field: "day", Message: "day wajib diisi"}
	if ferr.Error() != "day: day wajib diisi" {
		t.Errorf("FieldError.Error() = %q", ferr.Error())
	}
}

// Break "semua hari": sel yang sudah terisi (termasuk oleh lecture) dipakai
// ulang, tidak pernah di-overlay baris break kedua.
func TestPlanBreakDays(t *testing.T) {
	lecture := entry("77777777-7777-7777-7777-777777777771", deptBCS, &drRao, "DBMS", "Monday", "Semester 1", "10:00", "10:30")
	oldBreak := entry("77777777-7777-7777-7777-777777777772", deptBCS, nil, "Recess", "Tuesday", "Semester 1", "10:00", "10:30")

	tests := []struct {
		name       string
		existing   []m.TimetableEntryModel
		wantCreate []string
		wantReuse  []uuid.UUID
	}{
		{
			"all_cells_empty",
			nil,
			constants.WeekDays,
			nil,
		},
		{
			"lecture_occupies_monday",
			[]m.TimetableEntryModel{lecture},
			[]string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			[]uuid.UUID{lecture.TimetableEntryID},
		},
		{
			"resubmit_reuses_existing_break",
			[]m.TimetableEntryModel{lecture, oldBreak},
			[]string{"Wednesday", "Thursday", "Friday", "Saturday"},
			[]uuid.UUID{lecture.TimetableEntryID, oldBreak.TimetableEntryID},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			create, reuse := planBreakDays(constants.WeekDays, test.existing)
			if !reflect.DeepEqual(create, test.wantCreate) {
				t.Errorf("create = %v, want %v", create, test.wantCreate)
			}
			if !reflect.DeepEqual(reuse, test.wantReuse) {
				t.Errorf("reuse = %v, want %v", reuse, test.wantReuse)
			}
		})
	}
}

// Dua baris di sel yang sama (anomali lab/stacked): penghuni pertama yang
// dipakai ulang, deterministik terhadap urutan input.
func TestPlanBreakDaysFirstOccupantWins(t *testing.T) {
	first := entry("77777777-7777-7777-7777-777777777773", deptBCS, &drRao, "DBMS Lab", "Monday", "Semester 1", "11:00", "13:00")
	second := entry("77777777-7777-7777-7777-777777777774", deptBCS, &drShah, "DBMS Lab", "Monday", "Semester 1", "11:00", "13:00")

	_, reuse := planBreakDays([]string{"Monday"}, []m.TimetableEntryModel{first, second})
	if len(reuse) != 1 || reuse[0] != first.TimetableEntryID {
		t.Errorf("reuse = %v, want [%s]", reuse, first.TimetableEntryID)
	}
}
