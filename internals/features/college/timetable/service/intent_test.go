package service

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		labMode bool
		want    EntryIntent
	}{
		{"plain_lecture", "DBMS", false, IntentLecture},
		{"lab_mode", "DBMS Lab", true, IntentLab},
		{"recess_lowercase", "recess", false, IntentBreak},
		{"lunch_substring", "Lunch Break", false, IntentBreak},
		{"interval_mixed_case", "Short INTERVAL", false, IntentBreak},
		{"break_wins_over_lab_mode", "Tea Break", true, IntentBreak},
		{"breakage_is_still_break_substring", "Breakdown Analysis", false, IntentBreak},
		{"os_is_lecture", "Operating Systems", false, IntentLecture},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClassifyIntent(test.subject, test.labMode)
			if got != test.want {
				t.Errorf("ClassifyIntent(%q, %v) = %v, want %v",
					test.subject, test.labMode, got, test.want)
			}
		})
	}
}

func TestIntentString(t *testing.T) {
	if IntentLecture.String() != "lecture" || IntentLab.String() != "lab" || IntentBreak.String() != "break" {
		t.Errorf("String() tidak sesuai: %s %s %s", IntentLecture, IntentLab, IntentBreak)
	}
}
