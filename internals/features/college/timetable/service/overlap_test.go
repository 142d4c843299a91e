package service

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"touching_endpoints_no_conflict", "09:00", "10:00", "10:00", "11:00", false},
		{"touching_endpoints_reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"partial_overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"partial_overlap_reversed", "09:30", "10:30", "09:00", "10:00", true},
		{"identical_ranges", "09:00", "10:00", "09:00", "10:00", true},
		{"b_inside_a", "09:00", "12:00", "10:00", "11:00", true},
		{"a_inside_b", "10:00", "11:00", "09:00", "12:00", true},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"disjoint_reversed", "14:00", "15:00", "09:00", "10:00", false},
		{"afternoon_vs_morning_24h", "13:00", "14:00", "09:00", "13:30", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Overlaps(test.aStart, test.aEnd, test.bStart, test.bEnd)
			if got != test.want {
				t.Errorf("Overlaps(%s,%s,%s,%s) = %v, want %v",
					test.aStart, test.aEnd, test.bStart, test.bEnd, got, test.want)
			}
			// simetris
			sym := Overlaps(test.bStart, test.bEnd, test.aStart, test.aEnd)
			if sym != got {
				t.Errorf("Overlaps tidak simetris untuk %s-%s vs %s-%s",
					test.aStart, test.aEnd, test.bStart, test.bEnd)
			}
		})
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "09:05", "13:30", "23:59"}
	for _, s := range valid {
		if !ValidClock(s) {
			t.Errorf("ValidClock(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "9:00", "24:00", "12:60", "09.30", "09:00:00", "sembilan"}
	for _, s := range invalid {
		if ValidClock(s) {
			t.Errorf("ValidClock(%q) = true, want false", s)
		}
	}
}

func TestTimeLabel(t *testing.T) {
	if got := TimeLabel("09:00", "10:00"); got != "09:00 - 10:00" {
		t.Errorf("TimeLabel = %q", got)
	}
}
