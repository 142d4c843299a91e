package constants

// Hari perkuliahan (Senin–Sabtu, tanpa Minggu)
var WeekDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Label semester yang tersedia di sistem
var SemesterLabels = []string{
	"Semester 1",
	"Semester 2",
	"Semester 3",
	"Semester 4",
	"Semester 5",
	"Semester 6",
}

const DefaultActiveSemester = "Semester 1"

// Kata kunci subject yang dianggap break/recess (case-insensitive substring)
var BreakKeywords = []string{"recess", "lunch", "break", "interval"}

// Label faculty untuk baris break di snapshot arsip (legacy dari format lama)
const BreakFacultyLabel = "Break/Recess"

func IsValidDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

func IsValidSemester(label string) bool {
	for _, s := range SemesterLabels {
		if s == label {
			return true
		}
	}
	return false
}
