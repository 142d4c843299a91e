// file: internals/features/college/timetable/service/intent.go
package service

import (
	"strings"

	"campusschedule_backend/internals/constants"
)

// EntryIntent adalah tagged variant hasil klasifikasi satu submission.
// Diputuskan SEKALI di boundary validator lalu dibawa eksplisit; tidak ada
// re-derive dari teks subject di titik lain.
type EntryIntent int

const (
	IntentLecture EntryIntent = iota
	IntentLab
	IntentBreak
)

func (i EntryIntent) String() string {
	switch i {
	case IntentLab:
		return "lab"
	case IntentBreak:
		return "break"
	default:
		return "lecture"
	}
}

// IsBreakSubject: substring match case-insensitive terhadap kata kunci
// recess/lunch/break/interval.
func IsBreakSubject(subject string) bool {
	lower := strings.ToLower(subject)
	for _, kw := range constants.BreakKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ClassifyIntent: subject break selalu menang atas mode lab.
func ClassifyIntent(subject string, labMode bool) EntryIntent {
	if IsBreakSubject(subject) {
		return IntentBreak
	}
	if labMode {
		return IntentLab
	}
	return IntentLecture
}
