// file: internals/features/college/timetable/service/overlap.go
package service

import "time"

// Jam slot disimpan sebagai string "HH:MM" zero-padded (24 jam), sehingga
// urutan leksikal == urutan kronologis dan perbandingan overlap bisa dipakai
// apa adanya baik di SQL maupun di Go.
const clockLayout = "15:04"

// Overlaps memutuskan apakah dua rentang half-open [aStart,aEnd) dan
// [bStart,bEnd) pada hari yang sama beririsan. Endpoint yang bersentuhan
// (10:00–11:00 vs 11:00–12:00) TIDAK dianggap bentrok.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidClock memeriksa format "HH:MM" 24 jam.
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(clockLayout, s)
	return err == nil
}

// TimeLabel membentuk label baris matrix, mis. "09:00 - 10:00".
func TimeLabel(start, end string) string {
	return start + " - " + end
}
