package timetable

import (
	"strconv"
	"strings"

	"euston-server/models"
)

// nonWorkingMarkers are roster cell values that mean "no shift". They are
// skipped silently rather than treated as parse errors.
var nonWorkingMarkers = map[string]struct{}{
	"":        {},
	"OFF":     {},
	"SPARE":   {},
	"RD":      {},
	"FD":      {},
	"Vacancy": {},
	"nan":     {},
}

// IsNonWorking reports whether a roster cell value marks a non-working
// entry.
func IsNonWorking(cell string) bool {
	_, ok := nonWorkingMarkers[strings.TrimSpace(cell)]
	return ok
}

// ParseTimeOfDay normalises a time-of-day string into "HH:MM" form.
// Accepted inputs: "14:30" (both sides numeric), compact "1430", and
// short compact "630" (left-padded to "06:30"). Compact strings with
// stray characters are reduced to their digits first. Non-working
// markers and anything else return false.
func ParseTimeOfDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if IsNonWorking(s) {
		return "", false
	}
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		if isDigits(parts[0]) && isDigits(parts[1]) {
			return s, true
		}
		return "", false
	}
	digits := s
	if !isDigits(digits) {
		var b strings.Builder
		for _, r := range s {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		digits = b.String()
	}
	switch len(digits) {
	case 4:
		return digits[:2] + ":" + digits[2:], true
	case 3:
		return "0" + digits[:1] + ":" + digits[1:], true
	}
	return "", false
}

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Malformed input yields 0.
func TimeToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// ParseShiftRange parses a roster cell like "0630-1430" or "15:00-23:00"
// into a Shift. Non-working markers and unparseable ranges return false.
func ParseShiftRange(cell string) (models.Shift, bool) {
	cell = strings.TrimSpace(cell)
	if IsNonWorking(cell) || !strings.Contains(cell, "-") {
		return models.Shift{}, false
	}
	parts := strings.SplitN(cell, "-", 2)
	start, okStart := ParseTimeOfDay(parts[0])
	end, okEnd := ParseTimeOfDay(parts[1])
	if !okStart || !okEnd {
		return models.Shift{}, false
	}
	return models.Shift{Start: start, End: end}, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
