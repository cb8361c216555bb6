package models

// Shift is one staff shift as a half-open [Start, End) time-of-day range,
// both in canonical "HH:MM" form.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Roster maps each canonical day name to the shifts rostered on that day.
// Shifts within a day are unordered; days without staff may be absent.
type Roster map[string][]Shift

// Clone returns a deep copy of the roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for day, shifts := range r {
		out[day] = append([]Shift(nil), shifts...)
	}
	return out
}
