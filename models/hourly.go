package models

// HourlyProfile maps an operational hour label ("07:00") to a
// non-negative count (customers or staff, depending on context).
type HourlyProfile map[string]int

// Recommendation statuses for one operational hour.
const (
	StatusUnderstaffed = "understaffed"
	StatusOverstaffed  = "overstaffed"
	StatusAdequate     = "adequate"
)

// Recommendation classifies one operational hour by comparing rostered
// coverage against the required headcount. Deficit is set only when
// understaffed, Excess only when overstaffed.
type Recommendation struct {
	Hour     string `json:"hour"`
	Demand   int    `json:"demand"`
	Coverage int    `json:"coverage"`
	Required int    `json:"required"`
	Status   string `json:"status"`
	Deficit  int    `json:"deficit,omitempty"`
	Excess   int    `json:"excess,omitempty"`
}

// DayAnalysis is the full demand-vs-roster comparison for one day.
type DayAnalysis struct {
	Day               string           `json:"day"`
	TotalCustomers    int              `json:"total_customers"`
	Hours             []string         `json:"hours"`
	Demand            HourlyProfile    `json:"demand"`
	Coverage          HourlyProfile    `json:"coverage"`
	Recommendations   []Recommendation `json:"recommendations"`
	TotalStaffHours   int              `json:"total_staff_hours"`
	UnderstaffedHours int              `json:"understaffed_hours"`
	EfficiencyRatio   float64          `json:"efficiency_ratio"`
}
