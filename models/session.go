package models

import "time"

// SessionState is the per-session analysis context owned by the session
// layer: the current weekly predictions, the metrics of the model that
// produced them, and the uploaded roster. The core never reads or writes
// this directly.
type SessionState struct {
	ID                string           `json:"id"`
	WeeklyPredictions WeeklyPrediction `json:"weekly_predictions"`
	Metrics           *ModelMetrics    `json:"metrics,omitempty"`
	Roster            Roster           `json:"roster,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
