package models

// WeeklyPrediction maps each canonical day name (Sunday first) to a
// predicted daily customer total for the target year. Always carries
// exactly seven entries.
type WeeklyPrediction map[string]int

// Clone returns an independent copy so session state can be handed out
// without aliasing the stored map.
func (w WeeklyPrediction) Clone() WeeklyPrediction {
	out := make(WeeklyPrediction, len(w))
	for day, v := range w {
		out[day] = v
	}
	return out
}

// ModelMetrics describes the held-out accuracy of the trained regressor
// together with the growth factor applied to its predictions.
type ModelMetrics struct {
	MAE          float64 `json:"mae"`
	RMSE         float64 `json:"rmse"`
	MAPE         float64 `json:"mape"`
	GrowthFactor float64 `json:"growth_factor"`
}
