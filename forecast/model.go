package forecast

import (
	"fmt"
	"math"
	"math/rand"

	"euston-server/models"
	"euston-server/timetable"
)

// DefaultWeeklyPredictions backs the session before any model has been
// trained, and survives failed training runs untouched.
var DefaultWeeklyPredictions = models.WeeklyPrediction{
	"Sunday": 198, "Monday": 302, "Tuesday": 271, "Wednesday": 271,
	"Thursday": 301, "Friday": 289, "Saturday": 280,
}

const heldOutFraction = 0.2

// indicatorDays are the one-hot day-of-week columns. Sunday, the first
// canonical day, is the dropped baseline: its rows carry all-zero
// indicators.
var indicatorDays = timetable.DaysOfWeek[1:]

// featureRow encodes (year, day-of-week) as the regressor's input vector.
func featureRow(year int, day string) []float64 {
	row := make([]float64, 1+len(indicatorDays))
	row[0] = float64(year)
	for i, d := range indicatorDays {
		if d == day {
			row[i+1] = 1
		}
	}
	return row
}

// TrainWeeklyModel fits the bagged-tree regressor on an outlier-filtered
// daily series and produces growth-adjusted per-day predictions for the
// target year, plus held-out accuracy metrics.
//
// The metrics come from a second model trained on an 80/20 split with the
// same seed; that model is discarded and never used for predictions.
// An empty or zero-variance training set is a training failure: the
// caller keeps whatever predictions it already had.
func TrainWeeklyModel(filtered []models.DailyCount, targetYear int, growthFactor float64) (models.WeeklyPrediction, *models.ModelMetrics, error) {
	if len(filtered) == 0 {
		return nil, nil, fmt.Errorf("training set is empty after filtering")
	}

	X := make([][]float64, len(filtered))
	y := make([]float64, len(filtered))
	for i, d := range filtered {
		X[i] = featureRow(d.Year, d.DayOfWeek)
		y[i] = float64(d.Bookings)
	}
	if constantTarget(y, allIndices(len(y))) {
		return nil, nil, fmt.Errorf("training set is degenerate: zero-variance target")
	}

	model := fitForest(X, y, rand.New(rand.NewSource(randomSeed)))

	metrics := evaluateHeldOut(X, y)
	metrics.GrowthFactor = growthFactor

	predictions := make(models.WeeklyPrediction, len(timetable.DaysOfWeek))
	for _, day := range timetable.DaysOfWeek {
		raw := model.predict(featureRow(targetYear, day)) * growthFactor
		p := int(math.Round(raw))
		if p < 0 {
			p = 0
		}
		predictions[day] = p
	}
	return predictions, metrics, nil
}

// evaluateHeldOut reports MAE/RMSE/MAPE of a fresh model trained on 80%
// of the rows and scored on the remaining 20%. Rows with a zero actual
// are skipped in the MAPE mean rather than dividing by zero.
func evaluateHeldOut(X [][]float64, y []float64) *models.ModelMetrics {
	rng := rand.New(rand.NewSource(randomSeed))
	trainIdx, testIdx := trainTestSplit(len(y), heldOutFraction, rng)
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return &models.ModelMetrics{}
	}

	trainX := make([][]float64, len(trainIdx))
	trainY := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainX[i] = X[idx]
		trainY[i] = y[idx]
	}
	heldOut := fitForest(trainX, trainY, rand.New(rand.NewSource(randomSeed)))

	var absSum, sqSum, pctSum float64
	pctN := 0
	for _, idx := range testIdx {
		pred := heldOut.predict(X[idx])
		diff := y[idx] - pred
		absSum += math.Abs(diff)
		sqSum += diff * diff
		if y[idx] != 0 {
			pctSum += math.Abs(diff / y[idx])
			pctN++
		}
	}
	n := float64(len(testIdx))
	m := &models.ModelMetrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
	}
	if pctN > 0 {
		m.MAPE = pctSum / float64(pctN) * 100
	}
	return m
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
