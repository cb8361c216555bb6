package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"euston-server/models"
	services "euston-server/service"
	"euston-server/timetable"
	"euston-server/util"
)

const (
	DAY_QUERY_ARG       = "day"
	DATE_QUERY_ARG      = "date"
	CUSTOMERS_QUERY_ARG = "customers"

	DATASETS_FORM_FIELD = "datasets"
	ROSTER_FORM_FIELD   = "roster"

	maxUploadBytes = 64 << 20
)

// AnalysisHandler serves the training, holiday and staffing endpoints.
type AnalysisHandler struct {
	analysis *services.AnalysisService
	session  *services.SessionService
}

func NewAnalysisHandler(analysis *services.AnalysisService, session *services.SessionService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, session: session}
}

// TrainModel handles POST /v1/model/train. The request carries one or
// more historical dataset CSVs named like "2023 Database.csv" in the
// "datasets" multipart field. On success the session's predictions are
// replaced; on failure the previous predictions stay in place.
func (h *AnalysisHandler) TrainModel(w http.ResponseWriter, r *http.Request) {
	records, ok := h.parseDatasets(w, r)
	if !ok {
		return
	}

	predictions, metrics, err := h.analysis.TrainDemandModel(records)
	if err != nil {
		log.WithError(err).Error("[AnalysisHandler] Training failed")
		http.Error(w, "Training failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	h.session.SetPredictions(predictions, metrics)

	writeJSON(w, map[string]interface{}{
		"weekly_predictions": predictions,
		"metrics":            metrics,
	})
}

// UploadRoster handles POST /v1/roster with the roster CSV in the
// "roster" multipart field.
func (h *AnalysisHandler) UploadRoster(w http.ResponseWriter, r *http.Request) {
	file, ok := h.parseFormFile(w, r, ROSTER_FORM_FIELD)
	if !ok {
		return
	}
	defer file.Close()

	roster, err := util.ReadRoster(file)
	if err != nil {
		http.Error(w, "Invalid roster file: "+err.Error(), http.StatusBadRequest)
		return
	}
	h.session.SetRoster(roster)

	shifts := 0
	for _, dayShifts := range roster {
		shifts += len(dayShifts)
	}
	writeJSON(w, map[string]interface{}{"days": len(roster), "shifts": shifts})
}

// GetSession handles GET /v1/session, returning the current predictions,
// metrics and roster.
func (h *AnalysisHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state := h.session.Current()
	writeJSON(w, state)
}

// DayAnalysis handles GET /v1/analysis/day?day=Monday.
func (h *AnalysisHandler) DayAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.runDayAnalysis(w, r)
	if !ok {
		return
	}
	writeJSON(w, analysis)
}

// ExportDayAnalysis handles GET /v1/analysis/day/export?day=Monday,
// returning the recommendation table as CSV.
func (h *AnalysisHandler) ExportDayAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.runDayAnalysis(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_analysis.csv", analysis.Day))

	cw := csv.NewWriter(w)
	cw.Write([]string{"hour", "demand", "coverage", "required", "status", "deficit", "excess"})
	for _, rec := range analysis.Recommendations {
		cw.Write([]string{
			rec.Hour,
			strconv.Itoa(rec.Demand),
			strconv.Itoa(rec.Coverage),
			strconv.Itoa(rec.Required),
			rec.Status,
			strconv.Itoa(rec.Deficit),
			strconv.Itoa(rec.Excess),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.WithError(err).Error("[AnalysisHandler] Error writing CSV export")
	}
}

// ChartDayAnalysis handles GET /v1/analysis/day/chart?day=Monday,
// rendering the demand/coverage chart as HTML.
func (h *AnalysisHandler) ChartDayAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := h.runDayAnalysis(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderDayAnalysisChart(w, analysis); err != nil {
		log.WithError(err).Error("[AnalysisHandler] Error rendering chart")
	}
}

// AnalyzeHolidays handles POST /v1/holidays/analyze with dataset CSVs.
func (h *AnalysisHandler) AnalyzeHolidays(w http.ResponseWriter, r *http.Request) {
	records, ok := h.parseDatasets(w, r)
	if !ok {
		return
	}

	analyses, normals, err := h.analysis.AnalyzeHolidays(records)
	if err != nil {
		http.Error(w, "Holiday analysis failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, map[string]interface{}{
		"analyses":        analyses,
		"normal_averages": normals,
	})
}

// PredictHoliday handles POST /v1/holidays/predict?date=2024-12-25 with
// dataset CSVs.
func (h *AnalysisHandler) PredictHoliday(w http.ResponseWriter, r *http.Request) {
	date, err := parseArgDate(r.URL.Query(), DATE_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	records, ok := h.parseDatasets(w, r)
	if !ok {
		return
	}

	prediction, err := h.analysis.PredictHoliday(records, date)
	if err != nil {
		http.Error(w, "Holiday prediction failed: "+err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, prediction)
}

// Ping handles GET /ping.
func (h *AnalysisHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// runDayAnalysis parses the day argument, pulls the session state and
// runs the staffing pipeline. An optional "customers" argument overrides
// the session's predicted total for what-if runs. Errors are already
// written on !ok.
func (h *AnalysisHandler) runDayAnalysis(w http.ResponseWriter, r *http.Request) (*models.DayAnalysis, bool) {
	day, err := parseArgDay(r.URL.Query())
	if err != nil {
		http.Error(w, "Invalid argument "+DAY_QUERY_ARG, http.StatusBadRequest)
		return nil, false
	}

	roster, err := h.session.Roster()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return nil, false
	}

	state := h.session.Current()
	predictions := state.WeeklyPredictions
	if raw := r.URL.Query().Get(CUSTOMERS_QUERY_ARG); raw != "" {
		customers, err := strconv.Atoi(raw)
		if err != nil || customers < 0 {
			http.Error(w, "Invalid argument "+CUSTOMERS_QUERY_ARG, http.StatusBadRequest)
			return nil, false
		}
		predictions = predictions.Clone()
		predictions[day] = customers
	}

	analysis, err := h.analysis.DayAnalysis(predictions, roster, day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	}
	return analysis, true
}

// parseDatasets collects booking records from every uploaded dataset
// file, tagging each with the year in its filename.
func (h *AnalysisHandler) parseDatasets(w http.ResponseWriter, r *http.Request) ([]models.BookingRecord, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return nil, false
	}
	files := r.MultipartForm.File[DATASETS_FORM_FIELD]
	if len(files) == 0 {
		http.Error(w, "No dataset files in field "+DATASETS_FORM_FIELD, http.StatusBadRequest)
		return nil, false
	}

	var records []models.BookingRecord
	for _, fh := range files {
		year, err := util.YearFromDatasetName(fh.Filename)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		batch, err := readDatasetFile(fh, year)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid dataset %s: %v", fh.Filename, err), http.StatusBadRequest)
			return nil, false
		}
		records = append(records, batch...)
	}
	return records, true
}

func (h *AnalysisHandler) parseFormFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return nil, false
	}
	file, _, err := r.FormFile(field)
	if err != nil {
		http.Error(w, "Missing file in field "+field, http.StatusBadRequest)
		return nil, false
	}
	return file, true
}

func readDatasetFile(fh *multipart.FileHeader, year int) ([]models.BookingRecord, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return util.ReadBookingDataset(f, year)
}

func parseArgDay(vals url.Values) (string, error) {
	day := vals.Get(DAY_QUERY_ARG)
	if !timetable.IsCanonicalDay(day) {
		return "", fmt.Errorf("unknown day %q", day)
	}
	return day, nil
}

func parseArgDate(vals url.Values, name string) (time.Time, error) {
	return time.Parse("2006-01-02", vals.Get(name))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("[AnalysisHandler] Error encoding response")
	}
}
