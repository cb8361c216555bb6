package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"euston-server/metrics"
	"euston-server/server/handlers"
)

// AnalysisHandler is the route surface the router binds. The concrete
// handler satisfies it; tests swap in stubs.
type AnalysisHandler interface {
	TrainModel(w http.ResponseWriter, r *http.Request)
	UploadRoster(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	DayAnalysis(w http.ResponseWriter, r *http.Request)
	ExportDayAnalysis(w http.ResponseWriter, r *http.Request)
	ChartDayAnalysis(w http.ResponseWriter, r *http.Request)
	AnalyzeHolidays(w http.ResponseWriter, r *http.Request)
	PredictHoliday(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

var _ AnalysisHandler = (*handlers.AnalysisHandler)(nil)

type Router struct {
	analysisHandler AnalysisHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(analysisHandler AnalysisHandler, router *mux.Router) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/model/train", r.analysisHandler.TrainModel).Methods("POST")
	r.router.HandleFunc("/v1/roster", r.analysisHandler.UploadRoster).Methods("POST")
	r.router.HandleFunc("/v1/session", r.analysisHandler.GetSession).Methods("GET")

	// expects ?day={Sunday..Saturday}
	r.router.HandleFunc("/v1/analysis/day", r.analysisHandler.DayAnalysis).Methods("GET")
	r.router.HandleFunc("/v1/analysis/day/export", r.analysisHandler.ExportDayAnalysis).Methods("GET")
	r.router.HandleFunc("/v1/analysis/day/chart", r.analysisHandler.ChartDayAnalysis).Methods("GET")

	r.router.HandleFunc("/v1/holidays/analyze", r.analysisHandler.AnalyzeHolidays).Methods("POST")
	// expects ?date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/holidays/predict", r.analysisHandler.PredictHoliday).Methods("POST")

	r.router.HandleFunc("/ping", r.analysisHandler.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})).Methods("GET")
}
