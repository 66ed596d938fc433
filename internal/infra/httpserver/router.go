package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appanalysis "github.com/Pan-Binghong/family-constellation/internal/application/analysis"
	domain "github.com/Pan-Binghong/family-constellation/internal/domain/analysis"
	"github.com/Pan-Binghong/family-constellation/internal/middleware"
)

const (
	banner          = "后端服务已启动，使用 /analyze 进行分析。"
	analyzeFailure  = "分析失败："
	missingSnapshot = "没有提供截图数据"

	// canvas screenshots arrive inline as base64
	maxBodyBytes = 32 << 20
)

type Router struct {
	analysisSvc *appanalysis.Service
}

func NewRouter(analysisSvc *appanalysis.Service, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{analysisSvc: analysisSvc}
	mux := chi.NewRouter()

	mux.Use(chimw.RealIP)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type"},
		OptionsPassthrough: true,
	}))

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(banner))
	})
	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/healthz", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Options("/analyze", handlePreflight)
	mux.Post("/test-screenshot", r.wrap(r.handleTestScreenshot))
	mux.Options("/test-screenshot", handlePreflight)

	return mux
}

// statusError carries the status and JSON body a handler wants on failure.
type statusError struct {
	status int
	body   any
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var se *statusError
		if errors.As(err, &se) {
			writeJSON(w, se.status, se.body)
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("write response")
	}
}

func allowAnyOrigin(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// OPTIONS /analyze, /test-screenshot
func handlePreflight(w http.ResponseWriter, req *http.Request) {
	allowAnyOrigin(w)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", http.MethodPost)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /analyze
// Body: {"description": "<text>", "screenshot": "data:image/png;base64,...", "members": [...]}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) (err error) {
	allowAnyOrigin(w)
	middleware.IncrementAnalyses()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
		if err != nil {
			middleware.IncrementAnalysesFailed()
			err = &statusError{
				status: http.StatusInternalServerError,
				body:   domain.Result{Analysis: analyzeFailure + err.Error()},
				err:    err,
			}
		}
	}()

	var body domain.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&body); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	analysis, err := r.analysisSvc.Analyze(req.Context(), body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, domain.Result{Analysis: analysis})
	return nil
}

// POST /test-screenshot
// Body: {"screenshot": "data:image/png;base64,..."}
func (r *Router) handleTestScreenshot(w http.ResponseWriter, req *http.Request) error {
	allowAnyOrigin(w)

	var body struct {
		Screenshot string `json:"screenshot"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&body); err != nil {
		return &statusError{
			status: http.StatusBadRequest,
			body:   map[string]string{"error": "invalid request body: " + err.Error()},
			err:    err,
		}
	}
	if body.Screenshot == "" {
		return &statusError{
			status: http.StatusBadRequest,
			body:   map[string]string{"error": missingSnapshot},
			err:    errors.New(missingSnapshot),
		}
	}

	probe := r.analysisSvc.ProbeScreenshot(body.Screenshot)
	middleware.RecordProbe(probe.Success)

	writeJSON(w, http.StatusOK, probe)
	return nil
}
