package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/model"
	"go-log-analyzer/internal/pipeline"
	"go-log-analyzer/internal/report"
	"go-log-analyzer/internal/store"
)

var (
	logger  = zap.NewNop()
	outputs = report.NewOutputManager("./info")
)

// Init wires the shared logger and the base output directory into the
// handlers. Call once at startup.
func Init(l *zap.Logger, outputDir string) {
	logger = l
	outputs = report.NewOutputManager(outputDir)
}

// CreateRun starts a new log analysis run
// @Summary Create a new analysis run
// @Description Create and start a log analysis run over a directory of log files
// @Tags runs
// @Accept json
// @Produce json
// @Param run body model.AnalysisRequest true "Run configuration"
// @Success 200 {object} map[string]interface{} "Run created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func CreateRun(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if req.LogDir == "" {
		http.Error(w, "logDir is required", http.StatusBadRequest)
		return
	}

	cfg := configFromRequest(req)
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, req); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	go executeRun(runID, cfg)

	resp := map[string]interface{}{
		"message":   "Analysis run created successfully!",
		"runID":     runID,
		"status":    model.RunPending,
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// executeRun drives one pipeline run to completion and persists the outcome.
func executeRun(runID string, cfg config.Config) {
	log := logger.With(zap.String("run_id", runID))
	store.UpdateRunStatus(runID, model.RunRunning)

	res, err := pipeline.New(cfg, log).Run()
	if err != nil {
		log.Error("run failed", zap.Error(err))
		store.SaveRunError(runID, err)
		store.UpdateRunStatus(runID, model.RunFailed)
		return
	}

	rep := report.Build(res, cfg)
	data, err := json.Marshal(rep)
	if err != nil {
		store.SaveRunError(runID, err)
		store.UpdateRunStatus(runID, model.RunFailed)
		return
	}
	if err := store.SaveReport(runID, data); err != nil {
		log.Error("could not persist report", zap.Error(err))
		store.SaveRunError(runID, err)
	}

	if path, err := outputs.RunOutputPath(runID, "report.json"); err == nil {
		if err := rep.Save(path); err != nil {
			log.Warn("could not write report file", zap.Error(err))
		}
	}

	store.UpdateRunStatus(runID, model.RunCompleted)
	log.Info("run completed", zap.Int("lines_total", rep.LinesTotal))
}

// configFromRequest layers the request over the server defaults.
func configFromRequest(req model.AnalysisRequest) config.Config {
	cfg := config.Default()
	cfg.LogDir = req.LogDir
	if len(req.Patterns) > 0 {
		cfg.Patterns = req.Patterns
	}
	if req.ChunkSize > 0 {
		cfg.ChunkSize = req.ChunkSize
	}
	if req.Workers > 0 {
		cfg.Workers = req.Workers
	}
	if req.Monitor != nil {
		cfg.Monitor = *req.Monitor
	}
	if req.BucketBy != "" {
		cfg.BucketBy = req.BucketBy
	}
	if req.TopN > 0 {
		cfg.TopN = req.TopN
	}
	return cfg
}

// ListRuns retrieves all analysis runs
// @Summary List all runs
// @Description Get a list of all analysis runs with their current status
// @Tags runs
// @Accept json
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun retrieves a specific analysis run
// @Summary Get run
// @Description Retrieve details of a specific analysis run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunReport retrieves the report of a completed run
// @Summary Get run report
// @Description Retrieve the aggregated report for a completed analysis run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run report"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /runs/{id}/report [get]
func GetRunReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/report")
	if !ok {
		return
	}

	rep, err := store.GetReport(runID)
	if err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"report": rep,
	})
}

// GetRunErrors retrieves errors for a run
// @Summary Get run errors
// @Description Retrieve all errors recorded during an analysis run
// @Tags runs
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 400 {object} map[string]interface{} "Invalid run ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"errors": errs,
		"count":  len(errs),
	})
}

// runIDFromPath extracts the run ID from /api/v1/runs/{id}{suffix}, writing
// the error response itself when the path is malformed.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/runs/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
