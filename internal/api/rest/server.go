package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nemanja-m/goscatter/internal/runs"
	"github.com/nemanja-m/goscatter/internal/shared/config"
	"github.com/nemanja-m/goscatter/internal/shared/logging"
	"github.com/nemanja-m/goscatter/registry"
)

const defaultListLimit = 10

type API struct {
	service *runs.Service
	logger  logging.Logger
}

func NewAPI(service *runs.Service, logger logging.Logger) *API {
	return &API{service: service, logger: logger}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/runs", a.submitRun)
	mux.HandleFunc("GET /api/runs", a.listRuns)
	mux.HandleFunc("GET /api/runs/{id}", a.getRun)
	mux.HandleFunc("GET /api/transforms", a.listTransforms)
	mux.HandleFunc("GET /healthz", a.healthz)
}

func (a *API) submitRun(w http.ResponseWriter, r *http.Request) {
	var req SubmitRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validateSubmitRunRequest(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	run, err := a.service.Submit(req.ToSubmission())
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "submission rejected", err.Error())
		return
	}

	a.respondJSON(w, http.StatusAccepted, toSubmitRunResponse(run))
}

func (a *API) getRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid run ID", "expected UUID")
		return
	}

	run, err := a.service.Get(id)
	if err != nil {
		a.logger.Error("Failed to load run", "run_id", id.String(), "error", err)
		a.respondError(w, http.StatusInternalServerError, "failed to load run", err.Error())
		return
	}
	if run == nil {
		a.respondError(w, http.StatusNotFound, "run not found", "")
		return
	}

	a.respondJSON(w, http.StatusOK, toGetRunResponse(run))
}

func (a *API) listRuns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := runs.Filter{Limit: defaultListLimit}
	if statusStr := query.Get("status"); statusStr != "" {
		status := runs.Status(statusStr)
		filter.Status = &status
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	list, total, err := a.service.List(filter)
	if err != nil {
		a.logger.Error("Failed to list runs", "error", err)
		a.respondError(w, http.StatusInternalServerError, "failed to list runs", err.Error())
		return
	}

	summaries := make([]RunSummary, 0, len(list))
	for _, run := range list {
		summaries = append(summaries, toRunSummary(run))
	}

	var nextOffset *int
	if end := filter.Offset + len(summaries); end < total {
		nextOffset = &end
	}

	a.respondJSON(w, http.StatusOK, ListRunsResponse{
		Runs:       summaries,
		Total:      total,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		NextOffset: nextOffset,
	})
}

func (a *API) listTransforms(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, ListTransformsResponse{Transforms: registry.List()})
}

func (a *API) healthz(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validateSubmitRunRequest(req *SubmitRunRequest) error {
	if req.Transform == "" {
		return fmt.Errorf("transform is required")
	}
	if len(req.Samples) == 0 {
		return fmt.Errorf("at least one sample is required")
	}
	if req.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if req.TimeoutMillis < 0 {
		return fmt.Errorf("timeout_ms must not be negative")
	}
	return nil
}

func (a *API) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (a *API) respondError(w http.ResponseWriter, statusCode int, error string, message string) {
	a.respondJSON(w, statusCode, ErrorResponse{
		Error:   error,
		Message: message,
		Code:    statusCode,
	})
}

// NewServer wires the API, middleware, and prometheus endpoint into an
// http.Server ready for ListenAndServe.
func NewServer(cfg config.HTTPConfig, service *runs.Service, gatherer prometheus.Gatherer, logger logging.Logger) *http.Server {
	api := NewAPI(service, logger)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Access log outermost so recovered panics still show up as 500 lines.
	handler := api.withAccessLog(api.withRecovery(mux))

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
