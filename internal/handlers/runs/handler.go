package runs

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codebench-2025.net/internal/core/ports/primary"
	"gitlab.com/codebench-2025.net/internal/core/ports/secondary"
	"gitlab.com/codebench-2025.net/internal/core/services/execute"
	runsvc "gitlab.com/codebench-2025.net/internal/core/services/runs"
	"gitlab.com/codebench-2025.net/internal/domain"
	"gitlab.com/codebench-2025.net/internal/handlers/response"
)

// RunHandler handles execution, comparison and translation API requests
type RunHandler struct {
	python     execute.Executor
	c          execute.Executor
	comparator execute.IComparisonService
	runService runsvc.IRunService
	translator secondary.Translator
	logger     primary.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(
	python execute.Executor,
	c execute.Executor,
	comparator execute.IComparisonService,
	runService runsvc.IRunService,
	translator secondary.Translator,
	logger primary.Logger,
) *RunHandler {
	return &RunHandler{
		python:     python,
		c:          c,
		comparator: comparator,
		runService: runService,
		translator: translator,
		logger:     logger,
	}
}

// RegisterRoutes registers the API routes for RunHandler. router is expected
// to be the authenticated /api subrouter.
func (h *RunHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/runs/python", h.ExecutePython).Methods("POST")
	router.HandleFunc("/runs/c", h.ExecuteC).Methods("POST")
	router.HandleFunc("/runs", h.ListRuns).Methods("GET")
	router.HandleFunc("/compare", h.Compare).Methods("POST")
	router.HandleFunc("/comparisons", h.EnqueueComparison).Methods("POST")
	router.HandleFunc("/comparisons/{runId}", h.GetComparison).Methods("GET")
	router.HandleFunc("/translate", h.Translate).Methods("POST")
}

// ExecutePython handles synchronous Python execution requests
func (h *RunHandler) ExecutePython(w http.ResponseWriter, r *http.Request) {
	h.executeWith(w, r, h.python, domain.RunKindPython)
}

// ExecuteC handles synchronous C compile-and-run requests
func (h *RunHandler) ExecuteC(w http.ResponseWriter, r *http.Request) {
	h.executeWith(w, r, h.c, domain.RunKindC)
}

func (h *RunHandler) executeWith(w http.ResponseWriter, r *http.Request, executor execute.Executor, kind domain.RunKind) {
	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result := executor.Execute(r.Context(), req.Code)
	h.recordExecution(r, kind, req.Code, result)

	response.WriteSuccess(w, result)
}

// Compare handles synchronous comparison requests
func (h *RunHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result := h.comparator.Compare(r.Context(), req.PythonCode, req.CCode)

	now := time.Now()
	run := &domain.Run{
		ID:           uuid.New(),
		Kind:         domain.RunKindComparison,
		Status:       domain.RunStatusCompleted,
		PythonSource: req.PythonCode,
		CSource:      req.CCode,
		Comparison:   result,
		CreatedAt:    now,
		CompletedAt:  &now,
	}
	// History is best-effort, the comparison result is already in hand
	if err := h.runService.RecordRun(r.Context(), run); err != nil {
		h.logger.Warn("Failed to record comparison run", "error", err)
	}

	response.WriteSuccess(w, result)
}

// EnqueueComparison queues a comparison run for the bench engine
func (h *RunHandler) EnqueueComparison(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	runID, err := h.runService.EnqueueComparison(r.Context(), req.PythonCode, req.CCode, nil)
	if err != nil {
		h.logger.Error("Failed to enqueue comparison", "error", err)
		http.Error(w, "Failed to enqueue comparison", http.StatusBadRequest)
		return
	}

	response.WriteJSON(w, http.StatusAccepted, EnqueueComparisonResponse{RunID: runID})
}

// GetComparison handles run retrieval requests
func (h *RunHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runIDStr := vars["runId"]

	runID, err := uuid.Parse(runIDStr)
	if err != nil {
		h.logger.Error("Invalid run ID", "id", runIDStr)
		http.Error(w, "Invalid run ID", http.StatusBadRequest)
		return
	}

	run, err := h.runService.GetRun(r.Context(), runID)
	if err != nil {
		h.logger.Error("Failed to get run", "error", err)
		http.Error(w, "Failed to get run", http.StatusInternalServerError)
		return
	}

	if run == nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	response.WriteSuccess(w, run)
}

// ListRuns handles run history requests
func (h *RunHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.runService.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list runs", "error", err)
		http.Error(w, "Failed to list runs", http.StatusInternalServerError)
		return
	}

	response.WriteSuccess(w, map[string][]*domain.Run{"runs": list})
}

// Translate handles Python-to-C translation requests
func (h *RunHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var translation domain.Translation
	if req.IncludeExplanation {
		translation = h.translator.TranslateWithExplanation(r.Context(), req.PythonCode)
	} else {
		translation = h.translator.Translate(r.Context(), req.PythonCode)
	}

	response.WriteSuccess(w, translation)
}

func (h *RunHandler) recordExecution(r *http.Request, kind domain.RunKind, code string, result domain.ExecutionResult) {
	now := time.Now()
	run := &domain.Run{
		ID:          uuid.New(),
		Kind:        kind,
		Status:      domain.RunStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
		Result:      &result,
	}
	if kind == domain.RunKindPython {
		run.PythonSource = code
	} else {
		run.CSource = code
	}

	if err := h.runService.RecordRun(r.Context(), run); err != nil {
		h.logger.Warn("Failed to record run", "kind", kind, "error", err)
	}
}
