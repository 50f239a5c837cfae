package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Arnab-iitkgp/CargoRoute/internal/api/dto"
	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/metrics"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
	"github.com/Arnab-iitkgp/CargoRoute/internal/services"
)

const solvedMessage = "VRP solved and saved"

// maxBodyBytes caps solve request bodies.
const maxBodyBytes = 4 << 20

// JobHandler solves VRP instances and serves stored jobs.
type JobHandler struct {
	Solver    *services.GeneticSolver
	NewMetric ports.MetricFactory
	Cache     ports.MatrixCache
	Repo      ports.JobRepository
	// DefaultMetric applies when a request names none.
	DefaultMetric string
	// Slots bounds concurrent solves; a full channel rejects with 503.
	// Nil means unbounded.
	Slots chan struct{}
}

// NewJobHandler builds a handler allowing maxConcurrent solves at once.
func NewJobHandler(
	solver *services.GeneticSolver,
	newMetric ports.MetricFactory,
	cache ports.MatrixCache,
	repo ports.JobRepository,
	defaultMetric string,
	maxConcurrent int,
) *JobHandler {
	h := &JobHandler{
		Solver:        solver,
		NewMetric:     newMetric,
		Cache:         cache,
		Repo:          repo,
		DefaultMetric: defaultMetric,
	}
	if maxConcurrent > 0 {
		h.Slots = make(chan struct{}, maxConcurrent)
	}
	return h
}

// Solve validates an instance, runs the genetic search and persists the job.
func (h *JobHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		metrics.Solves.WithLabelValues("invalid").Inc()
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		metrics.Solves.WithLabelValues("invalid").Inc()
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	inst, verr := req.Instance()
	if verr != nil {
		metrics.Solves.WithLabelValues("invalid").Inc()
		writeValidationProblem(w, r, verr)
		return
	}

	metric := strings.TrimSpace(req.Metric)
	if metric == "" {
		metric = h.DefaultMetric
	}

	if h.Slots != nil {
		select {
		case h.Slots <- struct{}{}:
			defer func() { <-h.Slots }()
		default:
			metrics.Solves.WithLabelValues("rejected").Inc()
			writeError(w, r, http.StatusServiceUnavailable, "solver is busy, retry later")
			return
		}
	}

	svcReq := services.SolveJobRequest{
		Title:    req.Title,
		Instance: inst,
		Metric:   metric,
		Seed:     req.Seed,
	}

	job, err := services.SolveJob(r.Context(), svcReq, h.Solver, h.NewMetric, h.Cache, h.Repo)
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.Solves.WithLabelValues("invalid").Inc()
			writeValidationProblem(w, r, ve)
		case errors.Is(err, ports.ErrUnknownMetric):
			metrics.Solves.WithLabelValues("invalid").Inc()
			writeProblem(w, r, Problem{
				Status: http.StatusBadRequest,
				Detail: fmt.Sprintf("unknown metric %q (allowed: euclidean, haversine)", metric),
				Field:  "metric",
			})
		default:
			metrics.Solves.WithLabelValues("error").Inc()
			log.Printf("solve vrp failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	metrics.Solves.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, dto.SolveResponse{
		Message: solvedMessage,
		Job:     dto.NewJobResponse(job),
	})
}

// GetJob serves one stored job by id.
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "job id is required")
		return
	}

	job, err := h.Repo.GetJob(r.Context(), id)
	if errors.Is(err, ports.ErrJobNotFound) {
		writeError(w, r, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		log.Printf("get job failed: id=%s err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewJobResponse(job))
}

// ListJobs serves the most recent jobs, newest first.
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	jobs, err := h.Repo.ListJobs(r.Context(), limit)
	if err != nil {
		log.Printf("list jobs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListJobsResponse{Jobs: make([]dto.JobResponse, 0, len(jobs))}
	for _, j := range jobs {
		res.Jobs = append(res.Jobs, dto.NewJobResponse(j))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func writeValidationProblem(w http.ResponseWriter, r *http.Request, ve *domain.ValidationError) {
	writeProblem(w, r, Problem{
		Type:   "about:blank",
		Title:  "Invalid VRP instance",
		Status: http.StatusBadRequest,
		Detail: ve.Error(),
		Kind:   string(ve.Kind),
		Field:  ve.Field,
	})
}
