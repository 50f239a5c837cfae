package services

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/metrics"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/obs"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
	"github.com/google/uuid"
)

const defaultJobTitle = "Untitled Job"

type SolveJobRequest struct {
	Title    string
	Instance domain.Instance
	Metric   string
	// Seed fixes every random draw of the solve. Nil picks a time-based seed.
	Seed *int64
}

// SolveJob validates a request, builds (or reuses) its distance matrix, runs
// the genetic search and persists the solved job.
//
// repo and cache are optional: a nil repo skips persistence and a nil cache
// always builds the matrix. Cache failures never fail the solve.
func SolveJob(
	ctx context.Context,
	req SolveJobRequest,
	solver *GeneticSolver,
	newMetric ports.MetricFactory,
	cache ports.MatrixCache,
	repo ports.JobRepository,
) (_ *domain.Job, err error) {
	defer obs.Time(ctx, "services.SolveJob")(&err)

	if solver == nil {
		return nil, errors.New("solve job: solver is nil")
	}
	if newMetric == nil {
		return nil, errors.New("solve job: metric factory is nil")
	}

	// Input errors abort before any matrix or population work.
	if err := req.Instance.Validate(); err != nil {
		return nil, fmt.Errorf("solve job: %w", err)
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	metricName := strings.ToLower(strings.TrimSpace(req.Metric))
	metric, err := newMetric(metricName, rng)
	if err != nil {
		return nil, fmt.Errorf("solve job: %w", err)
	}

	matrix, err := loadOrBuildMatrix(ctx, req.Instance.Locations, metric, cache)
	if err != nil {
		return nil, fmt.Errorf("solve job: %w", err)
	}

	start := time.Now()
	solution, err := solver.Solve(req.Instance, matrix, rng)
	metrics.SolveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("solve job: %w", err)
	}

	if solution.VehicleShortfall > 0 {
		log.Printf(
			"req_id=%s op=services.SolveJob warn=vehicle_shortfall trips=%d num_vehicles=%d shortfall=%d",
			obs.RequestID(ctx), len(solution.Trips), req.Instance.NumVehicles, solution.VehicleShortfall,
		)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultJobTitle
	}

	job := &domain.Job{
		ID:        uuid.NewString(),
		Title:     title,
		Instance:  req.Instance,
		Metric:    metricName,
		Seed:      seed,
		Result:    solution,
		CreatedAt: time.Now().UTC(),
	}

	if repo != nil {
		if err := repo.SaveJob(ctx, job); err != nil {
			return nil, fmt.Errorf("solve job: save job: %w", err)
		}
	}

	return job, nil
}

// loadOrBuildMatrix consults the cache only for metrics that are
// reproducible; metrics drawing randomness are always rebuilt so the random
// source is consumed the same way on every run with the same seed.
func loadOrBuildMatrix(
	ctx context.Context,
	locations []domain.Location,
	metric ports.DistanceMetric,
	cache ports.MatrixCache,
) (*domain.DistanceMatrix, error) {
	metricKey := metric.CacheKey()
	if cache == nil || metricKey == "" {
		metrics.MatrixCache.WithLabelValues("skip").Inc()
		return BuildDistanceMatrix(locations, metric)
	}

	key := MatrixCacheKey(metricKey, locations)

	cached, ok, err := cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.MatrixCache.WithLabelValues("error").Inc()
		log.Printf("req_id=%s matrix cache read failed: key=%s err=%v", obs.RequestID(ctx), key, err)
	case ok && cached.Size() == len(locations):
		metrics.MatrixCache.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.MatrixCache.WithLabelValues("miss").Inc()
	}

	m, err := BuildDistanceMatrix(locations, metric)
	if err != nil {
		return nil, err
	}

	if err := cache.Put(ctx, key, m); err != nil {
		log.Printf("req_id=%s matrix cache write failed: key=%s err=%v", obs.RequestID(ctx), key, err)
	}

	return m, nil
}

// MatrixCacheKey derives a cache key from the metric key and every coordinate.
func MatrixCacheKey(metricKey string, locations []domain.Location) string {
	h := sha256.New()
	h.Write([]byte(metricKey))

	var buf [8]byte
	for _, l := range locations {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(l.X))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(l.Y))
		h.Write(buf[:])
	}

	return "matrix:" + hex.EncodeToString(h.Sum(nil))
}
