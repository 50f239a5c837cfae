package api

import (
	"net/http"

	"github.com/Arnab-iitkgp/CargoRoute/internal/api/handlers"
	"github.com/Arnab-iitkgp/CargoRoute/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// solveLimiter may be nil to leave the solve endpoint unthrottled.
func NewRouter(jobs *handlers.JobHandler, solveLimiter *rate.Limiter) http.Handler {
	metrics.Register()

	mux := http.NewServeMux()

	mux.HandleFunc("/{$}", handlers.Root)
	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/api/solve-vrp", rateLimit(solveLimiter, http.HandlerFunc(jobs.Solve)))
	mux.HandleFunc("/api/jobs", jobs.ListJobs)
	mux.HandleFunc("/api/jobs/{id}", jobs.GetJob)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
