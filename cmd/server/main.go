package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/cache"
	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/distance"
	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/repositories"
	"github.com/Arnab-iitkgp/CargoRoute/internal/api"
	"github.com/Arnab-iitkgp/CargoRoute/internal/api/handlers"
	"github.com/Arnab-iitkgp/CargoRoute/internal/config"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/db"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
	"github.com/Arnab-iitkgp/CargoRoute/internal/services"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	defaultMetric := config.Get("DEFAULT_METRIC", distance.MetricEuclidean)

	driver, dsn, err := config.Database(db.DriverSQLite)
	if err != nil {
		log.Fatal(err)
	}

	solverCfg, err := config.LoadSolverConfig(config.Get("SOLVER_CONFIG", "config/solver.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	maxConcurrent, err := config.GetInt("MAX_CONCURRENT_SOLVES", 2)
	if err != nil {
		log.Fatal(err)
	}
	ratePerSec, err := config.GetFloat("SOLVE_RATE_PER_SEC", 2)
	if err != nil {
		log.Fatal(err)
	}
	burst, err := config.GetInt("SOLVE_BURST", 4)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Schema init is idempotent and runs on every start.
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	repo, matrixCache := sqlAdapters(driver, conn)

	if redisURL := config.Get("REDIS_URL", ""); redisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rc, err := cache.NewRedisMatrixCacheFromURL(ctx, redisURL, cache.DefaultMatrixTTL)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		matrixCache = rc
	}

	solver, err := services.NewGeneticSolver(solverCfg, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), burst)
	}

	jobs := handlers.NewJobHandler(solver, distance.NewMetric, matrixCache, repo, defaultMetric, maxConcurrent)
	router := api.NewRouter(jobs, limiter)

	log.Printf(
		"Server listening addr=:%s db=%s population=%d generations=%d max_concurrent=%d",
		port, driver, solverCfg.PopulationSize, solverCfg.Generations, maxConcurrent,
	)
	// Write timeout leaves room for large instances; solves are synchronous.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func sqlAdapters(driver string, conn *sql.DB) (ports.JobRepository, ports.MatrixCache) {
	switch driver {
	case db.DriverPostgres:
		return repositories.NewSQLJobRepository(conn), cache.NewSQLMatrixCache(conn)
	default:
		return repositories.NewSqliteJobRepository(conn), cache.NewSqliteMatrixCache(conn)
	}
}

