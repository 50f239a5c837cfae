package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/distance"
	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/repositories"
	"github.com/Arnab-iitkgp/CargoRoute/internal/api/dto"
	"github.com/Arnab-iitkgp/CargoRoute/internal/config"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/db"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
	"github.com/Arnab-iitkgp/CargoRoute/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver, dsn, err := config.Database(db.DriverPostgres)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/jobs.json")
	if err := initAndSeed(conn, driver, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, driver, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	var repo ports.JobRepository = repositories.NewSQLJobRepository(conn)
	if driver == db.DriverSQLite {
		repo = repositories.NewSqliteJobRepository(conn)
	}

	log.Println("Seeding demo jobs...")
	n, err := seedJobs(context.Background(), repo, seedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete. jobs=%d", n)

	return nil
}

// seedJobs solves every request in a JSON array and stores the jobs.
// A missing seed file is not an error.
func seedJobs(ctx context.Context, repo ports.JobRepository, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("seed file not found, skipping: path=%s", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("seed jobs: read %q: %w", path, err)
	}

	var reqs []dto.SolveRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return 0, fmt.Errorf("seed jobs: parse json: %w", err)
	}

	cfg, err := config.LoadSolverConfig(config.Get("SOLVER_CONFIG", "config/solver.yaml"))
	if err != nil {
		return 0, fmt.Errorf("seed jobs: %w", err)
	}
	solver, err := services.NewGeneticSolver(cfg, nil)
	if err != nil {
		return 0, fmt.Errorf("seed jobs: %w", err)
	}

	for i, r := range reqs {
		inst, verr := r.Instance()
		if verr != nil {
			return i, fmt.Errorf("seed jobs: item %d: %w", i+1, verr)
		}

		job, err := services.SolveJob(ctx, services.SolveJobRequest{
			Title:    r.Title,
			Instance: inst,
			Metric:   r.Metric,
			Seed:     r.Seed,
		}, solver, distance.NewMetric, nil, repo)
		if err != nil {
			return i, fmt.Errorf("seed jobs: item %d: %w", i+1, err)
		}
		log.Printf("seeded job id=%s title=%q total_cost=%.4f", job.ID, job.Title, job.Result.TotalCost)
	}

	return len(reqs), nil
}
