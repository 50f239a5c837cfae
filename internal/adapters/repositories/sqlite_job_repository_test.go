package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func sampleJob(id string, created time.Time) *domain.Job {
	m, _ := domain.DistanceMatrixFromRows([][]float64{
		{0, 1.5, 2},
		{1.5, 0, 3},
		{2, 3, 0},
	})
	return &domain.Job{
		ID:     id,
		Title:  "job " + id,
		Metric: "euclidean",
		Seed:   42,
		Instance: domain.Instance{
			Locations:       []domain.Location{{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 0, Y: 2}},
			Demands:         []float64{0, 1, 2},
			VehicleCapacity: 2,
			NumVehicles:     1,
		},
		Result: &domain.Solution{
			Trips: []domain.Trip{
				{Stops: []int{0, 1, 0}, Load: 1, Cost: 3},
				{Stops: []int{0, 2, 0}, Load: 2, Cost: 4},
			},
			TotalCost:        7,
			DistanceMatrix:   m,
			GenerationsRun:   100,
			BaselineCost:     7,
			VehicleShortfall: 1,
			History:          []domain.GenerationStats{{Generation: 0, BestEver: 7, Best: 7, Mean: 7.5, StdDev: 0.5}},
		},
		CreatedAt: created.UTC(),
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if err := InitSchema(nil); err == nil {
		t.Fatalf("InitSchema(nil) err = nil, want error")
	}
}

func TestSqliteJobRepositoryRoundTrip(t *testing.T) {
	repo := NewSqliteJobRepository(openTestDB(t))
	ctx := context.Background()
	want := sampleJob("a", time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC))

	if err := repo.SaveJob(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetJob(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Title != want.Title || got.Metric != want.Metric || got.Seed != want.Seed {
		t.Fatalf("header = %q %q %d, want %q %q %d", got.Title, got.Metric, got.Seed, want.Title, want.Metric, want.Seed)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if len(got.Instance.Locations) != 3 || got.Instance.Locations[1] != want.Instance.Locations[1] {
		t.Fatalf("locations = %v, want %v", got.Instance.Locations, want.Instance.Locations)
	}
	if got.Result == nil || got.Result.TotalCost != 7 || len(got.Result.Trips) != 2 {
		t.Fatalf("result = %+v, want two trips costing 7", got.Result)
	}
	if got.Result.Trips[1].Load != 2 || got.Result.VehicleShortfall != 1 {
		t.Fatalf("trip load = %v shortfall = %d, want 2 and 1", got.Result.Trips[1].Load, got.Result.VehicleShortfall)
	}
	if got.Result.DistanceMatrix.At(1, 2) != 3 {
		t.Fatalf("matrix[1][2] = %v, want 3", got.Result.DistanceMatrix.At(1, 2))
	}
	if len(got.Result.History) != 1 || got.Result.History[0].Mean != 7.5 {
		t.Fatalf("history = %+v", got.Result.History)
	}
}

func TestSqliteJobRepositoryNotFound(t *testing.T) {
	repo := NewSqliteJobRepository(openTestDB(t))

	_, err := repo.GetJob(context.Background(), "missing")
	if !errors.Is(err, ports.ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestSqliteJobRepositoryJobWithoutResult(t *testing.T) {
	repo := NewSqliteJobRepository(openTestDB(t))
	ctx := context.Background()

	job := sampleJob("pending", time.Now())
	job.Result = nil
	if err := repo.SaveJob(ctx, job); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetJob(ctx, "pending")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result != nil {
		t.Fatalf("result = %+v, want nil", got.Result)
	}
}

func TestSqliteJobRepositoryListNewestFirst(t *testing.T) {
	repo := NewSqliteJobRepository(openTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		job := sampleJob(fmt.Sprintf("job-%d", i), base.Add(time.Duration(i)*time.Minute))
		if err := repo.SaveJob(ctx, job); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	jobs, err := repo.ListJobs(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("len = %d, want 3", len(jobs))
	}
	for i, want := range []string{"job-4", "job-3", "job-2"} {
		if jobs[i].ID != want {
			t.Fatalf("jobs[%d] = %s, want %s", i, jobs[i].ID, want)
		}
	}

	all, err := repo.ListJobs(ctx, 0)
	if err != nil {
		t.Fatalf("list default: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
}

func TestSqliteJobRepositorySaveReplaces(t *testing.T) {
	repo := NewSqliteJobRepository(openTestDB(t))
	ctx := context.Background()

	job := sampleJob("x", time.Now())
	if err := repo.SaveJob(ctx, job); err != nil {
		t.Fatalf("save: %v", err)
	}
	job.Title = "renamed"
	if err := repo.SaveJob(ctx, job); err != nil {
		t.Fatalf("resave: %v", err)
	}

	got, err := repo.GetJob(ctx, "x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "renamed" {
		t.Fatalf("title = %q, want renamed", got.Title)
	}
}

func TestClampLimit(t *testing.T) {
	cases := map[int]int{-1: DefaultListLimit, 0: DefaultListLimit, 5: 5, 100: 100, 1000: MaxListLimit}
	for in, want := range cases {
		if got := clampLimit(in); got != want {
			t.Fatalf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
