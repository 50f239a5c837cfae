package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/obs"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
)

// SQLJobRepository is the Postgres implementation of the JobRepository port.
type SQLJobRepository struct{ DB *sql.DB }

func NewSQLJobRepository(db *sql.DB) *SQLJobRepository {
	return &SQLJobRepository{DB: db}
}

func (s *SQLJobRepository) SaveJob(ctx context.Context, job *domain.Job) (err error) {
	defer obs.Time(ctx, "jobs.sql.SaveJob")(&err)

	if s.DB == nil {
		return errors.New("sql job repository: DB is nil")
	}
	if job == nil || job.ID == "" {
		return errors.New("save job: job id must not be empty")
	}

	row, err := encodeJob(job)
	if err != nil {
		return fmt.Errorf("save job: %w", err)
	}

	query := `
	INSERT INTO jobs (id, title, metric, seed, instance, result, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
		metric = EXCLUDED.metric,
		seed = EXCLUDED.seed,
		instance = EXCLUDED.instance,
		result = EXCLUDED.result,
		created_at = EXCLUDED.created_at;
	`
	if _, err := s.DB.ExecContext(ctx, query,
		row.ID, row.Title, row.Metric, row.Seed, row.Instance, row.Result, row.CreatedAt,
	); err != nil {
		return fmt.Errorf("save job id=%s: %w", job.ID, err)
	}

	return nil
}

func (s *SQLJobRepository) GetJob(ctx context.Context, id string) (_ *domain.Job, err error) {
	defer obs.Time(ctx, "jobs.sql.GetJob")(&err)

	if s.DB == nil {
		return nil, errors.New("sql job repository: DB is nil")
	}

	query := `
	SELECT id, title, metric, seed, instance, result, created_at
	FROM jobs
	WHERE id = $1;
	`
	job, err := scanJob(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get job id=%s: %w", id, ports.ErrJobNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get job id=%s: %w", id, err)
	}

	return job, nil
}

func (s *SQLJobRepository) ListJobs(ctx context.Context, limit int) (_ []*domain.Job, err error) {
	defer obs.Time(ctx, "jobs.sql.ListJobs")(&err)

	if s.DB == nil {
		return nil, errors.New("sql job repository: DB is nil")
	}

	query := `
	SELECT id, title, metric, seed, instance, result, created_at
	FROM jobs
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list jobs: query jobs table: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}
