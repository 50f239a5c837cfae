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

// DefaultListLimit and MaxListLimit bound ListJobs.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// SQLite-backed implementation of the JobRepository port.
type SqliteJobRepository struct{ DB *sql.DB }

func NewSqliteJobRepository(db *sql.DB) *SqliteJobRepository {
	return &SqliteJobRepository{DB: db}
}

// Insert or replace one job.
func (s *SqliteJobRepository) SaveJob(ctx context.Context, job *domain.Job) (err error) {
	defer obs.Time(ctx, "jobs.sqlite.SaveJob")(&err)

	if s.DB == nil {
		return errors.New("sqlite job repository: DB is nil")
	}
	if job == nil || job.ID == "" {
		return errors.New("save job: job id must not be empty")
	}

	row, err := encodeJob(job)
	if err != nil {
		return fmt.Errorf("save job: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO jobs (
		id,
		title,
		metric,
		seed,
		instance,
		result,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query,
		row.ID, row.Title, row.Metric, row.Seed, row.Instance, row.Result, row.CreatedAt,
	); err != nil {
		return fmt.Errorf("save job id=%s: %w", job.ID, err)
	}

	return nil
}

// Return one job or ports.ErrJobNotFound.
func (s *SqliteJobRepository) GetJob(ctx context.Context, id string) (_ *domain.Job, err error) {
	defer obs.Time(ctx, "jobs.sqlite.GetJob")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite job repository: DB is nil")
	}

	query := `
	SELECT id, title, metric, seed, instance, result, created_at
	FROM jobs
	WHERE id = ?;
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

// Return up to limit jobs, newest first.
func (s *SqliteJobRepository) ListJobs(ctx context.Context, limit int) (_ []*domain.Job, err error) {
	defer obs.Time(ctx, "jobs.sqlite.ListJobs")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite job repository: DB is nil")
	}

	query := `
	SELECT id, title, metric, seed, instance, result, created_at
	FROM jobs
	ORDER BY created_at DESC, id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list jobs: query jobs table: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func collectJobs(rows *sql.Rows) ([]*domain.Job, error) {
	jobs := make([]*domain.Job, 0, 16)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("list jobs: scan row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: row iteration: %w", err)
	}

	return jobs, nil
}
