package ports

import (
	"context"
	"errors"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

var ErrJobNotFound = errors.New("job not found")

// Port: a boundary for persisting solved optimization jobs.
type JobRepository interface {
	// Persist a job together with its result.
	SaveJob(ctx context.Context, job *domain.Job) error
	// Retrieve one job; ErrJobNotFound when the id is unknown.
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	// List the most recent jobs, newest first.
	ListJobs(ctx context.Context, limit int) ([]*domain.Job, error)
}
