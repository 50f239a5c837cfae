package ports

import (
	"context"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// Cache of previously built distance matrices.
// Keys are expected to be derived by the caller from every input that
// influences the matrix.
type MatrixCache interface {
	// Return the cached matrix, or ok=false on a miss.
	Get(ctx context.Context, key string) (m *domain.DistanceMatrix, ok bool, err error)
	// Store a matrix under key.
	Put(ctx context.Context, key string, m *domain.DistanceMatrix) error
}
