package ports

import (
	"errors"
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// Contract for computing the travel cost between two locations.
type DistanceMetric interface {
	// Return the non-negative cost of travelling from a to b.
	Cost(a, b domain.Location) float64
	// Stable name identifying the metric and its parameters.
	// Two metrics with equal keys produce equal matrices for the same
	// locations. Empty when the metric draws randomness and must not be cached.
	CacheKey() string
}

// ErrUnknownMetric is returned by a MetricFactory for an unsupported name.
var ErrUnknownMetric = errors.New("unknown metric")

// Resolves a metric by name. Metrics that draw randomness use rng.
type MetricFactory func(name string, rng *rand.Rand) (DistanceMetric, error)
