package distance

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
)

const (
	MetricEuclidean = "euclidean"
	MetricHaversine = "haversine"
)

// NewMetric resolves a metric by name. The haversine metric draws its
// jitter from rng.
func NewMetric(name string, rng *rand.Rand) (ports.DistanceMetric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MetricEuclidean, "":
		return EuclideanMetric{}, nil
	case MetricHaversine:
		if rng == nil {
			return nil, fmt.Errorf("new metric %q: random source is nil", name)
		}
		return NewHaversineMetric(rng), nil
	default:
		return nil, fmt.Errorf("new metric %q (allowed: euclidean, haversine): %w", name, ports.ErrUnknownMetric)
	}
}
