package distance

import (
	"math"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// EuclideanMetric measures straight-line distance in planar units.
type EuclideanMetric struct{}

func (EuclideanMetric) Cost(a, b domain.Location) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func (EuclideanMetric) CacheKey() string { return "euclidean" }
