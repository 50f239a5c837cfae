package distance

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

const (
	earthRadiusMeters = 6371000.0

	// DefaultRoadFactor approximates road distance from great-circle distance.
	DefaultRoadFactor = 1.3
	// DefaultJitter bounds the per-pair random perturbation (±5%).
	DefaultJitter = 0.05
)

// HaversineMetric estimates road distance in metres between two
// latitude/longitude points.
//
// The great-circle distance is scaled by RoadFactor and multiplied by
// (1 + u) where u is drawn uniformly from [-Jitter, +Jitter) for every call.
// The jitter models road-network uncertainty; it draws from Rand, so a
// matrix built with a seeded source is reproducible. Jitter = 0 makes the
// metric deterministic.
type HaversineMetric struct {
	RoadFactor float64
	Jitter     float64
	Rand       *rand.Rand
}

// NewHaversineMetric returns a metric with the default road factor and jitter.
func NewHaversineMetric(rng *rand.Rand) *HaversineMetric {
	return &HaversineMetric{RoadFactor: DefaultRoadFactor, Jitter: DefaultJitter, Rand: rng}
}

func (h *HaversineMetric) Cost(a, b domain.Location) float64 {
	d := haversineMeters(a.X, a.Y, b.X, b.Y) * h.RoadFactor
	if h.Jitter > 0 && h.Rand != nil {
		d *= 1 + (h.Rand.Float64()*2-1)*h.Jitter
	}
	return d
}

func (h *HaversineMetric) CacheKey() string {
	if h.Jitter > 0 {
		return ""
	}
	return fmt.Sprintf("haversine:road=%g", h.RoadFactor)
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
