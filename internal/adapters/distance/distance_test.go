package distance

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/ports"
)

func TestEuclideanMetric(t *testing.T) {
	got := EuclideanMetric{}.Cost(domain.Location{X: 0, Y: 0}, domain.Location{X: 3, Y: 4})
	if got != 5 {
		t.Fatalf("cost = %v, want 5", got)
	}
}

func TestHaversineMetricWithoutJitter(t *testing.T) {
	h := &HaversineMetric{RoadFactor: 1, Jitter: 0}

	// One degree of latitude is ~111.19 km.
	got := h.Cost(domain.Location{X: 0, Y: 0}, domain.Location{X: 1, Y: 0})
	if math.Abs(got-111195) > 50 {
		t.Fatalf("cost = %v, want ~111195", got)
	}

	if h.CacheKey() == "" {
		t.Fatalf("deterministic haversine metric should be cacheable")
	}
}

func TestHaversineMetricJitterBounds(t *testing.T) {
	a := domain.Location{X: 22.5726, Y: 88.3639}
	b := domain.Location{X: 22.6, Y: 88.4}

	base := haversineMeters(a.X, a.Y, b.X, b.Y) * DefaultRoadFactor
	h := NewHaversineMetric(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		got := h.Cost(a, b)
		if got < base*(1-DefaultJitter) || got > base*(1+DefaultJitter) {
			t.Fatalf("cost %v outside ±%v of %v", got, DefaultJitter, base)
		}
	}

	if h.CacheKey() != "" {
		t.Fatalf("jittered metric must not be cacheable")
	}
}

func TestHaversineMetricSeededIsReproducible(t *testing.T) {
	a := domain.Location{X: 10, Y: 10}
	b := domain.Location{X: 10.5, Y: 10.5}

	h1 := NewHaversineMetric(rand.New(rand.NewSource(42)))
	h2 := NewHaversineMetric(rand.New(rand.NewSource(42)))
	for i := 0; i < 10; i++ {
		if c1, c2 := h1.Cost(a, b), h2.Cost(a, b); c1 != c2 {
			t.Fatalf("draw %d: %v != %v", i, c1, c2)
		}
	}
}

func TestNewMetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if m, err := NewMetric("", rng); err != nil || m.CacheKey() != "euclidean" {
		t.Fatalf("empty name: metric=%v err=%v", m, err)
	}
	if _, err := NewMetric("Haversine", rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewMetric("haversine", nil); err == nil {
		t.Fatalf("expected error for nil random source")
	}
	if _, err := NewMetric("manhattan", rng); !errors.Is(err, ports.ErrUnknownMetric) {
		t.Fatalf("err = %v, want ErrUnknownMetric", err)
	}
}

func TestTableMetric(t *testing.T) {
	a := domain.Location{X: 0, Y: 0}
	b := domain.Location{X: 1, Y: 0}
	m := NewTableMetric([]TablePair{{From: a, To: b, Cost: 7}}, 100)

	if got := m.Cost(a, b); got != 7 {
		t.Fatalf("cost = %v, want 7", got)
	}
	if got := m.Cost(b, a); got != 100 {
		t.Fatalf("reverse cost = %v, want fallback 100", got)
	}
}
