package distance

import (
	"fmt"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

type TablePair struct {
	From, To domain.Location
	Cost     float64
}

// TableMetric serves costs from a fixed lookup table.
// Pairs missing from the table cost Fallback.
type TableMetric struct {
	m        map[string]float64
	Fallback float64
}

func NewTableMetric(pairs []TablePair, fallback float64) *TableMetric {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[pairKey(p.From, p.To)] = p.Cost
	}
	return &TableMetric{m: m, Fallback: fallback}
}

func pairKey(a, b domain.Location) string {
	return fmt.Sprintf("%g,%g|%g,%g", a.X, a.Y, b.X, b.Y)
}

func (t *TableMetric) Cost(a, b domain.Location) float64 {
	if c, ok := t.m[pairKey(a, b)]; ok {
		return c
	}
	return t.Fallback
}

// Table contents are not part of the key, so tables are never cached.
func (t *TableMetric) CacheKey() string { return "" }
