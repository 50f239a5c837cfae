package services

import (
	"context"
	"slices"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RouteCost scores a chromosome: the summed edge cost of its decoded trips.
func RouteCost(route domain.Chromosome, m *domain.DistanceMatrix, demands []float64, capacity float64) float64 {
	total := 0.0
	for _, trip := range DecodeTrips(route, demands, capacity) {
		total += m.PathCost(trip.Stops)
	}
	return total
}

// EvaluatePopulation scores every route and returns them sorted by ascending
// cost. Equal costs keep their input order.
//
// Scoring has no data dependency between routes; with workers > 1 it runs on
// a bounded goroutine group and yields the same result as sequential scoring.
func EvaluatePopulation(routes []domain.Chromosome, score func(domain.Chromosome) float64, workers int) []domain.Evaluated {
	out := make([]domain.Evaluated, len(routes))

	if workers <= 1 {
		for i, r := range routes {
			out[i] = domain.Evaluated{Route: r, Cost: score(r)}
		}
	} else {
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(workers)
		for i, r := range routes {
			g.Go(func() error {
				out[i] = domain.Evaluated{Route: r, Cost: score(r)}
				return nil
			})
		}
		_ = g.Wait()
	}

	slices.SortStableFunc(out, func(a, b domain.Evaluated) int {
		if a.Cost < b.Cost {
			return -1
		}
		if a.Cost > b.Cost {
			return 1
		}
		return 0
	})

	return out
}
