package services

import (
	"math"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// Build a chromosome using a greedy nearest-neighbor walk from the depot.
//
// The walk minimizes the immediate edge cost at each step and ignores
// capacity; the trip decoder splits the resulting order like any other
// chromosome. It serves as a deterministic baseline for the genetic search,
// not as a seed for it.
func NearestNeighborRoute(m *domain.DistanceMatrix) domain.Chromosome {
	n := m.Size()
	route := make(domain.Chromosome, 0, n+1)
	route = append(route, 0)

	visited := make([]bool, n)
	visited[0] = true
	current := 0

	for len(route) < n {
		best := -1
		minCost := math.Inf(1)

		// Select next stop by minimum travel cost (greedy step).
		for c := 1; c < n; c++ {
			if visited[c] {
				continue
			}
			// Strict comparison keeps the lowest index on equal costs.
			if cost := m.At(current, c); best == -1 || cost < minCost {
				minCost = cost
				best = c
			}
		}

		visited[best] = true
		route = append(route, best)
		current = best
	}

	return append(route, 0)
}
