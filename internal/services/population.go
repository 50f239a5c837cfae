package services

import (
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// NewPopulation returns size depot-framed random permutations of the
// customers 1..customers.
func NewPopulation(customers, size int, rng *rand.Rand) []domain.Chromosome {
	pop := make([]domain.Chromosome, size)
	for i := range pop {
		route := make(domain.Chromosome, customers+2)
		for c := 1; c <= customers; c++ {
			route[c] = c
		}

		// Fisher-Yates over the interior only.
		interior := route[1 : customers+1]
		for k := len(interior) - 1; k > 0; k-- {
			j := rng.Intn(k + 1)
			interior[k], interior[j] = interior[j], interior[k]
		}
		pop[i] = route
	}
	return pop
}
