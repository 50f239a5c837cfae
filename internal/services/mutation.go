package services

import (
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// SwapMutation returns a mutated copy of route. Each interior position, with
// probability rate, swaps its customer with a uniformly random interior
// position. Depot positions never move.
func SwapMutation(route domain.Chromosome, rate float64, rng *rand.Rand) domain.Chromosome {
	mutated := route.Clone()
	n := len(mutated)
	if n < 3 {
		return mutated
	}

	for i := 1; i < n-1; i++ {
		if rng.Float64() < rate {
			j := 1 + rng.Intn(n-2)
			mutated[i], mutated[j] = mutated[j], mutated[i]
		}
	}
	return mutated
}
