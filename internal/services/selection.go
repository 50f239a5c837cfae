package services

import (
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// SelectParents builds a mating pool the size of the population.
// The first elite entries are the front of the cost-sorted population; the
// rest are tournament winners.
func SelectParents(pop []domain.Evaluated, elite, tournament int, rng *rand.Rand) []domain.Evaluated {
	if elite > len(pop) {
		elite = len(pop)
	}

	selected := make([]domain.Evaluated, 0, len(pop))
	selected = append(selected, pop[:elite]...)

	for len(selected) < len(pop) {
		selected = append(selected, pop[tournamentSelect(pop, tournament, rng)])
	}
	return selected
}

// tournamentSelect samples size members with replacement and returns the
// index of the cheapest. The earliest sampled member wins a tie.
func tournamentSelect(pop []domain.Evaluated, size int, rng *rand.Rand) int {
	best := rng.Intn(len(pop))
	for i := 1; i < size; i++ {
		cand := rng.Intn(len(pop))
		if pop[cand].Cost < pop[best].Cost {
			best = cand
		}
	}
	return best
}
