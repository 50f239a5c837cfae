package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// progressEvery is the generation interval between progress log lines.
const progressEvery = 10

// GeneticSolver searches for low-cost CVRP solutions with a generational
// genetic algorithm: elitism, tournament selection, order crossover and
// swap mutation over depot-framed customer permutations.
//
// A solve is synchronous and runs to completion; it has no cancellation and
// no time limit. Callers bound concurrency and wall-clock time themselves.
type GeneticSolver struct {
	Cfg Config
	// Logger receives progress lines. Nil disables progress logging.
	Logger *log.Logger
}

func NewGeneticSolver(cfg Config, logger *log.Logger) (*GeneticSolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new genetic solver: %w", err)
	}
	return &GeneticSolver{Cfg: cfg, Logger: logger}, nil
}

// Solve evolves Cfg.Generations generations over inst using the prebuilt
// matrix and returns the best solution ever observed, decoded into trips.
//
// All randomness is drawn from rng, so a fixed seed reproduces the run.
func (s *GeneticSolver) Solve(inst domain.Instance, m *domain.DistanceMatrix, rng *rand.Rand) (*domain.Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if rng == nil {
		return nil, errors.New("solve: random source is nil")
	}
	if m == nil || m.Size() != len(inst.Locations) {
		return nil, fmt.Errorf("solve: distance matrix does not cover %d locations", len(inst.Locations))
	}

	cfg := s.Cfg
	score := func(r domain.Chromosome) float64 {
		return RouteCost(r, m, inst.Demands, inst.VehicleCapacity)
	}

	// Initialized -> Evaluated
	population := EvaluatePopulation(
		NewPopulation(inst.Customers(), cfg.PopulationSize, rng),
		score,
		cfg.Workers,
	)
	bestEver := domain.Evaluated{Route: population[0].Route.Clone(), Cost: population[0].Cost}

	history := make([]domain.GenerationStats, 0, cfg.Generations+1)
	history = append(history, summarize(0, bestEver.Cost, population))

	for gen := 1; gen <= cfg.Generations; gen++ {
		// Selecting
		pool := SelectParents(population, cfg.EliteCount, cfg.TournamentSize, rng)

		// Breeding: elites first, so the best lineage survives the generation.
		children := make([]domain.Chromosome, 0, cfg.PopulationSize)
		for i := 0; i < cfg.EliteCount; i++ {
			children = append(children, pool[i].Route.Clone())
		}
		for len(children) < cfg.PopulationSize {
			parentA := pool[rng.Intn(len(pool))].Route
			parentB := pool[rng.Intn(len(pool))].Route

			child := OrderCrossover(parentA, parentB, rng)
			children = append(children, SwapMutation(child, cfg.MutationRate, rng))
		}

		// Evaluated
		population = EvaluatePopulation(children, score, cfg.Workers)

		// Ties do not replace the incumbent.
		if population[0].Cost < bestEver.Cost {
			bestEver = domain.Evaluated{Route: population[0].Route.Clone(), Cost: population[0].Cost}
		}

		stats := summarize(gen, bestEver.Cost, population)
		history = append(history, stats)

		if s.Logger != nil && (gen%progressEvery == 0 || gen == cfg.Generations) {
			s.Logger.Printf(
				"op=ga.generation gen=%d best_ever=%.4f best=%.4f mean=%.4f stddev=%.4f",
				gen, stats.BestEver, stats.Best, stats.Mean, stats.StdDev,
			)
		}
	}

	// Terminated
	baseline := NearestNeighborRoute(m)
	solution := decodeSolution(bestEver.Route, inst, m)
	solution.GenerationsRun = cfg.Generations
	solution.BaselineCost = RouteCost(baseline, m, inst.Demands, inst.VehicleCapacity)
	solution.History = history

	return solution, nil
}

// decodeSolution expands a chromosome into costed trips.
// TotalCost is summed trip by trip so it always equals the sum of edge
// lookups in the returned matrix.
func decodeSolution(route domain.Chromosome, inst domain.Instance, m *domain.DistanceMatrix) *domain.Solution {
	trips := DecodeTrips(route, inst.Demands, inst.VehicleCapacity)

	total := 0.0
	for i := range trips {
		trips[i].Cost = m.PathCost(trips[i].Stops)
		total += trips[i].Cost
	}

	shortfall := 0
	if inst.NumVehicles > 0 && len(trips) > inst.NumVehicles {
		shortfall = len(trips) - inst.NumVehicles
	}

	return &domain.Solution{
		Trips:            trips,
		TotalCost:        total,
		DistanceMatrix:   m,
		VehicleShortfall: shortfall,
	}
}

func summarize(gen int, bestEver float64, pop []domain.Evaluated) domain.GenerationStats {
	costs := make([]float64, len(pop))
	for i, e := range pop {
		costs[i] = e.Cost
	}

	mean, std := stat.MeanStdDev(costs, nil)
	if len(costs) < 2 {
		std = 0
	}

	return domain.GenerationStats{
		Generation: gen,
		BestEver:   bestEver,
		Best:       pop[0].Cost,
		Mean:       mean,
		StdDev:     std,
	}
}
