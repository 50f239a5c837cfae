package services

import "fmt"

// Config holds the genetic algorithm parameters. Every field is explicit;
// callers build it from DefaultConfig or a config file.
type Config struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	EliteCount     int
	TournamentSize int
	// Workers bounds parallel fitness scoring. 0 or 1 scores sequentially.
	Workers int
}

// DefaultConfig returns the production tuning: a small population run for 100 generations.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 12,
		Generations:    100,
		MutationRate:   0.3,
		EliteCount:     1,
		TournamentSize: 5,
		Workers:        0,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("ga config: populationSize must be > 0 (got %d)", c.PopulationSize)
	}
	if c.Generations <= 0 {
		return fmt.Errorf("ga config: generations must be > 0 (got %d)", c.Generations)
	}
	if !(c.MutationRate >= 0 && c.MutationRate <= 1) {
		return fmt.Errorf("ga config: mutationRate must be in [0,1] (got %v)", c.MutationRate)
	}
	if c.EliteCount < 0 || c.EliteCount > c.PopulationSize {
		return fmt.Errorf(
			"ga config: eliteCount must be in [0, populationSize=%d] (got %d)",
			c.PopulationSize, c.EliteCount,
		)
	}
	if c.TournamentSize <= 0 {
		return fmt.Errorf("ga config: tournamentSize must be > 0 (got %d)", c.TournamentSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("ga config: workers must be >= 0 (got %d)", c.Workers)
	}
	return nil
}
