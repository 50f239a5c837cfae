package domain

// GenerationStats summarizes one evaluated generation.
type GenerationStats struct {
	Generation int
	BestEver   float64
	Best       float64
	Mean       float64
	StdDev     float64
}

// Solution is the decoded output of one solve.
// It is immutable planning data: trips, their summed cost, the matrix the
// costs were read from and how many generations were executed.
type Solution struct {
	Trips            []Trip
	TotalCost        float64
	DistanceMatrix   *DistanceMatrix
	GenerationsRun   int
	BaselineCost     float64
	VehicleShortfall int
	History          []GenerationStats
}
