package domain

import "math"

// Instance is one CVRP problem as supplied by a caller.
// Index 0 of Locations is the depot; every other index is a customer.
// NumVehicles is recorded but never caps the number of trips.
type Instance struct {
	Locations       []Location
	Demands         []float64
	VehicleCapacity float64
	NumVehicles     int
}

// Number of customers (locations excluding the depot).
func (in Instance) Customers() int {
	if len(in.Locations) == 0 {
		return 0
	}
	return len(in.Locations) - 1
}

// Validate reports the first reason the instance cannot be solved.
// Checks run in a fixed order so the same bad input always yields the same kind.
func (in Instance) Validate() error {
	if len(in.Locations) < 2 {
		return invalid(KindEmptyInstance, "locations", "got %d locations", len(in.Locations))
	}

	if len(in.Locations) != len(in.Demands) {
		return invalid(
			KindInputMismatch, "demands",
			"locations=%d demands=%d", len(in.Locations), len(in.Demands),
		)
	}

	if !(in.VehicleCapacity > 0) || math.IsInf(in.VehicleCapacity, 0) {
		return invalid(KindInvalidCapacity, "vehicleCapacity", "got %v", in.VehicleCapacity)
	}

	for i, l := range in.Locations {
		if math.IsNaN(l.X) || math.IsNaN(l.Y) || math.IsInf(l.X, 0) || math.IsInf(l.Y, 0) {
			return invalid(KindInvalidLocation, "locations", "index %d", i)
		}
	}

	// demands[0] belongs to the depot and is ignored.
	for i := 1; i < len(in.Demands); i++ {
		d := in.Demands[i]
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return invalid(KindInvalidDemand, "demands", "index %d: got %v", i, d)
		}
		if d > in.VehicleCapacity {
			return invalid(
				KindInfeasibleDemand, "demands",
				"customer %d demand %v exceeds capacity %v", i, d, in.VehicleCapacity,
			)
		}
	}

	return nil
}
