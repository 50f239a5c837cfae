package dto

import (
	"testing"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

func TestSolveRequestInstance(t *testing.T) {
	inst, verr := SolveRequest{
		Locations:       [][]float64{{0, 0}, {1, 2}},
		Demands:         []float64{0, 1},
		VehicleCapacity: 4,
		NumVehicles:     2,
	}.Instance()
	if verr != nil {
		t.Fatalf("err = %v, want nil", verr)
	}
	if inst.Locations[1] != (domain.Location{X: 1, Y: 2}) {
		t.Fatalf("location = %+v, want {1 2}", inst.Locations[1])
	}
	if inst.NumVehicles != 2 || inst.VehicleCapacity != 4 {
		t.Fatalf("instance = %+v", inst)
	}
}

func TestSolveRequestInstanceBadPair(t *testing.T) {
	_, verr := SolveRequest{
		Locations: [][]float64{{0, 0}, {1, 2, 3}},
	}.Instance()
	if verr == nil {
		t.Fatalf("err = nil, want validation error")
	}
	if verr.Kind != domain.KindInvalidLocation || verr.Field != "locations[1]" {
		t.Fatalf("err = %+v, want InvalidLocation at locations[1]", verr)
	}
}

func TestNewJobResponse(t *testing.T) {
	m, err := domain.DistanceMatrixFromRows([][]float64{{0, 2}, {2, 0}})
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}

	job := &domain.Job{
		ID:    "id-1",
		Title: "t",
		Instance: domain.Instance{
			Locations:       []domain.Location{{X: 0, Y: 0}, {X: 2, Y: 0}},
			Demands:         []float64{0, 1},
			VehicleCapacity: 1,
		},
		Result: &domain.Solution{
			Trips:          []domain.Trip{{Stops: []int{0, 1, 0}, Load: 1, Cost: 4}},
			TotalCost:      4,
			DistanceMatrix: m,
			GenerationsRun: 3,
		},
		CreatedAt: time.Unix(0, 0).UTC(),
	}

	res := NewJobResponse(job)

	if len(res.Locations) != 2 || res.Locations[1][0] != 2 {
		t.Fatalf("locations = %v", res.Locations)
	}
	if res.Result == nil || res.Result.TotalCost != 4 || res.Result.GenerationsRun != 3 {
		t.Fatalf("result = %+v", res.Result)
	}
	if len(res.Result.BestRoute) != 1 || len(res.Result.BestRoute[0]) != 3 {
		t.Fatalf("bestRoute = %v, want [[0 1 0]]", res.Result.BestRoute)
	}
	if res.Result.DistanceMatrix[0][1] != 2 {
		t.Fatalf("matrix = %v", res.Result.DistanceMatrix)
	}

	job.Result = nil
	if NewJobResponse(job).Result != nil {
		t.Fatalf("result = non-nil, want nil for unsolved job")
	}
}
