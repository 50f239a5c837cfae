package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

func TestWriteTrips(t *testing.T) {
	job := &domain.Job{
		Title:    "sample",
		Metric:   "euclidean",
		Seed:     3,
		Instance: domain.Instance{VehicleCapacity: 8, NumVehicles: 1},
		Result: &domain.Solution{
			Trips: []domain.Trip{
				{Stops: []int{0, 1, 2, 3, 0}, Load: 8, Cost: 12.5},
				{Stops: []int{0, 4, 0}, Load: 3, Cost: 4},
			},
			TotalCost:        16.5,
			BaselineCost:     18,
			GenerationsRun:   100,
			VehicleShortfall: 1,
		},
	}

	var b strings.Builder
	if err := writeTrips(&b, job); err != nil {
		t.Fatalf("err = %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"sample (metric=euclidean seed=3)",
		"1. 0 -> 1 -> 2 -> 3 -> 0 | load 8/8 | cost 12.5000",
		"2. 0 -> 4 -> 0 | load 3/8 | cost 4.0000",
		"Total cost: 16.5000 (nearest neighbour baseline 18.0000)",
		"Generations: 100",
		"Warning: 1 trips exceed numVehicles=1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inst.json")
	body := `{"locations":[[0,0],[3,4]],"demands":[0,1],"vehicleCapacity":2,"seed":5}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	req, err := readRequest(path)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(req.Locations) != 2 || req.Seed == nil || *req.Seed != 5 {
		t.Fatalf("req = %+v", req)
	}

	if err := os.WriteFile(path, []byte(`{"locations":[],"extra":1}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := readRequest(path); err == nil {
		t.Fatalf("err = nil, want unknown field error")
	}
}
