package domain

import (
	"errors"
	"testing"
)

func TestTripAddAndClose(t *testing.T) {
	trip := NewTrip()

	trip.Add(2, 4)
	trip.Add(1, 2)

	if !trip.Fits(2, 8) {
		t.Fatalf("load %v + 2 should fit capacity 8", trip.Load)
	}
	if trip.Fits(3, 8) {
		t.Fatalf("load %v + 3 should not fit capacity 8", trip.Load)
	}

	trip.Close()

	want := []int{0, 2, 1, 0}
	if len(trip.Stops) != len(want) {
		t.Fatalf("stops = %v, want %v", trip.Stops, want)
	}
	for i := range want {
		if trip.Stops[i] != want[i] {
			t.Fatalf("stops = %v, want %v", trip.Stops, want)
		}
	}
	if trip.Load != 6 {
		t.Errorf("load = %v, want 6", trip.Load)
	}
	if got := trip.Customers(); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("customers = %v, want [2 1]", got)
	}
}

func TestTripEmpty(t *testing.T) {
	trip := NewTrip()
	trip.Close()
	if !trip.Empty() {
		t.Fatalf("depot-only trip should be empty: %v", trip.Stops)
	}
	if trip.Customers() != nil {
		t.Fatalf("depot-only trip has customers %v", trip.Customers())
	}
}

func TestInstanceValidate(t *testing.T) {
	loc := func(n int) []Location { return make([]Location, n) }

	tests := []struct {
		name string
		in   Instance
		want error
	}{
		{
			name: "valid",
			in:   Instance{Locations: loc(3), Demands: []float64{0, 1, 2}, VehicleCapacity: 3},
		},
		{
			name: "empty",
			in:   Instance{Locations: loc(1), Demands: []float64{0}, VehicleCapacity: 3},
			want: ErrEmptyInstance,
		},
		{
			name: "mismatch",
			in:   Instance{Locations: loc(3), Demands: []float64{0, 1}, VehicleCapacity: 3},
			want: ErrInputMismatch,
		},
		{
			name: "zero capacity",
			in:   Instance{Locations: loc(2), Demands: []float64{0, 1}, VehicleCapacity: 0},
			want: ErrInvalidCapacity,
		},
		{
			name: "infeasible demand",
			in: Instance{
				Locations:       []Location{{0, 0}, {1, 1}},
				Demands:         []float64{0, 5},
				VehicleCapacity: 3,
			},
			want: ErrInfeasibleDemand,
		},
		{
			name: "negative demand",
			in:   Instance{Locations: loc(2), Demands: []float64{0, -1}, VehicleCapacity: 3},
			want: ErrInvalidDemand,
		},
		{
			name: "depot demand ignored",
			in:   Instance{Locations: loc(2), Demands: []float64{99, 1}, VehicleCapacity: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err %T is not a *ValidationError", err)
			}
			if ve.Field == "" {
				t.Errorf("validation error has no field")
			}
		})
	}
}

func TestChromosomeValid(t *testing.T) {
	tests := []struct {
		route Chromosome
		n     int
		want  bool
	}{
		{Chromosome{0, 2, 1, 3, 0}, 4, true},
		{Chromosome{0, 0}, 1, true},
		{Chromosome{1, 2, 3, 0, 0}, 4, false},
		{Chromosome{0, 2, 2, 3, 0}, 4, false},
		{Chromosome{0, 2, 1, 4, 0}, 4, false},
		{Chromosome{0, 2, 1, 0}, 4, false},
	}

	for _, tt := range tests {
		if got := tt.route.Valid(tt.n); got != tt.want {
			t.Errorf("Valid(%v, %d) = %v, want %v", tt.route, tt.n, got, tt.want)
		}
	}
}

func TestDistanceMatrixRoundTrip(t *testing.T) {
	m, err := DistanceMatrixFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Size() != 3 {
		t.Fatalf("size = %d, want 3", m.Size())
	}
	if got := m.At(1, 2); got != 3 {
		t.Fatalf("At(1,2) = %v, want 3", got)
	}
	if got := m.PathCost([]int{0, 1, 2, 0}); got != 6 {
		t.Fatalf("path cost = %v, want 6", got)
	}

	rows := m.Rows()
	rows[0][1] = 42
	if m.At(0, 1) != 1 {
		t.Fatalf("Rows must return a copy")
	}

	if _, err := DistanceMatrixFromRows([][]float64{{0, 1}, {1}}); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}

func TestDistanceMatrixOutOfRangePanics(t *testing.T) {
	m, err := NewDistanceMatrix(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range lookup")
		}
	}()
	_ = m.At(2, 0)
}
