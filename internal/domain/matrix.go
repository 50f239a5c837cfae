package domain

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is a flat N×N cost table indexed by (row, col).
// Out-of-range lookups panic. It is read-only once built.
type DistanceMatrix struct {
	n     int
	dense *mat.Dense
}

// NewDistanceMatrix allocates a zeroed n×n matrix.
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("new distance matrix: size must be positive (got %d)", n)
	}
	return &DistanceMatrix{n: n, dense: mat.NewDense(n, n, nil)}, nil
}

// DistanceMatrixFromRows rebuilds a matrix from its nested form.
func DistanceMatrixFromRows(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New("distance matrix from rows: no rows")
	}

	data := make([]float64, 0, n*n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("distance matrix from rows: row %d has %d columns, want %d", i, len(r), n)
		}
		data = append(data, r...)
	}
	return &DistanceMatrix{n: n, dense: mat.NewDense(n, n, data)}, nil
}

// Size returns N.
func (m *DistanceMatrix) Size() int { return m.n }

// At returns the cost of travelling from i to j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.dense.At(i, j) }

// Set writes one cell. Only builders call this.
func (m *DistanceMatrix) Set(i, j int, v float64) { m.dense.Set(i, j, v) }

// Rows returns a nested copy for serialization.
func (m *DistanceMatrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = mat.Row(nil, i, m.dense)
	}
	return out
}

// PathCost sums consecutive edge costs along stops.
func (m *DistanceMatrix) PathCost(stops []int) float64 {
	cost := 0.0
	for i := 0; i+1 < len(stops); i++ {
		cost += m.At(stops[i], stops[i+1])
	}
	return cost
}
