package cache

import (
	"encoding/json"
	"fmt"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// Matrices are stored as JSON row arrays in every backend.
func encodeMatrix(m *domain.DistanceMatrix) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("encode matrix: matrix is nil")
	}
	b, err := json.Marshal(m.Rows())
	if err != nil {
		return nil, fmt.Errorf("encode matrix: %w", err)
	}
	return b, nil
}

func decodeMatrix(b []byte) (*domain.DistanceMatrix, error) {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	m, err := domain.DistanceMatrixFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	return m, nil
}
