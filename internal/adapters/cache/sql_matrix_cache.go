package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/platform/obs"
)

// SQLMatrixCache is a Postgres-backed cache of built distance matrices.
type SQLMatrixCache struct {
	DB *sql.DB
}

func NewSQLMatrixCache(db *sql.DB) *SQLMatrixCache {
	return &SQLMatrixCache{DB: db}
}

// Fetch a cached matrix; ok is false on a miss.
func (s *SQLMatrixCache) Get(ctx context.Context, key string) (_ *domain.DistanceMatrix, _ bool, err error) {
	defer obs.Time(ctx, "matrix.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("matrix cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get matrix cache: key must not be empty")
	}

	var raw []byte
	err = s.DB.QueryRowContext(ctx, `
	SELECT matrix
    FROM matrix_cache
    WHERE cache_key = $1;
	`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache: query matrix_cache table: %w", err)
	}

	m, err := decodeMatrix(raw)
	if err != nil {
		return nil, false, fmt.Errorf("get matrix cache key=%q: %w", key, err)
	}
	return m, true, nil
}

// Store a matrix, replacing any previous entry for key.
func (s *SQLMatrixCache) Put(ctx context.Context, key string, m *domain.DistanceMatrix) (err error) {
	defer obs.Time(ctx, "matrix.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("insert matrix cache: key must not be empty")
	}

	raw, err := encodeMatrix(m)
	if err != nil {
		return fmt.Errorf("insert matrix cache: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT INTO matrix_cache (cache_key, size, matrix)
    VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET size = EXCLUDED.size,
		matrix = EXCLUDED.matrix;
	`, key, m.Size(), string(raw)); err != nil {
		return fmt.Errorf("insert matrix cache key=%q: %w", key, err)
	}

	return nil
}
