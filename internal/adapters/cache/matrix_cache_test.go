package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/repositories"
	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

func testMatrix(t *testing.T) *domain.DistanceMatrix {
	t.Helper()
	m, err := domain.DistanceMatrixFromRows([][]float64{
		{0, 1.25, 2},
		{1.5, 0, 3},
		{2, 3.75, 0},
	})
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	return m
}

func assertSameMatrix(t *testing.T, got, want *domain.DistanceMatrix) {
	t.Helper()
	if got.Size() != want.Size() {
		t.Fatalf("size = %d, want %d", got.Size(), want.Size())
	}
	for i := 0; i < want.Size(); i++ {
		for j := 0; j < want.Size(); j++ {
			if got.At(i, j) != want.At(i, j) {
				t.Fatalf("at(%d,%d) = %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestSqliteMatrixCache(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	c := NewSqliteMatrixCache(db)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "matrix:k"); err != nil || ok {
		t.Fatalf("get on empty = ok %v err %v, want miss", ok, err)
	}

	want := testMatrix(t)
	if err := c.Put(ctx, "matrix:k", want); err != nil {
		t.Fatalf("put: %v", err)
	}
	// Second put replaces.
	if err := c.Put(ctx, "matrix:k", want); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, ok, err := c.Get(ctx, "matrix:k")
	if err != nil || !ok {
		t.Fatalf("get = ok %v err %v, want hit", ok, err)
	}
	assertSameMatrix(t, got, want)

	if _, _, err := c.Get(ctx, " "); err == nil {
		t.Fatalf("get with blank key err = nil, want error")
	}
}

func TestRedisMatrixCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisMatrixCache(rdb, time.Minute)
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "matrix:r"); err != nil || ok {
		t.Fatalf("get on empty = ok %v err %v, want miss", ok, err)
	}

	want := testMatrix(t)
	if err := c.Put(ctx, "matrix:r", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "matrix:r")
	if err != nil || !ok {
		t.Fatalf("get = ok %v err %v, want hit", ok, err)
	}
	assertSameMatrix(t, got, want)

	mr.FastForward(2 * time.Minute)
	if _, ok, err := c.Get(ctx, "matrix:r"); err != nil || ok {
		t.Fatalf("get after ttl = ok %v err %v, want miss", ok, err)
	}
}

func TestRedisMatrixCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	if err := mr.Set("matrix:bad", "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := NewRedisMatrixCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 0)
	defer c.Close()

	if _, _, err := c.Get(context.Background(), "matrix:bad"); err == nil {
		t.Fatalf("err = nil, want decode error")
	}
}

func TestNewRedisMatrixCacheFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := NewRedisMatrixCacheFromURL(context.Background(), "redis://"+mr.Addr(), 0)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Close()

	if _, err := NewRedisMatrixCacheFromURL(context.Background(), "::not a url", 0); err == nil {
		t.Fatalf("err = nil, want parse error")
	}
}

func TestEncodeMatrixNil(t *testing.T) {
	if _, err := encodeMatrix(nil); err == nil {
		t.Fatalf("err = nil, want error")
	}
	if _, err := decodeMatrix([]byte(`[[0,1],[1]]`)); err == nil {
		t.Fatalf("ragged rows err = nil, want error")
	}
}
