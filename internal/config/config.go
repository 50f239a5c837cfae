package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Arnab-iitkgp/CargoRoute/internal/services"
	"gopkg.in/yaml.v3"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integer settings. An unparsable value is an error rather
// than a silent fallback.
func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// GetFloat is Get for float settings.
func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

// solverFile mirrors config/solver.yaml. Pointer fields keep absent keys at
// their defaults.
type solverFile struct {
	PopulationSize *int     `yaml:"populationSize"`
	Generations    *int     `yaml:"generations"`
	MutationRate   *float64 `yaml:"mutationRate"`
	EliteCount     *int     `yaml:"eliteCount"`
	TournamentSize *int     `yaml:"tournamentSize"`
	Workers        *int     `yaml:"workers"`
}

// LoadSolverConfig reads genetic algorithm tuning from a YAML file.
// A missing file yields services.DefaultConfig; keys absent from the file keep
// their default values. The result is validated.
func LoadSolverConfig(path string) (services.Config, error) {
	cfg := services.DefaultConfig()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return services.Config{}, fmt.Errorf("load solver config %q: %w", path, err)
	}

	var f solverFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return services.Config{}, fmt.Errorf("load solver config %q: decode: %w", path, err)
	}

	if f.PopulationSize != nil {
		cfg.PopulationSize = *f.PopulationSize
	}
	if f.Generations != nil {
		cfg.Generations = *f.Generations
	}
	if f.MutationRate != nil {
		cfg.MutationRate = *f.MutationRate
	}
	if f.EliteCount != nil {
		cfg.EliteCount = *f.EliteCount
	}
	if f.TournamentSize != nil {
		cfg.TournamentSize = *f.TournamentSize
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}

	if err := cfg.Validate(); err != nil {
		return services.Config{}, fmt.Errorf("load solver config %q: %w", path, err)
	}
	return cfg, nil
}

// Database resolves DB_DRIVER and its data source. sqlite reads DB_PATH,
// pgx requires DATABASE_URL.
func Database(defaultDriver string) (driver, dsn string, err error) {
	driver = strings.ToLower(Get("DB_DRIVER", defaultDriver))
	switch driver {
	case "sqlite":
		return driver, Get("DB_PATH", "data/app.db"), nil
	case "pgx":
		dsn = Get("DATABASE_URL", "")
		if dsn == "" {
			return "", "", errors.New("config: DATABASE_URL is required when DB_DRIVER=pgx")
		}
		return driver, dsn, nil
	default:
		return "", "", fmt.Errorf("config: DB_DRIVER must be sqlite or pgx (got %q)", driver)
	}
}
