package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// createdAtLayout is fixed width so text ordering matches time ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// Storage shapes for the JSON columns of the jobs table.

type instanceRecord struct {
	Locations       [][]float64 `json:"locations"`
	Demands         []float64   `json:"demands"`
	VehicleCapacity float64     `json:"vehicleCapacity"`
	NumVehicles     int         `json:"numVehicles"`
}

type tripRecord struct {
	Stops []int   `json:"stops"`
	Load  float64 `json:"load"`
	Cost  float64 `json:"cost"`
}

type generationRecord struct {
	Generation int     `json:"generation"`
	BestEver   float64 `json:"bestEver"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stdDev"`
}

type resultRecord struct {
	Trips            []tripRecord       `json:"trips"`
	TotalCost        float64            `json:"totalCost"`
	DistanceMatrix   [][]float64        `json:"distanceMatrix"`
	GenerationsRun   int                `json:"generationsRun"`
	BaselineCost     float64            `json:"baselineCost"`
	VehicleShortfall int                `json:"vehicleShortfall"`
	History          []generationRecord `json:"history,omitempty"`
}

// jobRow is one jobs table row before decoding.
type jobRow struct {
	ID        string
	Title     string
	Metric    string
	Seed      int64
	Instance  string
	Result    *string
	CreatedAt string
}

func encodeJob(job *domain.Job) (jobRow, error) {
	inst := instanceRecord{
		Locations:       make([][]float64, len(job.Instance.Locations)),
		Demands:         job.Instance.Demands,
		VehicleCapacity: job.Instance.VehicleCapacity,
		NumVehicles:     job.Instance.NumVehicles,
	}
	for i, l := range job.Instance.Locations {
		inst.Locations[i] = l.ToList()
	}

	instJSON, err := json.Marshal(inst)
	if err != nil {
		return jobRow{}, fmt.Errorf("encode job %s: instance: %w", job.ID, err)
	}

	row := jobRow{
		ID:        job.ID,
		Title:     job.Title,
		Metric:    job.Metric,
		Seed:      job.Seed,
		Instance:  string(instJSON),
		CreatedAt: job.CreatedAt.UTC().Format(createdAtLayout),
	}

	if job.Result != nil {
		resJSON, err := json.Marshal(toResultRecord(job.Result))
		if err != nil {
			return jobRow{}, fmt.Errorf("encode job %s: result: %w", job.ID, err)
		}
		s := string(resJSON)
		row.Result = &s
	}

	return row, nil
}

func toResultRecord(s *domain.Solution) resultRecord {
	rec := resultRecord{
		Trips:            make([]tripRecord, len(s.Trips)),
		TotalCost:        s.TotalCost,
		GenerationsRun:   s.GenerationsRun,
		BaselineCost:     s.BaselineCost,
		VehicleShortfall: s.VehicleShortfall,
	}
	for i, t := range s.Trips {
		rec.Trips[i] = tripRecord{Stops: t.Stops, Load: t.Load, Cost: t.Cost}
	}
	if s.DistanceMatrix != nil {
		rec.DistanceMatrix = s.DistanceMatrix.Rows()
	}
	for _, g := range s.History {
		rec.History = append(rec.History, generationRecord(g))
	}
	return rec
}

func (r jobRow) decode() (*domain.Job, error) {
	var inst instanceRecord
	if err := json.Unmarshal([]byte(r.Instance), &inst); err != nil {
		return nil, fmt.Errorf("decode job %s: instance: %w", r.ID, err)
	}

	locations := make([]domain.Location, len(inst.Locations))
	for i, pair := range inst.Locations {
		l, ok := domain.LocationFromList(pair)
		if !ok {
			return nil, fmt.Errorf("decode job %s: location %d is not an [x, y] pair", r.ID, i)
		}
		locations[i] = l
	}

	createdAt, err := time.Parse(createdAtLayout, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode job %s: created_at: %w", r.ID, err)
	}

	job := &domain.Job{
		ID:     r.ID,
		Title:  r.Title,
		Metric: r.Metric,
		Seed:   r.Seed,
		Instance: domain.Instance{
			Locations:       locations,
			Demands:         inst.Demands,
			VehicleCapacity: inst.VehicleCapacity,
			NumVehicles:     inst.NumVehicles,
		},
		CreatedAt: createdAt,
	}

	if r.Result == nil {
		return job, nil
	}

	var res resultRecord
	if err := json.Unmarshal([]byte(*r.Result), &res); err != nil {
		return nil, fmt.Errorf("decode job %s: result: %w", r.ID, err)
	}

	sol := &domain.Solution{
		Trips:            make([]domain.Trip, len(res.Trips)),
		TotalCost:        res.TotalCost,
		GenerationsRun:   res.GenerationsRun,
		BaselineCost:     res.BaselineCost,
		VehicleShortfall: res.VehicleShortfall,
	}
	for i, t := range res.Trips {
		sol.Trips[i] = domain.Trip{Stops: t.Stops, Load: t.Load, Cost: t.Cost}
	}
	for _, g := range res.History {
		sol.History = append(sol.History, domain.GenerationStats(g))
	}
	if len(res.DistanceMatrix) > 0 {
		m, err := domain.DistanceMatrixFromRows(res.DistanceMatrix)
		if err != nil {
			return nil, fmt.Errorf("decode job %s: distance matrix: %w", r.ID, err)
		}
		sol.DistanceMatrix = m
	}
	job.Result = sol

	return job, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (*domain.Job, error) {
	var r jobRow
	if err := s.Scan(&r.ID, &r.Title, &r.Metric, &r.Seed, &r.Instance, &r.Result, &r.CreatedAt); err != nil {
		return nil, err
	}
	return r.decode()
}
