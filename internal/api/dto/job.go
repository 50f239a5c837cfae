package dto

import (
	"fmt"
	"time"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// SolveRequest is the body of POST /api/solve-vrp.
// Locations are [x, y] pairs; index 0 is the depot.
type SolveRequest struct {
	Title           string      `json:"title"`
	Locations       [][]float64 `json:"locations"`
	Demands         []float64   `json:"demands"`
	VehicleCapacity float64     `json:"vehicleCapacity"`
	NumVehicles     int         `json:"numVehicles"`
	Metric          string      `json:"metric"`
	Seed            *int64      `json:"seed"`
}

type TripResponse struct {
	Stops []int   `json:"stops"`
	Load  float64 `json:"load"`
	Cost  float64 `json:"cost"`
}

type GenerationResponse struct {
	Generation int     `json:"generation"`
	BestEver   float64 `json:"bestEver"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stdDev"`
}

type ResultResponse struct {
	TotalCost float64        `json:"totalCost"`
	Trips     []TripResponse `json:"trips"`
	// BestRoute lists each trip's stops, the shape map clients draw.
	BestRoute        [][]int              `json:"bestRoute"`
	DistanceMatrix   [][]float64          `json:"distanceMatrix"`
	GenerationsRun   int                  `json:"generationsRun"`
	BaselineCost     float64              `json:"baselineCost"`
	VehicleShortfall int                  `json:"vehicleShortfall"`
	History          []GenerationResponse `json:"history,omitempty"`
}

type JobResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Locations       [][]float64     `json:"locations"`
	Demands         []float64       `json:"demands"`
	VehicleCapacity float64         `json:"vehicleCapacity"`
	NumVehicles     int             `json:"numVehicles"`
	Metric          string          `json:"metric"`
	Seed            int64           `json:"seed"`
	Result          *ResultResponse `json:"result"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type SolveResponse struct {
	Message string      `json:"message"`
	Job     JobResponse `json:"job"`
}

type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// Instance converts the request into a domain instance. Only the [x, y]
// shape is checked here; domain validation happens in the solver.
func (req SolveRequest) Instance() (domain.Instance, *domain.ValidationError) {
	locations := make([]domain.Location, len(req.Locations))
	for i, pair := range req.Locations {
		l, ok := domain.LocationFromList(pair)
		if !ok {
			return domain.Instance{}, &domain.ValidationError{
				Kind:   domain.KindInvalidLocation,
				Field:  fmt.Sprintf("locations[%d]", i),
				Detail: fmt.Sprintf("want an [x, y] pair, got %d values", len(pair)),
			}
		}
		locations[i] = l
	}

	return domain.Instance{
		Locations:       locations,
		Demands:         req.Demands,
		VehicleCapacity: req.VehicleCapacity,
		NumVehicles:     req.NumVehicles,
	}, nil
}

// NewJobResponse renders a job and, when solved, its result.
func NewJobResponse(j *domain.Job) JobResponse {
	res := JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Locations:       make([][]float64, len(j.Instance.Locations)),
		Demands:         j.Instance.Demands,
		VehicleCapacity: j.Instance.VehicleCapacity,
		NumVehicles:     j.Instance.NumVehicles,
		Metric:          j.Metric,
		Seed:            j.Seed,
		CreatedAt:       j.CreatedAt,
	}
	for i, l := range j.Instance.Locations {
		res.Locations[i] = l.ToList()
	}

	if s := j.Result; s != nil {
		result := &ResultResponse{
			TotalCost:        s.TotalCost,
			Trips:            make([]TripResponse, 0, len(s.Trips)),
			BestRoute:        make([][]int, 0, len(s.Trips)),
			GenerationsRun:   s.GenerationsRun,
			BaselineCost:     s.BaselineCost,
			VehicleShortfall: s.VehicleShortfall,
		}
		for _, t := range s.Trips {
			result.Trips = append(result.Trips, TripResponse{Stops: t.Stops, Load: t.Load, Cost: t.Cost})
			result.BestRoute = append(result.BestRoute, t.Stops)
		}
		if s.DistanceMatrix != nil {
			result.DistanceMatrix = s.DistanceMatrix.Rows()
		}
		for _, g := range s.History {
			result.History = append(result.History, GenerationResponse(g))
		}
		res.Result = result
	}

	return res
}
