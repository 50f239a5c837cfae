// Command solve runs the genetic VRP solver on an instance file and prints
// the best trips found.
//
//	solve -in instance.json -metric haversine -seed 7
//	cat instance.json | solve -json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Arnab-iitkgp/CargoRoute/internal/adapters/distance"
	"github.com/Arnab-iitkgp/CargoRoute/internal/api/dto"
	"github.com/Arnab-iitkgp/CargoRoute/internal/config"
	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
	"github.com/Arnab-iitkgp/CargoRoute/internal/services"
)

func main() {
	in := flag.String("in", "-", "instance JSON file (- for stdin)")
	metric := flag.String("metric", "", "distance metric: euclidean or haversine (overrides the file)")
	seed := flag.Int64("seed", 0, "random seed (default: the file's seed, else time-based)")
	cfgPath := flag.String("config", "config/solver.yaml", "solver YAML config")
	asJSON := flag.Bool("json", false, "print the job as JSON")
	verbose := flag.Bool("v", false, "log generation progress")
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	req, err := readRequest(*in)
	if err != nil {
		log.Fatal(err)
	}
	if *metric != "" {
		req.Metric = *metric
	}
	if seedSet {
		req.Seed = seed
	}

	cfg, err := config.LoadSolverConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	var progress *log.Logger
	if *verbose {
		progress = log.New(os.Stderr, "", log.LstdFlags)
	}
	solver, err := services.NewGeneticSolver(cfg, progress)
	if err != nil {
		log.Fatal(err)
	}

	inst, verr := req.Instance()
	if verr != nil {
		log.Fatal(verr)
	}

	job, err := services.SolveJob(context.Background(), services.SolveJobRequest{
		Title:    req.Title,
		Instance: inst,
		Metric:   req.Metric,
		Seed:     req.Seed,
	}, solver, distance.NewMetric, nil, nil)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.NewJobResponse(job)); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := writeTrips(os.Stdout, job); err != nil {
		log.Fatal(err)
	}
}

func readRequest(path string) (dto.SolveRequest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return dto.SolveRequest{}, fmt.Errorf("read instance: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req dto.SolveRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return dto.SolveRequest{}, fmt.Errorf("read instance: decode: %w", err)
	}
	return req, nil
}

// writeTrips prints one line per trip with its load, then the totals.
func writeTrips(w io.Writer, job *domain.Job) error {
	sol := job.Result
	capacity := job.Instance.VehicleCapacity

	var b strings.Builder
	fmt.Fprintf(&b, "%s (metric=%s seed=%d)\n", job.Title, job.Metric, job.Seed)
	fmt.Fprintln(&b, "Trips:")
	for i, t := range sol.Trips {
		stops := make([]string, len(t.Stops))
		for j, s := range t.Stops {
			stops[j] = strconv.Itoa(s)
		}
		fmt.Fprintf(&b, "  %d. %s | load %g/%g | cost %.4f\n",
			i+1, strings.Join(stops, " -> "), t.Load, capacity, t.Cost)
	}
	fmt.Fprintf(&b, "Total cost: %.4f (nearest neighbour baseline %.4f)\n", sol.TotalCost, sol.BaselineCost)
	fmt.Fprintf(&b, "Generations: %d\n", sol.GenerationsRun)
	if sol.VehicleShortfall > 0 {
		fmt.Fprintf(&b, "Warning: %d trips exceed numVehicles=%d\n", sol.VehicleShortfall, job.Instance.NumVehicles)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
