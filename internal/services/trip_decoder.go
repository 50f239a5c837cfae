package services

import "github.com/Arnab-iitkgp/CargoRoute/internal/domain"

// DecodeTrips splits a chromosome into capacity-feasible trips.
//
// Customers are taken in chromosome order. When the next customer would push
// the running load over capacity, the current trip returns to the depot and a
// new trip starts with that customer. Order is never reshuffled, so a
// customer heavier than capacity must be rejected by validation beforehand.
// A trailing depot-only trip is dropped.
func DecodeTrips(route domain.Chromosome, demands []float64, capacity float64) []domain.Trip {
	trips := make([]domain.Trip, 0, 4)
	trip := domain.NewTrip()

	for i := 1; i < len(route)-1; i++ {
		customer := route[i]
		demand := demands[customer]

		if !trip.Fits(demand, capacity) {
			trip.Close()
			trips = append(trips, *trip)
			trip = domain.NewTrip()
		}
		trip.Add(customer, demand)
	}

	trip.Close()
	if !trip.Empty() {
		trips = append(trips, *trip)
	}

	return trips
}
