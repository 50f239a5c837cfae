package domain

// Trip is one depot-to-depot run of a single vehicle.
// Stops begin and end with the depot index 0.
type Trip struct {
	Stops []int
	Load  float64
	Cost  float64
}

// Start a trip at the depot.
func NewTrip() *Trip {
	return &Trip{Stops: []int{0}}
}

// Fits reports whether a customer of the given demand can join the trip.
func (t *Trip) Fits(demand, capacity float64) bool {
	return t.Load+demand <= capacity
}

// Add appends a customer and its demand. Capacity is the caller's concern.
func (t *Trip) Add(customer int, demand float64) {
	t.Stops = append(t.Stops, customer)
	t.Load += demand
}

// Close returns the trip to the depot.
func (t *Trip) Close() {
	t.Stops = append(t.Stops, 0)
}

// Empty reports whether the trip visits no customer.
func (t *Trip) Empty() bool {
	return len(t.Stops) <= 2
}

// Customers returns the interior stops.
func (t Trip) Customers() []int {
	if len(t.Stops) <= 2 {
		return nil
	}
	return t.Stops[1 : len(t.Stops)-1]
}
