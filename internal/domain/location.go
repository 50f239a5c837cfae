package domain

// Immutable 2-D coordinate of a stop.
// Planar metrics read X and Y as cartesian units; the haversine metric reads
// X as latitude and Y as longitude, the order map clients send.
type Location struct {
	X float64
	Y float64
}

// Return coordinates as [x, y] for external API compatibility.
func (l Location) ToList() []float64 { return []float64{l.X, l.Y} }

// Build a Location from a 2-element [x, y] pair.
func LocationFromList(pair []float64) (Location, bool) {
	if len(pair) != 2 {
		return Location{}, false
	}
	return Location{X: pair[0], Y: pair[1]}, true
}
