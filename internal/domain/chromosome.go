package domain

// Chromosome encodes a candidate solution as a depot-framed permutation:
// [0, c1, c2, ..., cN-1, 0] with every customer exactly once in between.
type Chromosome []int

// Clone returns an independent copy.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// Valid reports whether c is depot-framed and its interior is a bijection
// over {1, ..., locations-1}.
func (c Chromosome) Valid(locations int) bool {
	if locations < 1 || len(c) != locations+1 {
		return false
	}
	if c[0] != 0 || c[len(c)-1] != 0 {
		return false
	}

	seen := make([]bool, locations)
	for _, g := range c[1 : len(c)-1] {
		if g < 1 || g >= locations || seen[g] {
			return false
		}
		seen[g] = true
	}
	return true
}

// Evaluated pairs a chromosome with its total route cost.
type Evaluated struct {
	Route Chromosome
	Cost  float64
}
