package services

import (
	"fmt"
	"math/rand"

	"github.com/Arnab-iitkgp/CargoRoute/internal/domain"
)

// OrderCrossover (OX) combines two depot-framed parents into one child.
//
// A random interior range [start, end) is copied from p1 at the same
// positions. The remaining interior positions are filled left to right with
// p2's customers in p2's order, skipping those already copied. Each customer
// lands in the child exactly once.
func OrderCrossover(p1, p2 domain.Chromosome, rng *rand.Rand) domain.Chromosome {
	n := len(p1)
	if len(p2) != n {
		panic(fmt.Sprintf("order crossover: parent lengths differ (%d != %d)", n, len(p2)))
	}

	child := make(domain.Chromosome, n)
	if n < 3 {
		return child
	}

	// 1 <= start < end <= n-1 keeps both depot positions out of the segment.
	start := 1 + rng.Intn(n-2)
	end := start + 1 + rng.Intn(n-start-1)

	copied := make([]bool, n)
	for i := start; i < end; i++ {
		child[i] = p1[i]
		copied[p1[i]] = true
	}

	next := 1
	for i := 1; i < n-1; i++ {
		if i >= start && i < end {
			continue
		}
		for copied[p2[next]] {
			next++
		}
		child[i] = p2[next]
		next++
	}

	child[0] = 0
	child[n-1] = 0
	return child
}
