package game

import (
	"math/rand"
	"time"
)

// Rand is the random source every resolver draws from. Injecting it keeps
// the resolvers pure and lets tests force specific outcomes.
type Rand interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n).
	Intn(n int) int
}

// NewSource returns the production random source.
func NewSource() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
