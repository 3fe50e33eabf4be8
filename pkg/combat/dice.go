package combat

import "math/rand/v2"

// Dice is the source of randomness for combat rolls. Encounters take it
// as a dependency so tests can script every roll.
type Dice interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

type randDice struct{}

// NewDice returns the default Dice backed by the shared math/rand/v2
// generator.
func NewDice() Dice {
	return randDice{}
}

func (randDice) IntN(n int) int   { return rand.IntN(n) }
func (randDice) Float64() float64 { return rand.Float64() }
