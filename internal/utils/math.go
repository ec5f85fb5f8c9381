package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// IntFromRoll maps a roll in [0,1) onto the inclusive range [min, max].
// Services draw rolls from an injected source so tests stay deterministic.
func IntFromRoll(min, max int, roll float64) int {
	if min >= max {
		return min
	}
	v := min + int(roll*float64(max-min+1))
	if v > max {
		return max
	}
	return v
}

// FloatFromRoll maps a roll in [0,1) onto [min, max).
func FloatFromRoll(min, max, roll float64) float64 {
	return min + roll*(max-min)
}
