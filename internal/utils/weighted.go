package utils

// WeightedIndex picks an index with probability proportional to its weight.
// roll must be in [0,1). The draw walks the candidates subtracting each weight
// from roll×total and stops once the remainder is non-positive; floating-point
// drift that never reaches zero falls back to the last candidate.
// Returns -1 when there are no candidates or the total weight is not positive.
func WeightedIndex(weights []float64, roll float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	remaining := roll * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		remaining -= w
		if remaining <= 0 {
			return i
		}
	}

	return len(weights) - 1
}

// Chance reports whether a roll in [0,1) lands under probability p.
func Chance(p, roll float64) bool {
	return roll < p
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
