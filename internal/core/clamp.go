// Package core provides the input vocabulary and small numeric helpers shared
// by the simulation and the platform layer. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
