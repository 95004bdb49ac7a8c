package core

// RuntimeConfig contains the frame pacing and RNG settings handed to the
// session by the platform layer.
type RuntimeConfig struct {
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// MaxFrameDelta caps the measured time between frames. A stalled terminal
// or a suspended process must not teleport every entity into the player.
const MaxFrameDelta = 0.25

// FrameDelta converts a measured frame duration in seconds into a usable
// simulation delta. Negative values become zero and long stalls are capped.
func FrameDelta(seconds float64) float64 {
	return ClampF(seconds, 0, MaxFrameDelta)
}
