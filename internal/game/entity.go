package game

import "fmt"

// Entity is the state shared by everything that scrolls toward the player.
// Distance only decreases while Active, and an entity never reactivates.
type Entity struct {
	Lane     Lane
	Distance float64
	Active   bool
}

func (e *Entity) base() *Entity { return e }

// Obstacle must be jumped, rolled under, or survived with a power-up.
type Obstacle struct {
	Entity
	Kind   ObstacleKind
	Height Height
	Tag    string // Loop tag of its approach sound
	Honked bool   // Train horn already sounded
}

// LoopSound returns the looping cue that announces the obstacle.
func (o *Obstacle) LoopSound() string {
	switch o.Kind {
	case ObstacleBarrier:
		if o.Height == HeightHigh {
			return "barrier_high"
		}
		return "barrier_low"
	case ObstacleTrain:
		return "train_rumble"
	default:
		return ""
	}
}

// PowerUp is a collectible effect on the track.
type PowerUp struct {
	Entity
	Kind PowerUpKind
}

// Letter is a word hunt letter on the track.
type Letter struct {
	Entity
	Letter string
}

// Coin is a single coin on the track.
type Coin struct {
	Entity
}

func obstacleTag(seq int) string {
	return fmt.Sprintf("obstacle_%d", seq)
}
