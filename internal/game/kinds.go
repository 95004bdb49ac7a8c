// Package game implements the audio runner simulation: three lanes of
// approaching entities, the player's timed abilities, power-up effects, the
// shop economy, achievements and the menu/run/game-over state machine.
//
// The package has no rendering. Everything the player perceives is emitted
// through the Audio and Speaker capabilities.
package game

import "fmt"

// Lane is one of the three player positions, left to right.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
	LaneCount // Sentinel for counting lanes
)

// Valid reports whether the lane is on the track.
func (l Lane) Valid() bool {
	return l >= LaneLeft && l < LaneCount
}

// String returns the spoken name of the lane.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneCenter:
		return "center"
	case LaneRight:
		return "right"
	default:
		return "?"
	}
}

// Height is the vertical extent of an obstacle.
type Height int

const (
	HeightLow  Height = iota // Jump over it
	HeightHigh               // Roll under it
)

func (h Height) String() string {
	switch h {
	case HeightLow:
		return "low"
	case HeightHigh:
		return "high"
	default:
		return "?"
	}
}

// ObstacleKind selects how an obstacle sounds on approach.
type ObstacleKind int

const (
	ObstacleBarrier ObstacleKind = iota
	ObstacleTrain
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBarrier:
		return "barrier"
	case ObstacleTrain:
		return "train"
	default:
		return "?"
	}
}

// PowerUpKind enumerates collectible power-ups.
type PowerUpKind int

const (
	PowerUpJetpack PowerUpKind = iota
	PowerUpSuperSneakers
	PowerUpMagnet
	PowerUpMultiplier
	PowerUpHoverboard
	PowerUpSeasonToken
	PowerUpCount // Sentinel for counting kinds
)

// UpgradeableKinds are the power-ups sold in the shop, in shop order.
var UpgradeableKinds = []PowerUpKind{
	PowerUpJetpack,
	PowerUpSuperSneakers,
	PowerUpMagnet,
	PowerUpMultiplier,
	PowerUpHoverboard,
}

// String returns the configuration key of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpJetpack:
		return "jetpack"
	case PowerUpSuperSneakers:
		return "super_sneakers"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpHoverboard:
		return "hoverboard"
	case PowerUpSeasonToken:
		return "season_token"
	default:
		return "?"
	}
}

// Title returns the name read out in menus.
func (k PowerUpKind) Title() string {
	switch k {
	case PowerUpJetpack:
		return "Jetpack"
	case PowerUpSuperSneakers:
		return "Super Sneakers"
	case PowerUpMagnet:
		return "Magnet"
	case PowerUpMultiplier:
		return "Multiplier"
	case PowerUpHoverboard:
		return "Hoverboard"
	case PowerUpSeasonToken:
		return "Season Token"
	default:
		return "?"
	}
}

// ParsePowerUpKind maps a configuration key back to its kind.
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	for k := PowerUpKind(0); k < PowerUpCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown power-up %q", s)
}
