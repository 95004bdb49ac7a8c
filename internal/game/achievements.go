package game

import (
	"fmt"

	"github.com/vovakirdan/blind-surfers/internal/config"
)

// Stats are the cumulative counters achievements are measured against.
type Stats struct {
	Jumps      int
	TotalCoins int
	Score      int
}

func (s Stats) value(stat string) int {
	switch stat {
	case "jumps":
		return s.Jumps
	case "total_coins":
		return s.TotalCoins
	case "score":
		return s.Score
	default:
		return 0
	}
}

type achievement struct {
	name      string
	stat      string
	threshold int
	unlocked  bool
}

// Achievements unlocks threshold achievements in a fixed priority order,
// at most one per check. After an unlock, further unlocks wait for the
// pause window so each announcement can be heard.
type Achievements struct {
	list    []*achievement
	pause   float64
	holdOff float64
}

// NewAchievements creates an evaluator. The order of defs is the priority.
func NewAchievements(defs []config.AchievementConfig, pause float64) *Achievements {
	a := &Achievements{pause: pause}
	for _, d := range defs {
		a.list = append(a.list, &achievement{name: d.Name, stat: d.Stat, threshold: d.Threshold})
	}
	return a
}

// Tick advances the pause window.
func (a *Achievements) Tick(dt float64) {
	if a.holdOff > 0 {
		a.holdOff = max(0, a.holdOff-dt)
	}
}

// Check returns the highest-priority achievement newly met by stats, if any.
func (a *Achievements) Check(stats Stats) (string, bool) {
	if a.holdOff > 0 {
		return "", false
	}
	for _, ach := range a.list {
		if ach.unlocked || stats.value(ach.stat) < ach.threshold {
			continue
		}
		ach.unlocked = true
		a.holdOff = a.pause
		return ach.name, true
	}
	return "", false
}

// Status returns one "<name> - Locked|Unlocked" line per achievement.
func (a *Achievements) Status() []string {
	lines := make([]string, 0, len(a.list))
	for _, ach := range a.list {
		state := "Locked"
		if ach.unlocked {
			state = "Unlocked"
		}
		lines = append(lines, fmt.Sprintf("%s - %s", ach.name, state))
	}
	return lines
}
