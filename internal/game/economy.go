package game

import (
	"math/rand"

	"github.com/vovakirdan/blind-surfers/internal/config"
)

// Reward is the prize inside a mystery box.
type Reward int

const (
	RewardCoins Reward = iota
	RewardKeys
	RewardTrophies
	rewardCount
)

func (r Reward) String() string {
	switch r {
	case RewardCoins:
		return "Coins"
	case RewardKeys:
		return "Keys"
	case RewardTrophies:
		return "Trophies"
	default:
		return "?"
	}
}

// Economy holds currency and the upgradeable power-up durations.
// Balances never go negative: every purchase checks before it debits.
type Economy struct {
	Coins        int
	Keys         int
	MysteryBoxes int

	durations   map[PowerUpKind]float64
	costs       map[PowerUpKind]int
	increment   float64
	fallback    float64
	boxCost     int
	coinsPerBox int
}

// NewEconomy builds an economy from configuration. Unknown keys in the
// config tables are ignored; Validate rejects them earlier.
func NewEconomy(cfg config.EconomyConfig) *Economy {
	e := &Economy{
		durations:   make(map[PowerUpKind]float64),
		costs:       make(map[PowerUpKind]int),
		increment:   cfg.UpgradeIncrement,
		fallback:    cfg.FallbackDuration,
		boxCost:     cfg.MysteryBoxCost,
		coinsPerBox: cfg.MysteryBoxCoinReward,
	}
	if e.fallback <= 0 {
		e.fallback = 10
	}
	for name, d := range cfg.PowerUpBaseDuration {
		if kind, err := ParsePowerUpKind(name); err == nil {
			e.durations[kind] = d
		}
	}
	for name, c := range cfg.UpgradeCosts {
		if kind, err := ParsePowerUpKind(name); err == nil {
			e.costs[kind] = c
		}
	}
	return e
}

// Duration returns how long a picked-up power-up lasts.
func (e *Economy) Duration(kind PowerUpKind) float64 {
	if d, ok := e.durations[kind]; ok {
		return d
	}
	return e.fallback
}

// UpgradeCost returns the price of upgrading kind.
func (e *Economy) UpgradeCost(kind PowerUpKind) (int, bool) {
	c, ok := e.costs[kind]
	return c, ok
}

// BuyUpgrade extends kind's duration by the upgrade increment. It fails
// without changing anything if kind is not for sale or coins are short.
func (e *Economy) BuyUpgrade(kind PowerUpKind) bool {
	cost, ok := e.costs[kind]
	if !ok || cost <= 0 || e.Coins < cost {
		return false
	}
	e.Coins -= cost
	e.durations[kind] = e.Duration(kind) + e.increment
	return true
}

// MysteryBoxCost returns the price of one box.
func (e *Economy) MysteryBoxCost() int {
	return e.boxCost
}

// BuyMysteryBox exchanges coins for a box.
func (e *Economy) BuyMysteryBox() bool {
	if e.Coins < e.boxCost {
		return false
	}
	e.Coins -= e.boxCost
	e.MysteryBoxes++
	return true
}

// OpenMysteryBox consumes a box and applies a random reward. It returns
// false when there is no box to open.
func (e *Economy) OpenMysteryBox(rng *rand.Rand) (Reward, bool) {
	if e.MysteryBoxes <= 0 {
		return 0, false
	}
	e.MysteryBoxes--
	reward := Reward(rng.Intn(int(rewardCount)))
	switch reward {
	case RewardCoins:
		e.Coins += e.coinsPerBox
	case RewardKeys:
		e.Keys++
	case RewardTrophies:
	}
	return reward, true
}

// AddCoins credits n coins.
func (e *Economy) AddCoins(n int) {
	if n > 0 {
		e.Coins += n
	}
}

// UseKey spends one key if available.
func (e *Economy) UseKey() bool {
	if e.Keys <= 0 {
		return false
	}
	e.Keys--
	return true
}
