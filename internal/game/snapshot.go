package game

// EffectStatus is one active ledger entry.
type EffectStatus struct {
	Kind      PowerUpKind
	Remaining float64
}

// Snapshot is a read-only copy of what a display needs for one frame.
type Snapshot struct {
	State        State
	Score        int
	Multiplier   int
	Speed        float64
	Lane         Lane
	Jumping      bool
	Rolling      bool
	Hoverboard   bool
	Effects      []EffectStatus
	Coins        int
	Keys         int
	MysteryBoxes int
	Word         string
	WordProgress string
	SeasonTokens int
	Obstacles    int
	MenuTitle    string
	MenuItems    []string
	MenuIndex    int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.state,
		Score:        s.score,
		Multiplier:   s.multiplier,
		Speed:        s.speed,
		Lane:         s.player.Lane,
		Jumping:      s.player.Jumping(),
		Rolling:      s.player.Rolling(),
		Hoverboard:   s.player.HoverboardActive(),
		Coins:        s.economy.Coins,
		Keys:         s.economy.Keys,
		MysteryBoxes: s.economy.MysteryBoxes,
		Word:         s.words.Word(),
		WordProgress: s.words.Progress(),
		SeasonTokens: s.season.Tokens,
		Obstacles:    len(s.obstacles),
	}
	for _, kind := range s.ledger.Kinds() {
		d, _ := s.ledger.Remaining(kind)
		snap.Effects = append(snap.Effects, EffectStatus{Kind: kind, Remaining: d})
	}
	if m := s.menus.Active(); m != nil {
		snap.MenuTitle = m.Title
		snap.MenuIndex = m.Index()
		for _, it := range m.Items {
			snap.MenuItems = append(snap.MenuItems, it.Label)
		}
	}
	return snap
}

// NearestObstacle returns a copy of the closest active obstacle in lane.
func (s *Session) NearestObstacle(lane Lane) (Obstacle, bool) {
	var nearest *Obstacle
	for _, o := range s.obstacles {
		if !o.Active || o.Lane != lane {
			continue
		}
		if nearest == nil || o.Distance < nearest.Distance {
			nearest = o
		}
	}
	if nearest == nil {
		return Obstacle{}, false
	}
	return *nearest, true
}
