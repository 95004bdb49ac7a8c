package game

// Timer is a countdown. Active is true exactly while Remaining > 0.
type Timer struct {
	Active    bool
	Remaining float64
}

// Start runs the timer for d seconds. A non-positive d leaves it stopped.
func (t *Timer) Start(d float64) {
	if d <= 0 {
		t.Stop()
		return
	}
	t.Active = true
	t.Remaining = d
}

// Stop deactivates the timer.
func (t *Timer) Stop() {
	t.Active = false
	t.Remaining = 0
}

// Tick counts down by dt and reports whether the timer ran out on this tick.
func (t *Timer) Tick(dt float64) bool {
	if !t.Active {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Stop()
		return true
	}
	return false
}

// Player holds the runner's lane and abilities. Jetpack and SuperSneakers
// are set and cleared by the power-up ledger.
type Player struct {
	Lane          Lane
	Jump          Timer
	Roll          Timer
	Hoverboard    Timer
	SuperSneakers bool
	Jetpack       bool
}

// NewPlayer returns a player standing in the center lane.
func NewPlayer() *Player {
	return &Player{Lane: LaneCenter}
}

// MoveLeft shifts one lane left and reports whether the lane changed.
func (p *Player) MoveLeft() bool {
	if p.Lane <= LaneLeft {
		return false
	}
	p.Lane--
	return true
}

// MoveRight shifts one lane right and reports whether the lane changed.
func (p *Player) MoveRight() bool {
	if p.Lane >= LaneCount-1 {
		return false
	}
	p.Lane++
	return true
}

func (p *Player) Jumping() bool          { return p.Jump.Active }
func (p *Player) Rolling() bool          { return p.Roll.Active }
func (p *Player) HoverboardActive() bool { return p.Hoverboard.Active }

// Update counts down every ability timer.
func (p *Player) Update(dt float64) {
	p.Jump.Tick(dt)
	p.Roll.Tick(dt)
	p.Hoverboard.Tick(dt)
}

// Clears reports whether the player's current ability lets an obstacle of
// height h pass: jumping clears low obstacles and rolling clears high ones.
func (p *Player) Clears(h Height) bool {
	switch h {
	case HeightLow:
		return p.Jumping()
	case HeightHigh:
		return p.Rolling()
	default:
		return false
	}
}
