package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blind-surfers/internal/config"
	"github.com/vovakirdan/blind-surfers/internal/core"
)

// Audio is the part of the spatial mixer the simulation drives.
type Audio interface {
	Play(name string, lane int, distance float64)
	StartLoop(tag, name string, lane int, distance float64)
	StartLoopPan(tag, name string, pan, distance float64)
	UpdateLoop(tag string, lane int, distance float64)
	UpdateLoopPan(tag string, pan, distance float64)
	StopLoop(tag string)
	LanePan(lane int) float64
	PlayMusic(name string, loop bool)
	StopMusic()
	AdjustMusicVolume(delta float64)
}

// Speaker announces text to the player.
type Speaker interface {
	Say(text string)
}

// State is the top-level mode of the session.
type State int

const (
	StateMenu State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "?"
	}
}

// RunSummary describes a run once the player leaves it.
type RunSummary struct {
	Score     int
	Coins     int // Coins picked up on the track during the run
	Jumps     int
	Duration  time.Duration // Simulated time spent running
	Continues int           // Keys spent to keep going
	Crashed   bool          // False when the game was quit mid-run
}

// runTally accumulates the current run's summary.
type runTally struct {
	active    bool
	coins     int
	elapsed   float64
	continues int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSeed makes spawning and mystery boxes deterministic.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRunEndHook is called with the summary of every finished run.
func WithRunEndHook(fn func(RunSummary)) Option {
	return func(s *Session) { s.onRunEnd = fn }
}

// Session is the whole game: menus, the current run and everything that
// persists between runs (coins, keys, upgrades, achievements). It is driven
// from one goroutine, one frame at a time.
type Session struct {
	cfg        config.Config
	audio      Audio
	speech     Speaker
	logger     *log.Logger
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	onRunEnd   func(RunSummary)

	state State
	menus MenuController
	quit  bool

	player       *Player
	ledger       *Ledger
	economy      *Economy
	words        *WordHunt
	season       SeasonHunt
	achievements *Achievements

	obstacles []*Obstacle
	powerUps  []*PowerUp
	letters   []*Letter
	coins     []*Coin

	score       int
	multiplier  int
	speed       float64
	stats       Stats
	obstacleSeq int
	run         runTally
}

// NewSession creates a session in the menu state. Call Start to open the
// main menu.
func NewSession(cfg config.Config, audio Audio, speech Speaker, opts ...Option) *Session {
	s := &Session{
		cfg:          cfg,
		audio:        audio,
		speech:       speech,
		difficulty:   config.NewDifficultyManager(cfg.Difficulty),
		state:        StateMenu,
		player:       NewPlayer(),
		ledger:       NewLedger(),
		economy:      NewEconomy(cfg.Economy),
		words:        NewWordHunt(cfg.Gameplay.WordHuntLetters),
		achievements: NewAchievements(cfg.Achievements, cfg.Gameplay.AchievementPause),
		multiplier:   1,
		speed:        cfg.Gameplay.BaseSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Start greets the player and opens the main menu.
func (s *Session) Start() {
	s.say("Blind Surfers")
	s.returnToMainMenu()
}

// Frame applies one frame's input in arrival order, then advances the
// simulation by dt seconds.
func (s *Session) Frame(in core.InputFrame, dt float64) {
	for _, ev := range in.Events {
		s.HandleInput(ev)
	}
	s.Update(dt)
}

// Update advances the run by dt seconds. Nothing moves outside a run.
func (s *Session) Update(dt float64) {
	if s.state != StateRunning || dt <= 0 {
		return
	}
	s.run.elapsed += dt
	s.achievements.Tick(dt)
	s.speed = s.difficulty.Speed(s.cfg.Gameplay.BaseSpeed, s.score, s.run.elapsed)

	s.player.Update(dt)
	for _, kind := range s.ledger.Sweep(dt) {
		s.teardown(kind)
	}

	step := s.speed * dt
	s.obstacles = advance(s.obstacles, step, s.obstacleMoved, s.obstacleArrived)
	if s.state != StateRunning {
		return
	}
	s.powerUps = advance(s.powerUps, step, nil, s.powerUpArrived)
	s.letters = advance(s.letters, step, nil, s.letterArrived)
	s.coins = advance(s.coins, step, nil, s.coinArrived)

	s.score += int(s.cfg.Gameplay.ScoreRate * float64(s.multiplier) * dt * 60)
	s.stats.Score = s.score

	s.spawn(dt)
	s.checkAchievements()
}

// Shutdown ends any run in progress and silences every loop.
func (s *Session) Shutdown() {
	s.silenceLoops()
	s.audio.StopMusic()
	s.finishRun(s.state == StateGameOver)
}

// startRun resets all run-scoped state and begins running.
func (s *Session) startRun() {
	s.clearTrack()
	s.player = NewPlayer()
	s.ledger.Clear()
	s.score = 0
	s.multiplier = 1
	s.speed = s.cfg.Gameplay.BaseSpeed
	s.stats.Jumps = 0
	s.stats.Score = 0
	s.run = runTally{active: true}
	s.state = StateRunning
	s.say("Run started")
	s.logger.Info("run started", "coins", s.economy.Coins, "keys", s.economy.Keys)
}

// gameOver ends the run after an unprotected collision in lane.
func (s *Session) gameOver(lane Lane) {
	s.state = StateGameOver
	s.cue(cueCrash, lane, 0)
	s.audio.StopMusic()
	s.silenceLoops()
	s.say(fmt.Sprintf("Game Over. Score: %d", s.score))
	if s.economy.Keys > 0 {
		s.say("Press K to use a key and continue")
	}
	s.logger.Info("game over", "score", s.score, "jumps", s.stats.Jumps, "keys", s.economy.Keys)
}

// continueWithKey spends a key to resume a crashed run on a short hoverboard.
func (s *Session) continueWithKey() {
	if !s.economy.UseKey() {
		s.cue(cueMenuEdge, LaneCenter, 0)
		s.say("You have no keys")
		return
	}
	s.state = StateRunning
	s.run.continues++
	s.player.Hoverboard.Start(s.cfg.Gameplay.ContinueHoverboard)
	s.resumeLoops()
	s.cue(cueHoverboardOn, LaneCenter, 0)
	s.say("Continuing run")
	s.logger.Info("run continued", "keys", s.economy.Keys)
}

// finishRun reports the run to the hook once.
func (s *Session) finishRun(crashed bool) {
	if !s.run.active {
		return
	}
	s.run.active = false
	sum := RunSummary{
		Score:     s.score,
		Coins:     s.run.coins,
		Jumps:     s.stats.Jumps,
		Duration:  time.Duration(s.run.elapsed * float64(time.Second)),
		Continues: s.run.continues,
		Crashed:   crashed,
	}
	if s.onRunEnd != nil {
		s.onRunEnd(sum)
	}
}

// clearTrack removes every entity and stops all loops.
func (s *Session) clearTrack() {
	s.silenceLoops()
	s.obstacles = s.obstacles[:0]
	s.powerUps = s.powerUps[:0]
	s.letters = s.letters[:0]
	s.coins = s.coins[:0]
}

// silenceLoops stops obstacle and effect loops without touching the
// entities or the ledger, so resumeLoops can restart them.
func (s *Session) silenceLoops() {
	for _, o := range s.obstacles {
		s.audio.StopLoop(o.Tag)
	}
	s.audio.StopLoop(tagJetpack)
	s.audio.StopLoop(tagMagnet)
}

func (s *Session) resumeLoops() {
	for _, o := range s.obstacles {
		if o.Active {
			s.startObstacleLoop(o)
		}
	}
	if s.ledger.Active(PowerUpJetpack) {
		s.audio.StartLoop(tagJetpack, loopJetpack, int(LaneCenter), 0)
	}
	if s.ledger.Active(PowerUpMagnet) {
		s.audio.StartLoop(tagMagnet, loopMagnet, int(LaneCenter), 0)
	}
}

func (s *Session) checkAchievements() {
	name, ok := s.achievements.Check(s.stats)
	if !ok {
		return
	}
	s.cue(cueAchievement, LaneCenter, 0)
	s.say("Achievement unlocked: " + name)
	s.logger.Info("achievement unlocked", "name", name)
}

func (s *Session) cue(name string, lane Lane, distance float64) {
	s.audio.Play(name, int(lane), distance)
}

func (s *Session) say(text string) {
	if s.speech != nil {
		s.speech.Say(text)
	}
}

// State returns the current mode.
func (s *Session) State() State { return s.state }

// Quit reports whether the player chose Quit from the main menu.
func (s *Session) Quit() bool { return s.quit }

// Score returns the current run score.
func (s *Session) Score() int { return s.score }

// Player returns the runner.
func (s *Session) Player() *Player { return s.player }

// Economy returns the persistent wallet and upgrades.
func (s *Session) Economy() *Economy { return s.economy }

// Stats returns the cumulative counters.
func (s *Session) Stats() Stats { return s.stats }

// Menu returns the open menu, or nil while running.
func (s *Session) Menu() *Menu { return s.menus.Active() }
