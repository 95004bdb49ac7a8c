package game

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/blind-surfers/internal/config"
	"github.com/vovakirdan/blind-surfers/internal/core"
)

type playCall struct {
	name     string
	lane     int
	distance float64
}

type fakeAudio struct {
	plays  []playCall
	loops  map[string]string
	stops  []string
	music  string
	volume float64
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{loops: make(map[string]string), volume: 0.8}
}

func (a *fakeAudio) Play(name string, lane int, distance float64) {
	a.plays = append(a.plays, playCall{name, lane, distance})
}

func (a *fakeAudio) StartLoop(tag, name string, lane int, distance float64) {
	if _, ok := a.loops[tag]; !ok {
		a.loops[tag] = name
	}
}

func (a *fakeAudio) StartLoopPan(tag, name string, pan, distance float64) {
	a.StartLoop(tag, name, 0, distance)
}

func (a *fakeAudio) UpdateLoop(tag string, lane int, distance float64) {}
func (a *fakeAudio) UpdateLoopPan(tag string, pan, distance float64)   {}

func (a *fakeAudio) StopLoop(tag string) {
	if _, ok := a.loops[tag]; ok {
		delete(a.loops, tag)
		a.stops = append(a.stops, tag)
	}
}

func (a *fakeAudio) LanePan(lane int) float64 { return []float64{-0.8, 0, 0.8}[lane] }
func (a *fakeAudio) PlayMusic(name string, loop bool) { a.music = name }
func (a *fakeAudio) StopMusic()                       { a.music = "" }
func (a *fakeAudio) AdjustMusicVolume(delta float64) {
	a.volume = core.ClampF(a.volume+delta, 0, 1)
}

func (a *fakeAudio) played(name string) []playCall {
	var out []playCall
	for _, p := range a.plays {
		if p.name == name {
			out = append(out, p)
		}
	}
	return out
}

type fakeSpeech struct{ lines []string }

func (s *fakeSpeech) Say(text string) { s.lines = append(s.lines, text) }

func (s *fakeSpeech) said(text string) bool {
	return slices.Contains(s.lines, text)
}

const frame = 1.0 / 60

// newRunningSession returns a session with spawning disabled that has
// already started a run from the main menu.
func newRunningSession(t *testing.T, opts ...Option) (*Session, *fakeAudio, *fakeSpeech) {
	t.Helper()
	cfg := config.Default()
	cfg.Spawn = config.SpawnConfig{Mode: config.SpawnPerFrame}
	a := newFakeAudio()
	sp := &fakeSpeech{}
	s := NewSession(cfg, a, sp, append([]Option{WithSeed(7)}, opts...)...)
	s.Start()
	s.HandleInput(core.Key(core.ActionConfirm))
	if s.State() != StateRunning {
		t.Fatalf("State() after Start Run = %v, expected running", s.State())
	}
	return s, a, sp
}

// runUntilClear steps frames until no obstacles remain or the run stops.
func runUntilClear(s *Session) {
	for i := 0; i < 1000 && s.State() == StateRunning && len(s.obstacles) > 0; i++ {
		s.Update(frame)
	}
}

func TestCrashEndsRun(t *testing.T) {
	s, a, sp := newRunningSession(t)
	o := s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow)
	if o.Distance != 100 {
		t.Fatalf("spawn distance = %v, expected 100", o.Distance)
	}
	runUntilClear(s)

	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	crashes := a.played(cueCrash)
	if len(crashes) != 1 {
		t.Fatalf("crash cues = %d, expected 1", len(crashes))
	}
	if crashes[0].lane != 1 || crashes[0].distance != 0 {
		t.Errorf("crash cue at lane %d distance %v, expected lane 1 distance 0", crashes[0].lane, crashes[0].distance)
	}
	if _, ok := a.loops[o.Tag]; ok {
		t.Error("obstacle loop still playing after arrival")
	}
	if !strings.HasPrefix(sp.lines[len(sp.lines)-1], "Game Over. Score: ") {
		t.Errorf("last announcement = %q", sp.lines[len(sp.lines)-1])
	}
}

func TestOtherLaneObstaclePasses(t *testing.T) {
	s, _, _ := newRunningSession(t)
	s.spawnObstacle(LaneLeft, ObstacleTrain, HeightLow)
	runUntilClear(s)
	if s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", s.State())
	}
}

func TestPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		height Height
		action core.Action
		want   State
	}{
		{"jump low", HeightLow, core.ActionUp, StateRunning},
		{"roll high", HeightHigh, core.ActionDown, StateRunning},
		{"jump high", HeightHigh, core.ActionUp, StateGameOver},
		{"roll low", HeightLow, core.ActionDown, StateGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, a, _ := newRunningSession(t)
			o := s.spawnObstacle(LaneCenter, ObstacleBarrier, tt.height)
			o.Distance = 1
			s.HandleInput(core.Key(tt.action))
			s.Update(0.1)
			if s.State() != tt.want {
				t.Errorf("State() = %v, expected %v", s.State(), tt.want)
			}
			wantCrashes := 0
			if tt.want == StateGameOver {
				wantCrashes = 1
			}
			if got := len(a.played(cueCrash)); got != wantCrashes {
				t.Errorf("crash cues = %d, expected %d", got, wantCrashes)
			}
		})
	}
}

func TestJetpackIgnoresObstacles(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.player.Hoverboard.Start(30)
	s.resolvePickup(&PowerUp{Entity: Entity{Lane: LaneCenter}, Kind: PowerUpJetpack})
	if _, ok := a.loops[tagJetpack]; !ok {
		t.Error("jetpack loop not started")
	}
	for i := 0; i < 3; i++ {
		s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow).Distance = 1
		s.Update(0.1)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, expected running", s.State())
	}
	if !s.player.HoverboardActive() {
		t.Error("jetpack run consumed the hoverboard")
	}
}

func TestHoverboardAbsorbsOneHit(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.resolvePickup(&PowerUp{Entity: Entity{Lane: LaneCenter}, Kind: PowerUpHoverboard})
	if !s.player.HoverboardActive() {
		t.Fatal("hoverboard not active after pickup")
	}

	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow).Distance = 1
	s.Update(0.1)
	if s.State() != StateRunning {
		t.Fatalf("State() after first hit = %v, expected running", s.State())
	}
	if s.player.HoverboardActive() {
		t.Error("hoverboard still active after a hit")
	}
	if len(a.played(cueHoverboardBreak)) != 1 {
		t.Error("hoverboard break cue not played")
	}

	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow).Distance = 1
	s.Update(0.1)
	if s.State() != StateGameOver {
		t.Errorf("State() after second hit = %v, expected game over", s.State())
	}
}

func TestMagnetCollectsAnyLane(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.spawnCoin(LaneLeft).Distance = 1
	s.Update(0.1)
	if s.economy.Coins != 0 {
		t.Fatalf("Coins without magnet = %d, expected 0", s.economy.Coins)
	}

	s.resolvePickup(&PowerUp{Entity: Entity{Lane: LaneCenter}, Kind: PowerUpMagnet})
	s.spawnCoin(LaneLeft).Distance = 1
	s.spawnCoin(LaneRight).Distance = 1
	s.Update(0.1)
	if s.economy.Coins != 2 || s.Stats().TotalCoins != 2 {
		t.Errorf("Coins = %d TotalCoins = %d, expected 2", s.economy.Coins, s.Stats().TotalCoins)
	}
	if got := a.played(cueCoinCollect); len(got) != 2 || got[0].lane != 0 || got[1].lane != 2 {
		t.Errorf("coin cues = %+v", got)
	}
}

func TestEffectExpiryTearsDownOnce(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.resolvePickup(&PowerUp{Entity: Entity{Lane: LaneCenter}, Kind: PowerUpJetpack})
	s.resolvePickup(&PowerUp{Entity: Entity{Lane: LaneCenter}, Kind: PowerUpMultiplier})
	if s.multiplier != 2 {
		t.Fatalf("multiplier = %d, expected 2", s.multiplier)
	}
	for i := 0; i < 11; i++ {
		s.Update(1)
	}
	if s.player.Jetpack || s.multiplier != 1 || s.ledger.Len() != 0 {
		t.Errorf("effects not torn down: jetpack=%v multiplier=%d ledger=%d", s.player.Jetpack, s.multiplier, s.ledger.Len())
	}
	stops := 0
	for _, tag := range a.stops {
		if tag == tagJetpack {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("jetpack loop stopped %d times, expected 1", stops)
	}
}

func TestKeyContinue(t *testing.T) {
	var runs []RunSummary
	s, a, sp := newRunningSession(t, WithRunEndHook(func(r RunSummary) { runs = append(runs, r) }))
	s.economy.Keys = 1
	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightHigh)
	runUntilClear(s)
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	if !sp.said("Press K to use a key and continue") {
		t.Error("continue prompt not spoken")
	}

	s.HandleInput(core.LetterKey('K'))
	if s.State() != StateRunning {
		t.Fatalf("State() after key = %v, expected running", s.State())
	}
	if s.economy.Keys != 0 || !s.player.HoverboardActive() {
		t.Errorf("Keys = %d hoverboard = %v", s.economy.Keys, s.player.HoverboardActive())
	}
	if len(a.played(cueHoverboardOn)) != 1 {
		t.Error("hoverboard cue not played")
	}

	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightHigh).Distance = 1
	s.Update(0.1)
	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightHigh).Distance = 1
	s.Update(0.1)
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	s.HandleInput(core.LetterKey('k'))
	if !sp.said("You have no keys") || s.State() != StateGameOver {
		t.Error("continue without keys should be refused")
	}

	s.HandleInput(core.Key(core.ActionBack))
	if s.State() != StateMenu || s.Menu() == nil || s.Menu().Title != "Main Menu" {
		t.Errorf("Back from game over did not open the main menu")
	}
	if len(runs) != 1 || !runs[0].Crashed || runs[0].Continues != 1 {
		t.Errorf("run summaries = %+v, expected one crashed run with one continue", runs)
	}
	if a.music != musicTheme {
		t.Errorf("music = %q, expected theme", a.music)
	}
}

func TestLettersAndWordHunt(t *testing.T) {
	s, _, sp := newRunningSession(t)
	for _, want := range []string{"H", "U", "N", "T"} {
		l := s.spawnLetter(LaneCenter)
		if l.Letter != want {
			t.Fatalf("spawned letter %q, expected %q", l.Letter, want)
		}
		l.Distance = 1
		s.Update(0.1)
	}
	if !sp.said("You collected T!") || !sp.said("Word hunt complete") {
		t.Errorf("announcements = %v", sp.lines)
	}
	if s.economy.Coins != 500 {
		t.Errorf("Coins = %d, expected 500", s.economy.Coins)
	}
}

func TestSeasonToken(t *testing.T) {
	s, _, sp := newRunningSession(t)
	s.spawnPowerUp(LaneCenter, PowerUpSeasonToken).Distance = 1
	s.Update(0.1)
	if s.season.Tokens != 1 || !sp.said("Season token collected") {
		t.Errorf("Tokens = %d", s.season.Tokens)
	}
}

func TestTrainHonksOnce(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.spawnObstacle(LaneRight, ObstacleTrain, HeightLow)
	runUntilClear(s)
	honks := a.played(cueTrainHonk)
	if len(honks) != 1 || honks[0].lane != 2 {
		t.Errorf("honks = %+v, expected one in lane 2", honks)
	}
}

func TestNoHonkAfterCrash(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow).Distance = 0.1
	train := s.spawnObstacle(LaneLeft, ObstacleTrain, HeightLow)
	train.Distance = s.cfg.Gameplay.TrainHonkDistance + 0.2
	s.Update(frame)
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	if honks := a.played(cueTrainHonk); len(honks) != 0 {
		t.Errorf("honks = %d, expected 0 after the crash", len(honks))
	}
}

func TestRunInput(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.HandleInput(core.Key(core.ActionLeft))
	s.HandleInput(core.Key(core.ActionLeft))
	if s.player.Lane != LaneLeft {
		t.Errorf("Lane = %v, expected left", s.player.Lane)
	}
	if got := a.played(cueSwoosh); len(got) != 1 || got[0].lane != 0 {
		t.Errorf("swoosh cues = %+v, expected one at lane 0", got)
	}
	s.HandleInput(core.Key(core.ActionUp))
	if !s.player.Jumping() || s.Stats().Jumps != 1 {
		t.Error("jump not started")
	}
	s.player.SuperSneakers = true
	s.HandleInput(core.Key(core.ActionUp))
	if len(a.played(cueSuperJump)) != 1 {
		t.Error("super jump cue not played")
	}
}

func TestScoreAdvances(t *testing.T) {
	s, _, _ := newRunningSession(t)
	s.Update(0.5)
	if s.Score() != 300 {
		t.Errorf("Score() = %d, expected 300", s.Score())
	}
	s.multiplier = 2
	s.Update(0.5)
	if s.Score() != 900 {
		t.Errorf("Score() = %d, expected 900", s.Score())
	}
}

func TestMainMenu(t *testing.T) {
	cfg := config.Default()
	a := newFakeAudio()
	sp := &fakeSpeech{}
	s := NewSession(cfg, a, sp, WithSeed(1))
	s.Start()
	if !slices.Equal(sp.lines, []string{"Blind Surfers", "Start Run"}) {
		t.Errorf("greeting = %v", sp.lines)
	}
	if a.music != musicTheme {
		t.Errorf("music = %q, expected theme", a.music)
	}

	s.HandleInput(core.Key(core.ActionUp))
	if len(a.played(cueMenuEdge)) != 1 {
		t.Error("edge cue not played at the top")
	}
	s.HandleInput(core.Key(core.ActionBack))
	if s.Menu() == nil {
		t.Error("Escape closed the main menu")
	}

	s.HandleInput(core.LetterKey('a'))
	if sp.lines[len(sp.lines)-1] != "Achievements" {
		t.Errorf("jump to letter announced %q", sp.lines[len(sp.lines)-1])
	}
	s.HandleInput(core.Key(core.ActionConfirm))
	if a.music != musicAchievements || s.Menu().Title != "Achievements" {
		t.Errorf("achievements menu not open, music = %q", a.music)
	}
	if !sp.said("High Jumper - Locked") {
		t.Error("first achievement status not read")
	}
	s.HandleInput(core.Key(core.ActionBack))
	if s.Menu().Title != "Main Menu" || a.music != musicTheme {
		t.Error("Escape did not return to the main menu")
	}

	s.HandleInput(core.Key(core.ActionEnd))
	s.HandleInput(core.Key(core.ActionConfirm))
	if !s.Quit() {
		t.Error("Quit() = false after selecting Quit")
	}
}

func TestShop(t *testing.T) {
	cfg := config.Default()
	a := newFakeAudio()
	sp := &fakeSpeech{}
	s := NewSession(cfg, a, sp, WithSeed(1))
	s.Start()
	s.HandleInput(core.Key(core.ActionDown))
	s.HandleInput(core.Key(core.ActionConfirm))
	if s.Menu().Title != "Shop" {
		t.Fatalf("menu = %q, expected Shop", s.Menu().Title)
	}
	if !sp.said("Balance: 0 coins, 0 keys, 0 mystery boxes") {
		t.Error("balance not read on open")
	}

	s.HandleInput(core.Key(core.ActionDown))
	s.HandleInput(core.Key(core.ActionConfirm))
	if !sp.said("Not enough coins") {
		t.Error("purchase without coins not refused")
	}

	s.economy.Coins = 500
	s.HandleInput(core.Key(core.ActionConfirm))
	if !sp.said("Upgrade purchased") || s.economy.Coins != 0 {
		t.Errorf("upgrade not purchased, coins = %d", s.economy.Coins)
	}
	if s.economy.Duration(PowerUpJetpack) != 15 {
		t.Errorf("jetpack duration = %v, expected 15", s.economy.Duration(PowerUpJetpack))
	}
	if got := s.Menu().Items[0].Label; got != "Balance: 0 coins, 0 keys, 0 mystery boxes" {
		t.Errorf("balance label = %q", got)
	}
	if s.Menu().Index() != 1 {
		t.Errorf("focus moved to %d after purchase", s.Menu().Index())
	}

	s.HandleInput(core.LetterKey('o'))
	s.HandleInput(core.Key(core.ActionConfirm))
	if !sp.said("No mystery boxes available") {
		t.Error("opening without boxes not refused")
	}

	s.HandleInput(core.Key(core.ActionEnd))
	s.HandleInput(core.Key(core.ActionConfirm))
	if s.Menu().Title != "Main Menu" {
		t.Errorf("Back left menu %q open", s.Menu().Title)
	}
}

func TestVolumeKeysInAnyState(t *testing.T) {
	s, a, _ := newRunningSession(t)
	s.HandleInput(core.Key(core.ActionVolumeDown))
	if a.volume > 0.76 || a.volume < 0.74 {
		t.Errorf("volume = %v, expected 0.75", a.volume)
	}
}

func TestShutdownReportsRun(t *testing.T) {
	var runs []RunSummary
	s, a, _ := newRunningSession(t, WithRunEndHook(func(r RunSummary) { runs = append(runs, r) }))
	s.spawnObstacle(LaneLeft, ObstacleBarrier, HeightLow)
	s.Update(1)
	s.Shutdown()
	s.Shutdown()
	if len(runs) != 1 || runs[0].Crashed {
		t.Errorf("run summaries = %+v, expected one uncrashed run", runs)
	}
	if runs[0].Duration.Seconds() != 1 {
		t.Errorf("Duration = %v, expected 1s", runs[0].Duration)
	}
	if len(a.loops) != 0 {
		t.Errorf("loops still playing: %v", a.loops)
	}
}

func TestShutdownAfterCrashReportsCrashed(t *testing.T) {
	var runs []RunSummary
	s, _, _ := newRunningSession(t, WithRunEndHook(func(r RunSummary) { runs = append(runs, r) }))
	s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow)
	runUntilClear(s)
	if s.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game over", s.State())
	}
	s.Shutdown()
	if len(runs) != 1 {
		t.Fatalf("run summaries = %d, expected 1", len(runs))
	}
	if !runs[0].Crashed {
		t.Errorf("Crashed = %v, expected true", runs[0].Crashed)
	}
}

func TestSpawnRates(t *testing.T) {
	s, _, _ := newRunningSession(t)
	s.cfg.Spawn.Coin = 1
	s.Update(frame)
	if len(s.coins) != 1 {
		t.Errorf("coins = %d, expected 1 with rate 1", len(s.coins))
	}
	if len(s.obstacles) != 0 {
		t.Errorf("obstacles = %d, expected 0 with rate 0", len(s.obstacles))
	}
}

func TestNearestObstacle(t *testing.T) {
	s, _, _ := newRunningSession(t)
	if _, ok := s.NearestObstacle(LaneCenter); ok {
		t.Error("NearestObstacle() on empty track = true")
	}
	far := s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightLow)
	near := s.spawnObstacle(LaneCenter, ObstacleBarrier, HeightHigh)
	s.spawnObstacle(LaneLeft, ObstacleBarrier, HeightLow).Distance = 1
	near.Distance = 30
	got, ok := s.NearestObstacle(LaneCenter)
	if !ok || got.Tag != near.Tag {
		t.Errorf("NearestObstacle() = %v, expected %v", got.Tag, near.Tag)
	}
	if far.Distance != 100 {
		t.Errorf("far obstacle moved to %v", far.Distance)
	}
}
