package audio

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blind-surfers/internal/config"
)

// Announcer receives spoken feedback such as volume changes.
type Announcer interface {
	Say(text string)
}

// Settings holds the mixer constants.
type Settings struct {
	MaxDistance float64   // Distance at which cues fall silent
	LanePan     []float64 // Stereo pan per lane
	SFXVolume   float64
	MusicVolume float64
	Channels    int // Size of the output channel pool
}

// SettingsFromConfig extracts mixer settings from the game configuration.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		MaxDistance: cfg.Game.MaxDistance,
		LanePan:     cfg.Game.LanePan,
		SFXVolume:   cfg.Audio.SFXVolume,
		MusicVolume: cfg.Audio.MusicVolume,
		Channels:    cfg.Audio.Channels,
	}
}

// loopCue is a looping voice bound to a tag.
type loopCue struct {
	name     string
	voice    Voice
	slot     int
	pan      float64
	distance float64
}

// Mixer maps lane and distance to stereo gain and manages cue lifetimes.
// It is not safe for concurrent use.
type Mixer struct {
	backend Backend
	assets  *Assets
	speech  Announcer
	logger  *log.Logger

	maxDistance float64
	lanePan     []float64
	sfxVolume   float64
	musicVolume float64

	channels []Voice
	loops    map[string]*loopCue
	reported map[string]struct{}

	played  int
	dropped int
}

// NewMixer creates a mixer. speech and logger may be nil.
func NewMixer(backend Backend, assets *Assets, s Settings, speech Announcer, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if s.Channels <= 0 {
		s.Channels = 1
	}
	if s.MaxDistance <= 0 {
		s.MaxDistance = 100
	}
	return &Mixer{
		backend:     backend,
		assets:      assets,
		speech:      speech,
		logger:      logger,
		maxDistance: s.MaxDistance,
		lanePan:     s.LanePan,
		sfxVolume:   clamp01(s.SFXVolume),
		musicVolume: clamp01(s.MusicVolume),
		channels:    make([]Voice, s.Channels),
		loops:       make(map[string]*loopCue),
		reported:    make(map[string]struct{}),
	}
}

// StereoGains converts a pan in [-1, 1] into left and right gains. The side
// the sound is panned towards stays at full gain.
func StereoGains(pan float64) (left, right float64) {
	pan = clamp(pan, -1, 1)
	left = 1 - max(0, pan)
	right = 1 + min(0, pan)
	return left, right
}

// DistanceVolume falls linearly from 1 at the player to 0 at MaxDistance.
func (m *Mixer) DistanceVolume(distance float64) float64 {
	distance = clamp(distance, 0, m.maxDistance)
	return 1 - distance/m.maxDistance
}

// LanePan returns the configured pan for a lane, or center for an unknown lane.
func (m *Mixer) LanePan(lane int) float64 {
	if lane < 0 || lane >= len(m.lanePan) {
		return 0
	}
	return m.lanePan[lane]
}

// Gains returns the final channel volumes for a cue at pan and distance.
func (m *Mixer) Gains(pan, distance float64) (left, right float64) {
	l, r := StereoGains(pan)
	v := m.DistanceVolume(distance) * m.sfxVolume
	return l * v, r * v
}

// Play starts a one-shot cue positioned at lane and distance.
func (m *Mixer) Play(name string, lane int, distance float64) {
	m.PlayRepeat(name, lane, distance, 0)
}

// PlayRepeat starts a cue that repeats loops extra times.
// A missing asset or a full channel pool drops the cue.
func (m *Mixer) PlayRepeat(name string, lane int, distance float64, loops int) {
	if _, err := m.start(name, m.LanePan(lane), distance, loops); err != nil {
		m.report(name, err)
	}
}

// StartLoop starts an endless cue under tag. It does nothing if the tag is
// already playing.
func (m *Mixer) StartLoop(tag, name string, lane int, distance float64) {
	m.StartLoopPan(tag, name, m.LanePan(lane), distance)
}

// StartLoopPan is StartLoop with an explicit pan.
func (m *Mixer) StartLoopPan(tag, name string, pan, distance float64) {
	if m.LoopActive(tag) {
		return
	}
	slot, err := m.start(name, pan, distance, LoopForever)
	if err != nil {
		m.report(name, err)
		return
	}
	m.loops[tag] = &loopCue{
		name:     name,
		voice:    m.channels[slot],
		slot:     slot,
		pan:      pan,
		distance: distance,
	}
}

// UpdateLoop repositions a live loop without restarting it.
func (m *Mixer) UpdateLoop(tag string, lane int, distance float64) {
	m.UpdateLoopPan(tag, m.LanePan(lane), distance)
}

// UpdateLoopPan repositions a live loop using an explicit pan.
func (m *Mixer) UpdateLoopPan(tag string, pan, distance float64) {
	lc, ok := m.loops[tag]
	if !ok {
		return
	}
	lc.pan = pan
	lc.distance = distance
	lc.voice.SetGain(m.Gains(pan, distance))
}

// StopLoop stops the loop under tag and frees its channel.
func (m *Mixer) StopLoop(tag string) {
	lc, ok := m.loops[tag]
	if !ok {
		return
	}
	lc.voice.Stop()
	if m.channels[lc.slot] == lc.voice {
		m.channels[lc.slot] = nil
	}
	delete(m.loops, tag)
}

// StopAllLoops stops every tagged loop.
func (m *Mixer) StopAllLoops() {
	for _, tag := range m.LoopTags() {
		m.StopLoop(tag)
	}
}

// LoopActive reports whether a loop is registered under tag.
func (m *Mixer) LoopActive(tag string) bool {
	_, ok := m.loops[tag]
	return ok
}

// LoopTags returns the live loop tags in sorted order.
func (m *Mixer) LoopTags() []string {
	tags := make([]string, 0, len(m.loops))
	for tag := range m.loops {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// PlayMusic replaces the current music track.
func (m *Mixer) PlayMusic(name string, loop bool) {
	clip, err := m.assets.Load(name)
	if err != nil {
		m.report(name, err)
		return
	}
	if err := m.backend.PlayMusic(clip, loop, m.musicVolume); err != nil {
		m.report(name, err)
	}
}

// StopMusic silences the music channel.
func (m *Mixer) StopMusic() {
	m.backend.StopMusic()
}

// MusicVolume returns the current music volume in [0, 1].
func (m *Mixer) MusicVolume() float64 {
	return m.musicVolume
}

// AdjustMusicVolume changes the music volume by delta, clamped to [0, 1],
// and announces the new level.
func (m *Mixer) AdjustMusicVolume(delta float64) {
	m.musicVolume = clamp01(m.musicVolume + delta)
	m.backend.SetMusicVolume(m.musicVolume)
	if m.speech != nil {
		m.speech.Say(fmt.Sprintf("Music volume %d percent", percent(m.musicVolume)))
	}
}

// Stats returns how many cues were started and how many were dropped
// because no channel was free.
func (m *Mixer) Stats() (played, dropped int) {
	return m.played, m.dropped
}

// Close stops all sound and releases the backend.
func (m *Mixer) Close() error {
	m.StopAllLoops()
	for i, v := range m.channels {
		if v != nil {
			v.Stop()
			m.channels[i] = nil
		}
	}
	m.backend.StopMusic()
	m.logger.Debug("mixer closed", "played", m.played, "dropped", m.dropped, "cached", m.assets.Cached())
	return m.backend.Close()
}

// start plays name on a free channel and returns the slot it occupies.
func (m *Mixer) start(name string, pan, distance float64, loops int) (int, error) {
	clip, err := m.assets.Load(name)
	if err != nil {
		return -1, err
	}
	slot := m.freeSlot()
	if slot < 0 {
		m.dropped++
		return -1, ErrNoChannel
	}
	left, right := m.Gains(pan, distance)
	voice, err := m.backend.Play(clip, loops, left, right)
	if err != nil {
		return -1, err
	}
	m.channels[slot] = voice
	m.played++
	return slot, nil
}

// freeSlot returns an idle channel index, or -1 when the pool is full.
// Channels held by loops stay busy until the loop is stopped.
func (m *Mixer) freeSlot() int {
	for i, v := range m.channels {
		if v == nil {
			return i
		}
		if v.Done() && !m.heldByLoop(i) {
			m.channels[i] = nil
			return i
		}
	}
	return -1
}

func (m *Mixer) heldByLoop(slot int) bool {
	for _, lc := range m.loops {
		if lc.slot == slot {
			return true
		}
	}
	return false
}

// report logs a dropped cue. Missing assets are logged once per name.
func (m *Mixer) report(name string, err error) {
	switch {
	case errors.Is(err, ErrNoChannel):
		m.logger.Debug("cue dropped", "asset", name, "error", err)
	case errors.Is(err, ErrAssetMissing):
		if _, seen := m.reported[name]; seen {
			return
		}
		m.reported[name] = struct{}{}
		m.logger.Warn("sound asset missing", "asset", name)
	default:
		if _, seen := m.reported[name]; seen {
			return
		}
		m.reported[name] = struct{}{}
		m.logger.Warn("sound failed", "asset", name, "error", err)
	}
}

func percent(v float64) int {
	return int(v*100 + 1e-9)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
