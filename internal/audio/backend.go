// Package audio turns lane positions and distances into stereo sound cues.
//
// The Mixer is driven from the single simulation goroutine. It owns a fixed
// pool of output channels, looping cues keyed by caller-chosen tags and one
// music channel. Everything it needs from a sound device is behind Backend,
// so the game can run against real speakers, a silent backend or a test fake.
package audio

import (
	"errors"
	"io"
)

var (
	// ErrAssetMissing is returned when no file exists for a logical sound name.
	ErrAssetMissing = errors.New("audio: asset missing")
	// ErrNoChannel is returned when every output channel is busy.
	ErrNoChannel = errors.New("audio: no free channel")
	// ErrBackendClosed is returned by a backend used after Close.
	ErrBackendClosed = errors.New("audio: backend closed")
)

// LoopForever makes a voice repeat until stopped.
const LoopForever = -1

// Clip is a decoded sound asset owned by the backend that decoded it.
type Clip interface {
	// Name is the asset path the clip was decoded from.
	Name() string
}

// Voice is one playing instance of a clip on an output channel.
type Voice interface {
	// SetGain changes the per-channel volume without restarting playback.
	SetGain(left, right float64)
	// Stop halts playback and releases the voice.
	Stop()
	// Done reports whether playback finished or was stopped.
	Done() bool
}

// Decoder converts an encoded asset into a playable clip. The file
// extension of path selects the container format.
type Decoder interface {
	Decode(path string, r io.Reader) (Clip, error)
}

// Backend is the sound device capability the mixer drives.
type Backend interface {
	Decoder

	// Play starts a clip with the given stereo gains. loops is the number of
	// extra repetitions, or LoopForever.
	Play(clip Clip, loops int, left, right float64) (Voice, error)

	// PlayMusic replaces the current music track.
	PlayMusic(clip Clip, loop bool, volume float64) error
	SetMusicVolume(volume float64)
	StopMusic()

	Close() error
}
