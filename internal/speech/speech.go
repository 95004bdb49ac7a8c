// Package speech delivers short spoken announcements. Failures of the
// synthesizer are logged and never reach the caller.
package speech

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrNoSynthesizer is returned when no supported speech command is installed.
var ErrNoSynthesizer = errors.New("speech: no synthesizer found")

// Synthesizer is an external text-to-speech engine.
type Synthesizer interface {
	Speak(text string) error
}

// Announcer is the say(text) contract used by the game. Every line is added
// to the transcript, then handed to the synthesizer if there is one.
type Announcer struct {
	synth      Synthesizer
	transcript *Transcript
	logger     *log.Logger
}

// NewAnnouncer creates an announcer. Any argument may be nil.
func NewAnnouncer(synth Synthesizer, transcript *Transcript, logger *log.Logger) *Announcer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Announcer{synth: synth, transcript: transcript, logger: logger}
}

// Say announces text. It never fails and never panics.
func (a *Announcer) Say(text string) {
	if text == "" {
		return
	}
	if a.transcript != nil {
		a.transcript.Add(text)
	}
	if a.synth == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("speech backend panicked", "text", text, "panic", r)
		}
	}()
	if err := a.synth.Speak(text); err != nil {
		a.logger.Warn("speech failed", "text", text, "error", err)
	}
}
