package audio

import "io"

// NullBackend accepts every request and produces no sound. It is used when
// no sound device is available and by the headless simulator.
type NullBackend struct {
	closed bool
}

// NewNullBackend creates a silent backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

type nullClip struct{ name string }

func (c nullClip) Name() string { return c.name }

// nullVoice finishes immediately unless it loops.
type nullVoice struct {
	looping bool
	stopped bool
}

func (v *nullVoice) SetGain(left, right float64) {}
func (v *nullVoice) Stop()                       { v.stopped = true }
func (v *nullVoice) Done() bool                  { return v.stopped || !v.looping }

func (b *NullBackend) Decode(p string, r io.Reader) (Clip, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return nullClip{name: p}, nil
}

func (b *NullBackend) Play(clip Clip, loops int, left, right float64) (Voice, error) {
	if b.closed {
		return nil, ErrBackendClosed
	}
	return &nullVoice{looping: loops < 0}, nil
}

func (b *NullBackend) PlayMusic(clip Clip, loop bool, volume float64) error {
	if b.closed {
		return ErrBackendClosed
	}
	return nil
}

func (b *NullBackend) SetMusicVolume(volume float64) {}
func (b *NullBackend) StopMusic()                    {}

func (b *NullBackend) Close() error {
	b.closed = true
	return nil
}
