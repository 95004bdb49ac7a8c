package audio

import (
	"fmt"
	"io"
	"math"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is the interpolation quality used when an asset's sample
// rate differs from the speaker's.
const resampleQuality = 4

// BeepBackend plays clips through the system speaker. All decoded clips are
// held in memory at the speaker's sample rate.
type BeepBackend struct {
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	music      *beepVoice
	musicVol   *effects.Volume
	closed     bool
}

// NewBeepBackend initializes the speaker and starts an empty mixer on it.
func NewBeepBackend(sampleRate int, buffer time.Duration) (*BeepBackend, error) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	b := &BeepBackend{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
	}
	speaker.Play(b.mixer)
	return b, nil
}

// beepClip is a fully decoded asset.
type beepClip struct {
	name string
	buf  *beep.Buffer
}

func (c *beepClip) Name() string { return c.name }

// Decode reads a wav, ogg vorbis or mp3 stream into memory.
func (b *BeepBackend) Decode(p string, r io.Reader) (Clip, error) {
	return decodeClip(p, r, b.sampleRate)
}

func decodeClip(p string, r io.Reader, rate beep.SampleRate) (*beepClip, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		stream, format, err = wav.Decode(r)
	case ".ogg":
		stream, format, err = vorbis.Decode(io.NopCloser(r))
	case ".mp3":
		stream, format, err = mp3.Decode(io.NopCloser(r))
	default:
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, stream)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return &beepClip{name: p, buf: buf}, nil
}

// stereoGain scales the left and right channels of a stream independently.
type stereoGain struct {
	src         beep.Streamer
	left, right float64
}

func (g *stereoGain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.src.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.left
		samples[i][1] *= g.right
	}
	return n, ok
}

func (g *stereoGain) Err() error { return g.src.Err() }

// beepVoice is a clip playing on the speaker mixer. Its fields are read by
// the speaker goroutine, so every change happens under speaker.Lock.
type beepVoice struct {
	ctrl *beep.Ctrl
	gain *stereoGain
	done atomic.Bool
}

func (v *beepVoice) SetGain(left, right float64) {
	speaker.Lock()
	v.gain.left, v.gain.right = left, right
	speaker.Unlock()
}

func (v *beepVoice) Stop() {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
	v.done.Store(true)
}

func (v *beepVoice) Done() bool { return v.done.Load() }

// newBeepVoice wraps src so that the voice reports Done once it drains.
func newBeepVoice(src beep.Streamer, left, right float64) *beepVoice {
	v := &beepVoice{gain: &stereoGain{src: src, left: left, right: right}}
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(v.gain, beep.Callback(func() { v.done.Store(true) }))}
	return v
}

func clipStream(clip *beepClip, loops int) beep.Streamer {
	s := clip.buf.Streamer(0, clip.buf.Len())
	switch {
	case loops < 0:
		return beep.Loop(-1, s)
	case loops > 0:
		return beep.Loop(loops+1, s)
	default:
		return s
	}
}

func (b *BeepBackend) Play(c Clip, loops int, left, right float64) (Voice, error) {
	if b.closed {
		return nil, ErrBackendClosed
	}
	clip, ok := c.(*beepClip)
	if !ok {
		return nil, fmt.Errorf("audio: clip %s was not decoded by this backend", c.Name())
	}
	v := newBeepVoice(clipStream(clip, loops), left, right)
	speaker.Lock()
	b.mixer.Add(v.ctrl)
	speaker.Unlock()
	return v, nil
}

func (b *BeepBackend) PlayMusic(c Clip, loop bool, volume float64) error {
	if b.closed {
		return ErrBackendClosed
	}
	clip, ok := c.(*beepClip)
	if !ok {
		return fmt.Errorf("audio: clip %s was not decoded by this backend", c.Name())
	}
	b.StopMusic()

	loops := 0
	if loop {
		loops = LoopForever
	}
	vol := &effects.Volume{Streamer: clipStream(clip, loops), Base: 2}
	setVolume(vol, volume)
	v := newBeepVoice(vol, 1, 1)

	speaker.Lock()
	b.music = v
	b.musicVol = vol
	b.mixer.Add(v.ctrl)
	speaker.Unlock()
	return nil
}

func (b *BeepBackend) SetMusicVolume(volume float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if b.musicVol != nil {
		setVolume(b.musicVol, volume)
	}
}

func (b *BeepBackend) StopMusic() {
	speaker.Lock()
	music := b.music
	b.music = nil
	b.musicVol = nil
	speaker.Unlock()
	if music != nil {
		music.Stop()
	}
}

// Close silences the speaker. The speaker itself stays initialized for the
// life of the process.
func (b *BeepBackend) Close() error {
	if b.closed {
		return nil
	}
	b.StopMusic()
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.closed = true
	return nil
}

// setVolume maps a linear volume in [0, 1] onto effects.Volume's
// logarithmic scale.
func setVolume(v *effects.Volume, linear float64) {
	if linear <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(min(linear, 1))
}
