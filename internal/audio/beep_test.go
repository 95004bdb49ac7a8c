package audio

import (
	"strings"
	"testing"

	"github.com/gopxl/beep"
)

// constStreamer produces n samples of full-scale signal on both channels.
type constStreamer struct{ n int }

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	k := min(len(samples), c.n)
	for i := range samples[:k] {
		samples[i] = [2]float64{1, 1}
	}
	c.n -= k
	return k, true
}

func (c *constStreamer) Err() error { return nil }

func testClip(samples int) *beepClip {
	buf := beep.NewBuffer(beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2})
	buf.Append(&constStreamer{n: samples})
	return &beepClip{name: "test.wav", buf: buf}
}

func drain(s beep.Streamer) int {
	total := 0
	samples := make([][2]float64, 7)
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			return total
		}
	}
}

func TestStereoGainStreamer(t *testing.T) {
	g := &stereoGain{src: &constStreamer{n: 4}, left: 0.25, right: 0.75}
	samples := make([][2]float64, 4)

	n, ok := g.Stream(samples)
	if n != 4 || !ok {
		t.Fatalf("Stream() = (%d, %v), expected (4, true)", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0.25 || s[1] != 0.75 {
			t.Errorf("sample %d = %v, expected [0.25 0.75]", i, s)
		}
	}
}

func TestClipStreamLoops(t *testing.T) {
	clip := testClip(10)

	tests := []struct {
		loops    int
		expected int
	}{
		{0, 10},
		{2, 30},
	}
	for _, tc := range tests {
		if got := drain(clipStream(clip, tc.loops)); got != tc.expected {
			t.Errorf("clipStream(loops=%d) played %d samples, expected %d", tc.loops, got, tc.expected)
		}
	}
}

func TestBeepVoiceReportsDone(t *testing.T) {
	v := newBeepVoice(clipStream(testClip(5), 0), 1, 1)
	if v.Done() {
		t.Fatal("new voice should not be done")
	}
	drain(v.ctrl)
	if !v.Done() {
		t.Error("voice should be done after draining")
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := decodeClip("theme.flac", strings.NewReader(""), 44100)
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("decodeClip(.flac) error = %v, expected unsupported format", err)
	}
}
