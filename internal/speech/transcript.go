package speech

import "sync"

// Transcript keeps the most recent announcements for display.
type Transcript struct {
	mu    sync.Mutex
	lines []string
	limit int
}

// NewTranscript creates a transcript holding at most limit lines.
func NewTranscript(limit int) *Transcript {
	if limit <= 0 {
		limit = 1
	}
	return &Transcript{limit: limit}
}

// Add appends a line, dropping the oldest when full.
func (t *Transcript) Add(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if over := len(t.lines) - t.limit; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
}

// Lines returns a copy of the transcript, oldest first.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Last returns the most recent line, or "" when empty.
func (t *Transcript) Last() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return ""
	}
	return t.lines[len(t.lines)-1]
}
