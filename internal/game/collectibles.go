package game

import "strings"

// LetterResult is the outcome of offering a letter to the word hunt.
type LetterResult int

const (
	LetterRejected LetterResult = iota // Not the next letter of the word
	LetterAccepted                     // Progress advanced
	WordComplete                       // Last letter; progress reset
)

// WordHunt collects a fixed word one letter at a time, in order.
type WordHunt struct {
	target    []string
	collected []string
}

// NewWordHunt creates a hunt for the given letters.
func NewWordHunt(letters []string) *WordHunt {
	target := make([]string, len(letters))
	for i, l := range letters {
		target[i] = strings.ToUpper(l)
	}
	return &WordHunt{target: target}
}

// Next returns the letter that should spawn next, or "" for an empty word.
func (w *WordHunt) Next() string {
	if len(w.target) == 0 {
		return ""
	}
	return w.target[len(w.collected)%len(w.target)]
}

// Collect offers a letter. Only the next expected letter advances the hunt.
// Collecting the final letter reports WordComplete once and starts over.
func (w *WordHunt) Collect(letter string) LetterResult {
	if len(w.target) == 0 || !strings.EqualFold(letter, w.Next()) {
		return LetterRejected
	}
	w.collected = append(w.collected, w.Next())
	if len(w.collected) == len(w.target) {
		w.collected = w.collected[:0]
		return WordComplete
	}
	return LetterAccepted
}

// Progress returns the letters collected so far.
func (w *WordHunt) Progress() string {
	return strings.Join(w.collected, "")
}

// Word returns the full target word.
func (w *WordHunt) Word() string {
	return strings.Join(w.target, "")
}

// SeasonHunt counts collected season tokens. It never decreases.
type SeasonHunt struct {
	Tokens int
}

// Collect adds one token and returns the new total.
func (s *SeasonHunt) Collect() int {
	s.Tokens++
	return s.Tokens
}
