package game

import "sort"

// Ledger tracks the remaining duration of every active timed effect.
// An entry exists exactly while its effect is active.
type Ledger struct {
	remaining map[PowerUpKind]float64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{remaining: make(map[PowerUpKind]float64)}
}

// Activate starts or refreshes an effect for d seconds.
func (l *Ledger) Activate(kind PowerUpKind, d float64) {
	if d <= 0 {
		delete(l.remaining, kind)
		return
	}
	l.remaining[kind] = d
}

// Active reports whether kind has an entry.
func (l *Ledger) Active(kind PowerUpKind) bool {
	_, ok := l.remaining[kind]
	return ok
}

// Remaining returns the seconds left on kind.
func (l *Ledger) Remaining(kind PowerUpKind) (float64, bool) {
	d, ok := l.remaining[kind]
	return d, ok
}

// Sweep counts every entry down by dt, removes those that ran out and
// returns them. Each expired kind is returned exactly once.
func (l *Ledger) Sweep(dt float64) []PowerUpKind {
	var expired []PowerUpKind
	for kind, d := range l.remaining {
		d -= dt
		if d <= 0 {
			expired = append(expired, kind)
			continue
		}
		l.remaining[kind] = d
	}
	for _, kind := range expired {
		delete(l.remaining, kind)
	}
	sortKinds(expired)
	return expired
}

// Kinds returns the active kinds in enum order.
func (l *Ledger) Kinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, len(l.remaining))
	for kind := range l.remaining {
		kinds = append(kinds, kind)
	}
	sortKinds(kinds)
	return kinds
}

// Len returns the number of active effects.
func (l *Ledger) Len() int {
	return len(l.remaining)
}

// Clear removes every entry without running teardown.
func (l *Ledger) Clear() {
	clear(l.remaining)
}

func sortKinds(kinds []PowerUpKind) {
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
}
