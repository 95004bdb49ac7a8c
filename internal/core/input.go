package core

// Action represents a semantic input, abstracted from physical key presses.
// The same action means different things depending on the session state:
// ActionUp moves the menu focus in a menu and starts a jump while running.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow - change lane left
	ActionRight             // Right arrow - change lane right
	ActionUp                // Up arrow - jump, or previous menu item
	ActionDown              // Down arrow - roll, or next menu item
	ActionHome              // Home - first menu item
	ActionEnd               // End - last menu item
	ActionConfirm           // Enter - activate menu item
	ActionBack              // Escape - close menu, return to main menu
	ActionLetter            // a-z - jump to menu item by first letter
	ActionUseKey            // K - spend a key to continue after a crash
	ActionVolumeUp          // PageUp - raise music volume
	ActionVolumeDown        // PageDown - lower music volume
	ActionQuit              // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionHome:
		return "Home"
	case ActionEnd:
		return "End"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionLetter:
		return "Letter"
	case ActionUseKey:
		return "UseKey"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single discrete key press translated to an action.
// Letter carries the lowercase rune for letter keys (including K) so menus
// can jump by first letter; it is zero for non-letter keys.
type KeyEvent struct {
	Action Action
	Letter rune
}

// Key builds a KeyEvent for a non-letter action.
func Key(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// LetterKey builds a KeyEvent for a letter key press.
func LetterKey(r rune) KeyEvent {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r == 'k' {
		return KeyEvent{Action: ActionUseKey, Letter: r}
	}
	return KeyEvent{Action: ActionLetter, Letter: r}
}

// InputFrame holds the key events collected between two simulation frames.
// Events are kept in arrival order because menu navigation depends on it.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev KeyEvent) {
	if ev.Action == ActionNone {
		return
	}
	f.Events = append(f.Events, ev)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for reuse, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
