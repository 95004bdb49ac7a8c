package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blind-surfers/internal/core"
)

// KeyMap defines the key bindings of the game. Letter keys are left free
// for jump-to-letter in menus.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	Confirm    key.Binding
	Back       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Home, k.End, k.Confirm, k.Back},
		{k.VolumeUp, k.VolumeDown, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "lane left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "lane right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "jump / previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "roll / next"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first item"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last item"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "music louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "music quieter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an input event.
// Returns the event (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.KeyEvent, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.Key(core.ActionQuit), true
	case key.Matches(msg, k.Left):
		return core.Key(core.ActionLeft), false
	case key.Matches(msg, k.Right):
		return core.Key(core.ActionRight), false
	case key.Matches(msg, k.Up):
		return core.Key(core.ActionUp), false
	case key.Matches(msg, k.Down):
		return core.Key(core.ActionDown), false
	case key.Matches(msg, k.Home):
		return core.Key(core.ActionHome), false
	case key.Matches(msg, k.End):
		return core.Key(core.ActionEnd), false
	case key.Matches(msg, k.Confirm):
		return core.Key(core.ActionConfirm), false
	case key.Matches(msg, k.Back):
		return core.Key(core.ActionBack), false
	case key.Matches(msg, k.VolumeUp):
		return core.Key(core.ActionVolumeUp), false
	case key.Matches(msg, k.VolumeDown):
		return core.Key(core.ActionVolumeDown), false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		return core.LetterKey(msg.Runes[0]), false
	}
	return core.Key(core.ActionNone), false
}
