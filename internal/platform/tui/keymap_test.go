package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blind-surfers/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		letter rune
		quit   bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, 0, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, 0, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, 0, false},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, core.ActionHome, 0, false},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, core.ActionEnd, 0, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, 0, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, 0, false},
		{"pgup", tea.KeyMsg{Type: tea.KeyPgUp}, core.ActionVolumeUp, 0, false},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, core.ActionVolumeDown, 0, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0, true},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}}, core.ActionLetter, 's', false},
		{"use key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, core.ActionUseKey, 'k', false},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, core.ActionNone, 0, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, quit := km.MapKey(tt.msg)
			if ev.Action != tt.action {
				t.Errorf("MapKey() action = %v, expected %v", ev.Action, tt.action)
			}
			if ev.Letter != tt.letter {
				t.Errorf("MapKey() letter = %q, expected %q", ev.Letter, tt.letter)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("FullHelp() has %d bindings, expected 11", total)
	}
}
