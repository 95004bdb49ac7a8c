package game

import "strings"

// MenuAction is what selecting a menu item asks the session to do.
type MenuAction int

const (
	MenuInfo MenuAction = iota // Read-only line; selecting re-reads status
	MenuStartRun
	MenuOpenShop
	MenuOpenAchievements
	MenuQuit
	MenuUpgrade // Item.Kind names the power-up
	MenuBuyMysteryBox
	MenuOpenMysteryBox
	MenuBack
)

func (a MenuAction) String() string {
	switch a {
	case MenuInfo:
		return "info"
	case MenuStartRun:
		return "start_run"
	case MenuOpenShop:
		return "shop"
	case MenuOpenAchievements:
		return "achievements"
	case MenuQuit:
		return "quit"
	case MenuUpgrade:
		return "upgrade"
	case MenuBuyMysteryBox:
		return "buy_mystery_box"
	case MenuOpenMysteryBox:
		return "open_mystery_box"
	case MenuBack:
		return "back"
	default:
		return "?"
	}
}

// MenuItem is one selectable line.
type MenuItem struct {
	Label  string
	Action MenuAction
	Kind   PowerUpKind
}

// Menu is a vertical list with a focus index.
type Menu struct {
	Title string
	Items []MenuItem
	index int
}

// NewMenu creates a menu focused on its first item.
func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{Title: title, Items: items}
}

// Index returns the focused position.
func (m *Menu) Index() int {
	return m.index
}

// Current returns the focused item.
func (m *Menu) Current() (MenuItem, bool) {
	if m.index < 0 || m.index >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.index], true
}

// Move shifts focus by delta. It reports false and keeps focus at an edge.
func (m *Menu) Move(delta int) bool {
	next := m.index + delta
	if next < 0 || next >= len(m.Items) {
		return false
	}
	m.index = next
	return true
}

// First focuses the first item; false if already there.
func (m *Menu) First() bool {
	if m.index == 0 || len(m.Items) == 0 {
		return false
	}
	m.index = 0
	return true
}

// Last focuses the last item; false if already there.
func (m *Menu) Last() bool {
	last := len(m.Items) - 1
	if m.index == last || last < 0 {
		return false
	}
	m.index = last
	return true
}

// JumpLetter focuses the first item whose label starts with r.
func (m *Menu) JumpLetter(r rune) bool {
	prefix := strings.ToLower(string(r))
	for i, it := range m.Items {
		if strings.HasPrefix(strings.ToLower(it.Label), prefix) {
			m.index = i
			return true
		}
	}
	return false
}

// MenuController holds the single active menu and its close callback.
type MenuController struct {
	active  *Menu
	onClose func()
}

// Open replaces the active menu.
func (c *MenuController) Open(m *Menu, onClose func()) {
	c.active = m
	c.onClose = onClose
}

// Active returns the open menu or nil.
func (c *MenuController) Active() *Menu {
	return c.active
}

// Dismiss forgets the active menu without running its callback.
func (c *MenuController) Dismiss() {
	c.active = nil
	c.onClose = nil
}

// Close runs the active menu's callback. It reports false when the menu
// has no callback and stays open.
func (c *MenuController) Close() bool {
	if c.onClose == nil {
		return false
	}
	cb := c.onClose
	c.active = nil
	c.onClose = nil
	cb()
	return true
}
