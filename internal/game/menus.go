package game

import "fmt"

func mainMenu() *Menu {
	return NewMenu("Main Menu", []MenuItem{
		{Label: "Start Run", Action: MenuStartRun},
		{Label: "Shop", Action: MenuOpenShop},
		{Label: "Achievements", Action: MenuOpenAchievements},
		{Label: "Quit", Action: MenuQuit},
	})
}

// shopMenu lists the balance, one upgrade per power-up with its price, and
// the mystery box actions.
func (s *Session) shopMenu() *Menu {
	items := []MenuItem{{Label: s.balanceLine(), Action: MenuInfo}}
	for _, kind := range UpgradeableKinds {
		label := fmt.Sprintf("Upgrade %s Duration", kind.Title())
		if cost, ok := s.economy.UpgradeCost(kind); ok {
			label = fmt.Sprintf("%s, %d coins", label, cost)
		}
		items = append(items, MenuItem{Label: label, Action: MenuUpgrade, Kind: kind})
	}
	items = append(items,
		MenuItem{Label: fmt.Sprintf("Buy Mystery Box, %d coins", s.economy.MysteryBoxCost()), Action: MenuBuyMysteryBox},
		MenuItem{Label: "Open Mystery Box", Action: MenuOpenMysteryBox},
		MenuItem{Label: "Back", Action: MenuBack},
	)
	return NewMenu("Shop", items)
}

func (s *Session) achievementsMenu() *Menu {
	var items []MenuItem
	for _, line := range s.achievements.Status() {
		items = append(items, MenuItem{Label: line, Action: MenuInfo})
	}
	items = append(items, MenuItem{Label: "Back", Action: MenuBack})
	return NewMenu("Achievements", items)
}

func (s *Session) balanceLine() string {
	e := s.economy
	return fmt.Sprintf("Balance: %d coins, %d keys, %d mystery boxes", e.Coins, e.Keys, e.MysteryBoxes)
}

// openMenu makes m active and reads its first item.
func (s *Session) openMenu(m *Menu, onClose func()) {
	s.menus.Open(m, onClose)
	s.cue(cueMenuOpen, LaneCenter, 0)
	if it, ok := m.Current(); ok {
		s.say(it.Label)
	}
}

// returnToMainMenu leaves any run and plays the theme over the main menu.
func (s *Session) returnToMainMenu() {
	s.state = StateMenu
	s.audio.PlayMusic(musicTheme, true)
	s.openMenu(mainMenu(), nil)
}

func (s *Session) closeSubmenu() {
	s.audio.PlayMusic(musicTheme, true)
	s.openMenu(mainMenu(), nil)
}

// selectItem performs the focused item's action.
func (s *Session) selectItem(it MenuItem) {
	switch it.Action {
	case MenuInfo:
		s.say(it.Label)
	case MenuStartRun:
		s.menus.Dismiss()
		s.audio.StopMusic()
		s.startRun()
	case MenuOpenShop:
		s.openMenu(s.shopMenu(), s.closeSubmenu)
	case MenuOpenAchievements:
		s.audio.PlayMusic(musicAchievements, true)
		s.say("Achievement status listed")
		s.openMenu(s.achievementsMenu(), s.closeSubmenu)
	case MenuQuit:
		s.menus.Dismiss()
		s.audio.StopMusic()
		s.quit = true
		s.say("Goodbye")
	case MenuUpgrade:
		s.buyUpgrade(it.Kind)
	case MenuBuyMysteryBox:
		s.buyMysteryBox()
	case MenuOpenMysteryBox:
		s.openMysteryBox()
	case MenuBack:
		s.cue(cueMenuClose, LaneCenter, 0)
		s.menus.Close()
	}
}

func (s *Session) buyUpgrade(kind PowerUpKind) {
	if !s.economy.BuyUpgrade(kind) {
		s.say("Not enough coins")
		return
	}
	s.say("Upgrade purchased")
	s.logger.Info("upgrade purchased", "powerup", kind, "duration", s.economy.Duration(kind))
	s.refreshShop()
}

func (s *Session) buyMysteryBox() {
	if !s.economy.BuyMysteryBox() {
		s.say("Not enough coins")
		return
	}
	s.say("Mystery box purchased")
	s.refreshShop()
}

func (s *Session) openMysteryBox() {
	reward, ok := s.economy.OpenMysteryBox(s.rng)
	if !ok {
		s.say("No mystery boxes available")
		return
	}
	s.cue(cueMysteryRoll, LaneCenter, 0)
	s.say(fmt.Sprintf("You won %s", reward))
	s.logger.Info("mystery box opened", "reward", reward)
	s.refreshShop()
}

// refreshShop rebuilds the shop labels in place, keeping focus.
func (s *Session) refreshShop() {
	m := s.menus.Active()
	if m == nil || m.Title != "Shop" {
		return
	}
	fresh := s.shopMenu()
	m.Items = fresh.Items
}
