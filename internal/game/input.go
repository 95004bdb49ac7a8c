package game

import "github.com/vovakirdan/blind-surfers/internal/core"

// HandleInput applies one key event to the current state. Volume keys work
// everywhere.
func (s *Session) HandleInput(ev core.KeyEvent) {
	switch ev.Action {
	case core.ActionVolumeUp:
		s.audio.AdjustMusicVolume(s.cfg.Audio.VolumeStep)
		return
	case core.ActionVolumeDown:
		s.audio.AdjustMusicVolume(-s.cfg.Audio.VolumeStep)
		return
	}
	switch s.state {
	case StateMenu:
		s.menuInput(ev)
	case StateRunning:
		s.runInput(ev)
	case StateGameOver:
		s.gameOverInput(ev)
	}
}

func (s *Session) menuInput(ev core.KeyEvent) {
	m := s.menus.Active()
	if m == nil {
		return
	}
	switch ev.Action {
	case core.ActionUp:
		s.focusMoved(m, m.Move(-1))
	case core.ActionDown:
		s.focusMoved(m, m.Move(1))
	case core.ActionHome:
		s.focusMoved(m, m.First())
	case core.ActionEnd:
		s.focusMoved(m, m.Last())
	case core.ActionConfirm:
		if it, ok := m.Current(); ok {
			s.cue(cueMenuEnter, LaneCenter, 0)
			s.selectItem(it)
		}
	case core.ActionBack:
		if s.menus.Close() {
			s.cue(cueMenuClose, LaneCenter, 0)
		} else {
			s.cue(cueMenuEdge, LaneCenter, 0)
		}
	case core.ActionLetter, core.ActionUseKey:
		if ev.Letter != 0 {
			s.focusMoved(m, m.JumpLetter(ev.Letter))
		}
	}
}

// focusMoved reads the newly focused item, or plays the edge cue.
func (s *Session) focusMoved(m *Menu, moved bool) {
	if !moved {
		s.cue(cueMenuEdge, LaneCenter, 0)
		return
	}
	s.cue(cueMenuMove, LaneCenter, 0)
	if it, ok := m.Current(); ok {
		s.say(it.Label)
	}
}

func (s *Session) runInput(ev core.KeyEvent) {
	p := s.player
	switch ev.Action {
	case core.ActionLeft:
		if p.MoveLeft() {
			s.cue(cueSwoosh, p.Lane, 0)
		}
	case core.ActionRight:
		if p.MoveRight() {
			s.cue(cueSwoosh, p.Lane, 0)
		}
	case core.ActionUp:
		if p.SuperSneakers {
			p.Jump.Start(s.cfg.Gameplay.SuperJumpDuration)
			s.cue(cueSuperJump, p.Lane, 0)
		} else {
			p.Jump.Start(s.cfg.Gameplay.JumpDuration)
			s.cue(cueJump, p.Lane, 0)
		}
		s.stats.Jumps++
	case core.ActionDown:
		p.Roll.Start(s.cfg.Gameplay.RollDuration)
		s.cue(cueRoll, p.Lane, 0)
	}
}

func (s *Session) gameOverInput(ev core.KeyEvent) {
	switch ev.Action {
	case core.ActionUseKey:
		s.continueWithKey()
	case core.ActionBack:
		s.finishRun(true)
		s.returnToMainMenu()
	}
}
