package game

import "fmt"

// startObstacleLoop begins the approach sound of an obstacle.
func (s *Session) startObstacleLoop(o *Obstacle) {
	switch o.Kind {
	case ObstacleTrain:
		s.audio.StartLoopPan(o.Tag, o.LoopSound(), s.trainPan(o), o.Distance)
	case ObstacleBarrier:
		s.audio.StartLoop(o.Tag, o.LoopSound(), int(o.Lane), o.Distance)
	}
}

// trainPan sweeps a train from the center toward its lane as it closes in.
func (s *Session) trainPan(o *Obstacle) float64 {
	progress := 1 - o.Distance/s.cfg.Game.MaxDistance
	return s.audio.LanePan(int(o.Lane)) * progress
}

func (s *Session) obstacleMoved(o *Obstacle) {
	// A crash earlier in the same frame already silenced the track.
	if s.state != StateRunning {
		return
	}
	switch o.Kind {
	case ObstacleTrain:
		s.audio.UpdateLoopPan(o.Tag, s.trainPan(o), o.Distance)
		if !o.Honked && o.Distance <= s.cfg.Gameplay.TrainHonkDistance {
			o.Honked = true
			s.cue(cueTrainHonk, o.Lane, o.Distance)
		}
	case ObstacleBarrier:
		s.audio.UpdateLoop(o.Tag, int(o.Lane), o.Distance)
	}
}

func (s *Session) obstacleArrived(o *Obstacle) {
	s.audio.StopLoop(o.Tag)
	if o.Lane != s.player.Lane || s.player.Clears(o.Height) {
		return
	}
	s.resolveCollision(o)
}

// resolveCollision applies a hit. A jetpack ignores it, a hoverboard absorbs
// it once, otherwise the run is over.
func (s *Session) resolveCollision(o *Obstacle) {
	if s.state != StateRunning {
		return
	}
	if s.player.Jetpack {
		return
	}
	if s.player.HoverboardActive() {
		s.player.Hoverboard.Stop()
		s.cue(cueHoverboardBreak, o.Lane, 0)
		return
	}
	s.gameOver(o.Lane)
}

func (s *Session) powerUpArrived(p *PowerUp) {
	if p.Lane == s.player.Lane {
		s.resolvePickup(p)
	}
}

// resolvePickup starts a power-up's effect. Durations come from the
// economy so shop upgrades apply.
func (s *Session) resolvePickup(p *PowerUp) {
	d := s.economy.Duration(p.Kind)
	switch p.Kind {
	case PowerUpJetpack:
		s.player.Jetpack = true
		s.ledger.Activate(PowerUpJetpack, d)
		s.audio.StartLoop(tagJetpack, loopJetpack, int(LaneCenter), 0)
	case PowerUpSuperSneakers:
		s.player.SuperSneakers = true
		s.ledger.Activate(PowerUpSuperSneakers, d)
	case PowerUpMagnet:
		s.ledger.Activate(PowerUpMagnet, d)
		s.audio.StartLoop(tagMagnet, loopMagnet, int(LaneCenter), 0)
	case PowerUpMultiplier:
		s.multiplier = s.cfg.Gameplay.ScoreMultiplier
		s.ledger.Activate(PowerUpMultiplier, d)
		s.cue(cueMultiplierOn, LaneCenter, 0)
	case PowerUpHoverboard:
		s.player.Hoverboard.Start(d)
		s.cue(cueHoverboardOn, LaneCenter, 0)
	case PowerUpSeasonToken:
		s.season.Collect()
		s.say("Season token collected")
	}
	s.cue(cuePowerUpCollect, p.Lane, 0)
}

// teardown undoes an expired ledger effect.
func (s *Session) teardown(kind PowerUpKind) {
	switch kind {
	case PowerUpJetpack:
		s.player.Jetpack = false
		s.audio.StopLoop(tagJetpack)
	case PowerUpSuperSneakers:
		s.player.SuperSneakers = false
	case PowerUpMagnet:
		s.audio.StopLoop(tagMagnet)
	case PowerUpMultiplier:
		s.multiplier = 1
	case PowerUpHoverboard, PowerUpSeasonToken:
		// Not ledger effects.
	}
}

func (s *Session) letterArrived(l *Letter) {
	if l.Lane != s.player.Lane {
		return
	}
	switch s.words.Collect(l.Letter) {
	case LetterRejected:
		s.say(fmt.Sprintf("%s is not the next letter. Looking for %s", l.Letter, s.words.Next()))
	case LetterAccepted:
		s.say(fmt.Sprintf("You collected %s!", l.Letter))
	case WordComplete:
		s.say(fmt.Sprintf("You collected %s!", l.Letter))
		s.say("Word hunt complete")
		s.economy.AddCoins(s.cfg.Gameplay.WordHuntReward)
	}
}

// coinArrived collects coins in the player's lane, or in any lane while a
// magnet is active.
func (s *Session) coinArrived(c *Coin) {
	if c.Lane == s.player.Lane || s.ledger.Active(PowerUpMagnet) {
		s.collectCoin(c.Lane)
	}
}

func (s *Session) collectCoin(lane Lane) {
	s.economy.AddCoins(1)
	s.stats.TotalCoins++
	s.run.coins++
	s.cue(cueCoinCollect, lane, 0)
}
