package game

// spawn runs one independent trial per entity type.
func (s *Session) spawn(dt float64) {
	sp := s.cfg.Spawn
	if s.roll(sp.Obstacle, dt) {
		s.spawnObstacle(s.randomLane(), s.randomObstacleKind(), s.randomHeight())
	}
	if s.roll(sp.PowerUp, dt) {
		kind := UpgradeableKinds[s.rng.Intn(len(UpgradeableKinds))]
		s.spawnPowerUp(s.randomLane(), kind)
	}
	if s.roll(sp.Letter, dt) {
		s.spawnLetter(s.randomLane())
	}
	if s.roll(sp.SeasonToken, dt) {
		s.spawnPowerUp(s.randomLane(), PowerUpSeasonToken)
	}
	if s.roll(sp.Coin, dt) {
		s.spawnCoin(s.randomLane())
	}
}

func (s *Session) roll(rate, dt float64) bool {
	return s.rng.Float64() < s.cfg.Spawn.Chance(rate, dt)
}

func (s *Session) randomLane() Lane {
	return Lane(s.rng.Intn(int(LaneCount)))
}

func (s *Session) randomHeight() Height {
	if s.rng.Float64() < s.cfg.Gameplay.HighObstacleChance {
		return HeightHigh
	}
	return HeightLow
}

func (s *Session) randomObstacleKind() ObstacleKind {
	if s.rng.Float64() < s.cfg.Gameplay.TrainChance {
		return ObstacleTrain
	}
	return ObstacleBarrier
}

func (s *Session) entityAt(lane Lane) Entity {
	return Entity{Lane: lane, Distance: s.cfg.Game.MaxDistance, Active: true}
}

func (s *Session) spawnObstacle(lane Lane, kind ObstacleKind, height Height) *Obstacle {
	s.obstacleSeq++
	o := &Obstacle{
		Entity: s.entityAt(lane),
		Kind:   kind,
		Height: height,
		Tag:    obstacleTag(s.obstacleSeq),
	}
	s.obstacles = append(s.obstacles, o)
	s.startObstacleLoop(o)
	return o
}

func (s *Session) spawnPowerUp(lane Lane, kind PowerUpKind) *PowerUp {
	p := &PowerUp{Entity: s.entityAt(lane), Kind: kind}
	s.powerUps = append(s.powerUps, p)
	name := cuePowerUpSpawn
	if kind == PowerUpSeasonToken {
		name = cueSeasonToken
	}
	s.cue(name, lane, p.Distance)
	return p
}

// spawnLetter places the next letter the word hunt needs.
func (s *Session) spawnLetter(lane Lane) *Letter {
	next := s.words.Next()
	if next == "" {
		return nil
	}
	l := &Letter{Entity: s.entityAt(lane), Letter: next}
	s.letters = append(s.letters, l)
	s.cue(cueLetterSpawn, lane, l.Distance)
	return l
}

func (s *Session) spawnCoin(lane Lane) *Coin {
	c := &Coin{Entity: s.entityAt(lane)}
	s.coins = append(s.coins, c)
	s.cue(cueCoinSpawn, lane, c.Distance)
	return c
}
