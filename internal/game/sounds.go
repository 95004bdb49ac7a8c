package game

// Sound asset names. Extension-less names are resolved by the mixer.
const (
	cueCrash           = "crash"
	cueHoverboardBreak = "hoverboard_break"
	cueHoverboardOn    = "hoverboard_on"
	cueMultiplierOn    = "multiplier_on"
	cuePowerUpSpawn    = "powerup_spawn"
	cuePowerUpCollect  = "powerup_collect"
	cueLetterSpawn     = "letter_spawn"
	cueSeasonToken     = "season_token"
	cueCoinSpawn       = "coin_spawn"
	cueCoinCollect     = "coin_collect"
	cueTrainHonk       = "train_honk"
	cueSwoosh          = "swoosh"
	cueJump            = "jump"
	cueSuperJump       = "super_jump"
	cueRoll            = "roll"
	cueAchievement     = "achievement_unlock"
	cueMysteryRoll     = "mystery_roll"

	cueMenuMove  = "menumove"
	cueMenuEdge  = "menuedge"
	cueMenuEnter = "menuenter"
	cueMenuOpen  = "menuopen"
	cueMenuClose = "menuclose"

	loopJetpack = "jetpack_loop"
	loopMagnet  = "magnet_loop"

	musicTheme        = "theme"
	musicAchievements = "achmusic"
)

// Loop tags for effects. Obstacles use obstacle_<n>.
const (
	tagJetpack = "jetpack"
	tagMagnet  = "magnet"
)
