package parameter

import "time"

// Asteroid field tuning

const (
	AsteroidTargetCount = 8

	AsteroidLargeRadius  = 26.0
	AsteroidMediumRadius = 14.0
	AsteroidSmallRadius  = 7.0

	AsteroidLargeHealth  = 30.0
	AsteroidMediumHealth = 20.0
	AsteroidSmallHealth  = 10.0

	AsteroidMinSpeed = 20.0
	AsteroidMaxSpeed = 70.0
	AsteroidMass     = 4.0

	// Splits per destroyed large/medium asteroid
	AsteroidSplitCount = 2

	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

// Boss tuning

const (
	BossRadius       = 32.0
	BossHealth       = 400.0
	BossMass         = 20.0
	BossSpeed        = 30.0
	BossFireInterval = 2 * time.Second
	ScoreBoss        = 1000

	BossProjectileSpeed    = 160.0
	BossProjectileRadius   = 3.0
	BossProjectileLifetime = 4 * time.Second

	// Score threshold that summons the boss
	BossSpawnScore = 600
)

// Power-up tuning

const (
	PowerUpRadius   = 6.0
	PowerUpLifetime = 12 * time.Second

	// Drop chance per destroyed asteroid, in [0,1)
	PowerUpDropChance = 0.12

	PowerUpShieldDuration = 6 * time.Second
)
