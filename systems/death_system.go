package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/content"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/parameter"
	"github.com/solvane/stardrift/vmath"
)

// DeathSystem reacts to health reaching zero: the kernel only exposes the
// value, removal and respawn live here. Destroyed asteroids split and may
// drop a power-up; a destroyed player loses a life and respawns with an
// invulnerability window
type DeathSystem struct {
	stats *Stats
	rng   *rand.Rand

	respawnPending bool
	respawnIn      time.Duration
	pendingPlayer  component.PlayerComponent
}

func NewDeathSystem(stats *Stats, rng *rand.Rand) *DeathSystem {
	return &DeathSystem{stats: stats, rng: rng}
}

func (s *DeathSystem) Update(w *engine.World, dt time.Duration) {
	if s.respawnPending {
		s.respawnIn -= dt
		if s.respawnIn <= 0 {
			ship := content.NewShip(w)
			w.Components.Players.Add(ship, s.pendingPlayer)
			s.respawnPending = false
		}
	}

	healths := w.Components.Healths
	for _, e := range healths.All() {
		health, _ := healths.Get(e)
		if health.Current > 0 {
			continue
		}

		switch {
		case w.Components.Players.Has(e):
			s.playerDied(w, e)
		case w.Components.Asteroids.Has(e):
			s.asteroidDied(w, e)
		case w.Components.Bosses.Has(e):
			s.bossDied(w, e)
		default:
			w.DestroyEntity(e)
		}
	}
}

func (s *DeathSystem) playerDied(w *engine.World, e core.Entity) {
	player, _ := w.Components.Players.Get(e)
	player.Lives--
	s.stats.Lives = player.Lives
	w.DestroyEntity(e)

	if player.Lives <= 0 {
		s.stats.GameOver = true
		return
	}

	// Fresh ship at the origin after a short delay, carrying the
	// reduced life count
	s.respawnPending = true
	s.respawnIn = parameter.PlayerRespawnDelay
	s.pendingPlayer = player
}

func (s *DeathSystem) asteroidDied(w *engine.World, e core.Entity) {
	s.award(w, e)

	asteroid, _ := w.Components.Asteroids.Get(e)
	transform, _ := w.Components.Transforms.Get(e)
	w.DestroyEntity(e)

	if next, splits := splitSize(asteroid.Size); splits {
		for i := 0; i < parameter.AsteroidSplitCount; i++ {
			angle := s.rng.Float64() * 2 * math.Pi
			speed := parameter.AsteroidMinSpeed +
				s.rng.Float64()*(parameter.AsteroidMaxSpeed-parameter.AsteroidMinSpeed)
			vel := vmath.V3FScale(vmath.FromAngle(angle), speed)
			content.NewAsteroid(w, next, transform.Position, vel)
		}
	}

	if s.rng.Float64() < parameter.PowerUpDropChance {
		kind := component.PowerUpShield
		if s.rng.Intn(2) == 1 {
			kind = component.PowerUpRapidFire
		}
		content.NewPowerUp(w, kind, transform.Position)
	}
}

func (s *DeathSystem) bossDied(w *engine.World, e core.Entity) {
	s.award(w, e)
	w.DestroyEntity(e)
	s.stats.BossDefeated = true
}

func (s *DeathSystem) award(w *engine.World, e core.Entity) {
	if score, ok := w.Components.Scores.Get(e); ok {
		s.stats.Score += score.Value
	}
}

func splitSize(size component.AsteroidSize) (component.AsteroidSize, bool) {
	switch size {
	case component.AsteroidLarge:
		return component.AsteroidMedium, true
	case component.AsteroidMedium:
		return component.AsteroidSmall, true
	default:
		return 0, false
	}
}
