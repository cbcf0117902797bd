package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/content"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/parameter"
	"github.com/solvane/stardrift/vmath"
)

// SpawnSystem keeps the asteroid field populated and summons the boss
// once the score threshold is reached. The PRNG is constructed by the
// shell and threaded in, never a package global, so runs are
// reproducible from the seed
type SpawnSystem struct {
	stats *Stats
	rng   *rand.Rand

	halfWidth  float64
	halfHeight float64
}

func NewSpawnSystem(stats *Stats, rng *rand.Rand, halfWidth, halfHeight float64) *SpawnSystem {
	return &SpawnSystem{
		stats:      stats,
		rng:        rng,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	for w.Components.Asteroids.Count() < parameter.AsteroidTargetCount {
		s.spawnAsteroid(w)
	}

	if !s.stats.BossSummoned && s.stats.Score >= parameter.BossSpawnScore {
		content.NewBoss(w, s.edgePosition())
		s.stats.BossSummoned = true
	}
}

// spawnAsteroid places a large rock on the world edge drifting inward,
// never on top of the player
func (s *SpawnSystem) spawnAsteroid(w *engine.World) {
	pos := s.edgePosition()

	inward := vmath.V3FNormalize(vmath.V3FScale(pos, -1))
	spread := (s.rng.Float64() - 0.5) * math.Pi / 2
	angle := math.Atan2(inward.Y, inward.X) + spread
	speed := parameter.AsteroidMinSpeed +
		s.rng.Float64()*(parameter.AsteroidMaxSpeed-parameter.AsteroidMinSpeed)

	content.NewAsteroid(w, component.AsteroidLarge, pos, vmath.V3FScale(vmath.FromAngle(angle), speed))
}

// edgePosition picks a random point on the world boundary
func (s *SpawnSystem) edgePosition() vmath.Vec3F {
	switch s.rng.Intn(4) {
	case 0:
		return vmath.Vec3F{X: -s.halfWidth, Y: (s.rng.Float64()*2 - 1) * s.halfHeight}
	case 1:
		return vmath.Vec3F{X: s.halfWidth, Y: (s.rng.Float64()*2 - 1) * s.halfHeight}
	case 2:
		return vmath.Vec3F{X: (s.rng.Float64()*2 - 1) * s.halfWidth, Y: -s.halfHeight}
	default:
		return vmath.Vec3F{X: (s.rng.Float64()*2 - 1) * s.halfWidth, Y: s.halfHeight}
	}
}
