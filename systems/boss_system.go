package systems

import (
	"time"

	"github.com/solvane/stardrift/content"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/vmath"
)

// BossSystem times the boss's volleys: every interval it shoots a
// hazard projectile at the player's current position
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (s *BossSystem) Update(w *engine.World, dt time.Duration) {
	c := w.Components

	players := w.Query().
		With(c.Players).
		With(c.Transforms).
		Execute()
	if len(players) == 0 {
		return
	}
	target, _ := c.Transforms.Get(players[0])

	bosses := w.Query().
		With(c.Bosses).
		With(c.Transforms).
		Execute()

	for _, e := range bosses {
		boss, _ := c.Bosses.Get(e)
		boss.FireCooldown -= dt
		if boss.FireCooldown <= 0 {
			transform, _ := c.Transforms.Get(e)
			dir := vmath.V3FSub(target.Position, transform.Position)
			content.NewBossProjectile(w, transform.Position, dir)
			boss.FireCooldown = boss.FireInterval
		}
		c.Bosses.Add(e, boss)
	}
}
