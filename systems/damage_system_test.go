package systems

import (
	"testing"
	"time"

	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/engine"
)

// fakePairs feeds hand-built records into a resolver under test
type fakePairs struct {
	records []engine.CollisionRecord
}

func (f *fakePairs) Pairs() []engine.CollisionRecord {
	return f.records
}

func pairOf(a, b core.Entity, la, lb component.Layer) engine.CollisionRecord {
	return engine.CollisionRecord{EntityA: a, EntityB: b, LayerA: la, LayerB: lb}
}

func newProjectile(w *engine.World, damage float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Damages.Add(e, component.DamageComponent{Amount: damage})
	return e
}

func newTarget(w *engine.World, health float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Healths.Add(e, component.HealthComponent{Current: health, Max: health})
	return e
}

func TestDamageSystemProjectileHit(t *testing.T) {
	w := engine.NewWorld()
	projectile := newProjectile(w, 10)
	asteroid := newTarget(w, 30)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(projectile, asteroid, component.LayerProjectile, component.LayerAsteroid),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	health, _ := w.Components.Healths.Get(asteroid)
	if health.Current != 20 {
		t.Errorf("expected health 20 after 10 damage, got %v", health.Current)
	}
	if w.IsAlive(projectile) {
		t.Error("projectile must be destroyed on impact")
	}
	if !w.IsAlive(asteroid) {
		t.Error("surviving target must stay alive")
	}
}

func TestDamageSystemProjectileOrientationSwapped(t *testing.T) {
	// Resolution must be orientation-independent: same outcome when the
	// projectile arrives as EntityB
	w := engine.NewWorld()
	projectile := newProjectile(w, 10)
	boss := newTarget(w, 400)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(boss, projectile, component.LayerBoss, component.LayerProjectile),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	health, _ := w.Components.Healths.Get(boss)
	if health.Current != 390 {
		t.Errorf("expected health 390, got %v", health.Current)
	}
	if w.IsAlive(projectile) {
		t.Error("projectile must be destroyed on impact")
	}
}

func TestDamageSystemHazardKillsPlayer(t *testing.T) {
	w := engine.NewWorld()
	player := newTarget(w, 100)
	asteroid := newTarget(w, 30)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(player, asteroid, component.LayerPlayer, component.LayerAsteroid),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	health, _ := w.Components.Healths.Get(player)
	if health.Current != 0 {
		t.Errorf("hazard contact is an instant kill, got health %v", health.Current)
	}
	// The hazard itself is untouched
	if rock, _ := w.Components.Healths.Get(asteroid); rock.Current != 30 {
		t.Errorf("hazard must keep its health, got %v", rock.Current)
	}
	if !w.IsAlive(asteroid) {
		t.Error("hazard must not be destroyed by contact")
	}
}

func TestDamageSystemInvulnerabilityBlocksHazard(t *testing.T) {
	w := engine.NewWorld()
	player := w.CreateEntity()
	w.Components.Healths.Add(player, component.HealthComponent{
		Current:      100,
		Max:          100,
		Invulnerable: true,
	})
	boss := newTarget(w, 400)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(boss, player, component.LayerBoss, component.LayerPlayer),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	health, _ := w.Components.Healths.Get(player)
	if health.Current != 100 {
		t.Errorf("invulnerable player must be unharmed, got %v", health.Current)
	}
}

func TestDamageSystemIgnoresUnrecognizedPairs(t *testing.T) {
	w := engine.NewWorld()
	a := newTarget(w, 30)
	b := newTarget(w, 30)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(a, b, component.LayerAsteroid, component.LayerAsteroid),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	for _, e := range []core.Entity{a, b} {
		health, _ := w.Components.Healths.Get(e)
		if health.Current != 30 {
			t.Errorf("asteroid/asteroid contact must be a no-op, got %v", health.Current)
		}
	}
}

func TestDamageSystemStalePairGuard(t *testing.T) {
	// A projectile can appear in two pairs in one tick; the first
	// resolution destroys it and the second must become a no-op
	w := engine.NewWorld()
	projectile := newProjectile(w, 10)
	first := newTarget(w, 30)
	second := newTarget(w, 30)

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(projectile, first, component.LayerProjectile, component.LayerAsteroid),
		pairOf(projectile, second, component.LayerProjectile, component.LayerAsteroid),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	if h, _ := w.Components.Healths.Get(first); h.Current != 20 {
		t.Errorf("first target should take the hit, got %v", h.Current)
	}
	if h, _ := w.Components.Healths.Get(second); h.Current != 30 {
		t.Errorf("second target must be spared by the liveness guard, got %v", h.Current)
	}
}

func TestDamageSystemProjectileAlwaysConsumed(t *testing.T) {
	// No health on the target: the shot still burns up
	w := engine.NewWorld()
	projectile := newProjectile(w, 10)
	bare := w.CreateEntity()

	source := &fakePairs{records: []engine.CollisionRecord{
		pairOf(projectile, bare, component.LayerProjectile, component.LayerAsteroid),
	}}
	NewDamageSystem(source).Update(w, time.Millisecond*16)

	if w.IsAlive(projectile) {
		t.Error("projectile must be consumed even without a health target")
	}
}
