package engine

import (
	"sync"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/solvane/stardrift/core"
)

// World contains all entities and their components using typed stores
// Entity ids are strictly increasing and never recycled, so a stale
// handle can never alias a newer entity
type World struct {
	nextEntityID core.Entity

	alive     *intmap.Map[core.Entity, struct{}]
	aliveList []core.Entity

	// Components exposes the typed stores for direct system access
	Components ComponentStore
	allStores  []AnyStore

	// Systems run strictly in registration order; the ordering is a
	// correctness requirement (physics before collision before damage)
	systems []System

	updateMutex sync.Mutex
}

// System is a per-tick logic unit
type System interface {
	Update(w *World, dt time.Duration)
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        intmap.New[core.Entity, struct{}](256),
		aliveList:    make([]core.Entity, 0, 256),
		systems:      make([]System, 0, 8),
	}
	w.Components, w.allStores = newComponentStore()
	return w
}

// CreateEntity reserves a new entity id and marks it alive
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive.Put(id, struct{}{})
	w.aliveList = append(w.aliveList, id)
	return id
}

// DestroyEntity removes the entity and all its components atomically
// Idempotent: destroying a dead or unknown id is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	if _, ok := w.alive.Get(e); !ok {
		return
	}
	for _, store := range w.allStores {
		store.Remove(e)
	}
	w.alive.Del(e)
	for i, entity := range w.aliveList {
		if entity == e {
			w.aliveList[i] = w.aliveList[len(w.aliveList)-1]
			w.aliveList = w.aliveList[:len(w.aliveList)-1]
			break
		}
	}
}

// IsAlive reports whether the entity exists; false for unknown ids
func (w *World) IsAlive(e core.Entity) bool {
	_, ok := w.alive.Get(e)
	return ok
}

// AliveEntities returns a snapshot of all live entities
func (w *World) AliveEntities() []core.Entity {
	result := make([]core.Entity, len(w.aliveList))
	copy(result, w.aliveList)
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.aliveList)
}

// Clear removes all entities, components and systems
// Entity ids keep increasing across a Clear; handles are never reissued
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
	w.alive.Clear()
	w.aliveList = w.aliveList[:0]
	w.systems = w.systems[:0]
}

// AddSystem appends a system; insertion order is execution order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// RemoveSystem deletes a system by identity, preserving the order of the rest
func (w *World) RemoveSystem(system System) {
	for i, s := range w.systems {
		if s == system {
			w.systems = append(w.systems[:i], w.systems[i+1:]...)
			return
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs one tick: every system once, synchronously, in
// registration order. The next tick must not start before this returns
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		for _, system := range w.systems {
			system.Update(w, dt)
		}
	})
}

// RunSafe executes fn while holding the world's update lock
// The shell uses it to keep rendering off a half-updated world; inside
// a tick there is exactly one writer and stores stay lock-free
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
