package main

import (
	"flag"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/solvane/stardrift/audio"
	"github.com/solvane/stardrift/content"
	"github.com/solvane/stardrift/engine"
	"github.com/solvane/stardrift/input"
	"github.com/solvane/stardrift/parameter"
	"github.com/solvane/stardrift/render"
	"github.com/solvane/stardrift/systems"
)

func main() {
	var (
		seed      = flag.Int64("seed", 0, "PRNG seed; 0 derives one from the clock")
		mute      = flag.Bool("mute", false, "disable audio")
		profiling = flag.Bool("profile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// A nil engine stays silent; the game plays on without a device
	var sounds *audio.Engine
	if !*mute {
		sounds, err = audio.NewEngine()
		if err != nil {
			sounds = nil
		}
	}
	defer sounds.Close()

	world := engine.NewWorld()
	stats := systems.NewStats(parameter.PlayerLives)
	keys := input.NewState()

	detector, err := systems.NewCollisionSystem(
		parameter.WorldHalfWidth,
		parameter.WorldHalfHeight,
		parameter.SpatialCellSize,
	)
	if err != nil {
		log.Fatalf("collision: %v", err)
	}

	// Registration order is execution order: input first, then motion,
	// then detection, then everything that consumes the pair list
	world.AddSystem(systems.NewControlSystem(keys, sounds))
	world.AddSystem(systems.NewPhysicsSystem(
		parameter.WorldHalfWidth,
		parameter.WorldHalfHeight,
		parameter.WorldHalfDepth,
	))
	world.AddSystem(detector)
	world.AddSystem(systems.NewDamageSystem(detector))
	world.AddSystem(systems.NewPickupSystem(detector))
	world.AddSystem(systems.NewAudioSystem(detector, sounds))
	world.AddSystem(systems.NewBossSystem())
	world.AddSystem(systems.NewHealthSystem())
	world.AddSystem(systems.NewLifetimeSystem())
	world.AddSystem(systems.NewDeathSystem(stats, rng))
	world.AddSystem(systems.NewSpawnSystem(stats, rng,
		parameter.WorldHalfWidth,
		parameter.WorldHalfHeight,
	))

	content.NewShip(world)

	renderer := render.NewRenderer(screen, parameter.WorldHalfWidth, parameter.WorldHalfHeight)

	var paused atomic.Bool
	quit := make(chan struct{})

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					close(quit)
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					close(quit)
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					paused.Store(!paused.Load())
				default:
					keys.HandleKey(ev)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			// Pausing is simply not running the tick; the kernel has
			// no pause state of its own
			if !paused.Load() && !stats.GameOver {
				world.Update(dt)
			}
			renderer.Draw(world, stats, paused.Load())
		}
	}
}
