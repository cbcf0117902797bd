package systems

import (
	"time"

	"github.com/solvane/stardrift/audio"
	"github.com/solvane/stardrift/component"
	"github.com/solvane/stardrift/engine"
)

// AudioSystem is another downstream consumer of the tick's pair list:
// it maps collision outcomes to sound cues. It must re-read the list
// every tick since the detector overwrites it
type AudioSystem struct {
	detector PairSource
	sounds   *audio.Engine
}

func NewAudioSystem(detector PairSource, sounds *audio.Engine) *AudioSystem {
	return &AudioSystem{detector: detector, sounds: sounds}
}

func (s *AudioSystem) Update(w *engine.World, dt time.Duration) {
	for _, rec := range s.detector.Pairs() {
		switch {
		case rec.LayerA == component.LayerProjectile || rec.LayerB == component.LayerProjectile:
			s.sounds.Play(audio.CueExplosion)
		case rec.LayerA == component.LayerPowerUp || rec.LayerB == component.LayerPowerUp:
			s.sounds.Play(audio.CuePickup)
		case rec.LayerA == component.LayerPlayer || rec.LayerB == component.LayerPlayer:
			s.sounds.Play(audio.CuePlayerHit)
		}
	}
}
