package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Intent is one tick's worth of accumulated player input
// Terminal input has no key-up events, so every keypress is an impulse:
// turn presses accumulate into Turn, thrust presses into Thrust
type Intent struct {
	Turn   float64 // negative left, positive right, one unit per press
	Thrust int     // number of thrust presses
	Fire   bool
}

// State collects key events from the terminal event goroutine and hands
// them to the control system once per tick as a snapshot
type State struct {
	mu      sync.Mutex
	pending Intent
}

func NewState() *State {
	return &State{}
}

// HandleKey folds a key event into the pending intent
// Supports vim movement keys and arrows; space fires
func (s *State) HandleKey(ev *tcell.EventKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyLeft:
		s.pending.Turn -= 1
	case tcell.KeyRight:
		s.pending.Turn += 1
	case tcell.KeyUp:
		s.pending.Thrust++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			s.pending.Turn -= 1
		case 'l':
			s.pending.Turn += 1
		case 'k':
			s.pending.Thrust++
		case ' ':
			s.pending.Fire = true
		}
	}
}

// Drain returns the accumulated intent and resets it
func (s *State) Drain() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	intent := s.pending
	s.pending = Intent{}
	return intent
}
