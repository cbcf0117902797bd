package systems

// Stats is the shared scoreboard mutated on the tick goroutine and read
// by the renderer between ticks
type Stats struct {
	Score        int
	Lives        int
	GameOver     bool
	BossSummoned bool
	BossDefeated bool
}

// NewStats starts a scoreboard with the configured life count
func NewStats(lives int) *Stats {
	return &Stats{Lives: lives}
}
