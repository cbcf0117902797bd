package component

// PlayerComponent tags the ship entity and tracks remaining lives
type PlayerComponent struct {
	Lives int
}
