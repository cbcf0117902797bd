package component

// ScoreComponent is the point value awarded when the entity is destroyed
type ScoreComponent struct {
	Value int
}
