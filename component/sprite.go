package component

// SpriteColor indexes the renderer's palette
// The component stays terminal-agnostic; the render package owns the mapping
type SpriteColor uint8

const (
	ColorDefault SpriteColor = iota
	ColorPlayer
	ColorAsteroid
	ColorBoss
	ColorProjectile
	ColorPowerUp
)

// SpriteComponent is the glyph drawn at the entity's transform
type SpriteComponent struct {
	Glyph rune
	Color SpriteColor
}
