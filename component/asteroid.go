package component

// AsteroidSize drives splitting: large breaks into medium, medium into small
type AsteroidSize uint8

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
)

// AsteroidComponent tags destructible rocks
type AsteroidComponent struct {
	Size AsteroidSize
}
