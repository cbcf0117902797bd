package parameter

import "time"

// World geometry and tick timing

const (
	// World half-extents; positions live in [-half, +half] per axis
	WorldHalfWidth  = 400.0
	WorldHalfHeight = 240.0
	WorldHalfDepth  = 50.0

	// SpatialCellSize is roughly 2x the largest collider radius so a
	// bounding circle rarely spans more than four cells
	SpatialCellSize = 64.0

	// TickInterval is the fixed simulation step
	TickInterval = 16 * time.Millisecond
)
