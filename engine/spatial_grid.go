package engine

import (
	"fmt"
	"math"

	"github.com/solvane/stardrift/core"
	"github.com/solvane/stardrift/vmath"
)

// SpatialGrid is a uniform grid broad phase over the world rectangle
// [-halfWidth, +halfWidth] x [-halfHeight, +halfHeight]. It is rebuilt
// from scratch every tick: Clear, then Insert every enabled collider.
// An entity is placed in every cell its bounding circle overlaps, so
// entities spanning cell boundaries are found from any direction
type SpatialGrid struct {
	cellSize   float64
	halfWidth  float64
	halfHeight float64
	cols       int
	rows       int
	cells      [][]core.Entity
}

// NewSpatialGrid creates a grid sized for the given world half-extents
// Fails fast on a non-positive cell size or degenerate extents
func NewSpatialGrid(halfWidth, halfHeight, cellSize float64) (*SpatialGrid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("spatial grid: cell size must be positive, got %v", cellSize)
	}
	if halfWidth <= 0 || halfHeight <= 0 {
		return nil, fmt.Errorf("spatial grid: world half-extents must be positive, got %vx%v", halfWidth, halfHeight)
	}

	cols := int(math.Ceil(2 * halfWidth / cellSize))
	rows := int(math.Ceil(2 * halfHeight / cellSize))

	return &SpatialGrid{
		cellSize:   cellSize,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		cols:       cols,
		rows:       rows,
		cells:      make([][]core.Entity, cols*rows),
	}, nil
}

// Clear resets all cells, keeping allocated bucket capacity
// Must run once per tick before reinsertion
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellRange returns the clamped cell index span covered by a bounding
// circle. Positions beyond the world edge land in the border cells
func (g *SpatialGrid) cellRange(pos vmath.Vec3F, radius float64) (minCX, maxCX, minCY, maxCY int) {
	minCX = int(math.Floor((pos.X - radius + g.halfWidth) / g.cellSize))
	maxCX = int(math.Floor((pos.X + radius + g.halfWidth) / g.cellSize))
	minCY = int(math.Floor((pos.Y - radius + g.halfHeight) / g.cellSize))
	maxCY = int(math.Floor((pos.Y + radius + g.halfHeight) / g.cellSize))

	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	return minCX, maxCX, minCY, maxCY
}

// Insert adds the entity to every cell its bounding circle overlaps
func (g *SpatialGrid) Insert(e core.Entity, pos vmath.Vec3F, radius float64) {
	minCX, maxCX, minCY, maxCY := g.cellRange(pos, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], e)
		}
	}
}

// Query returns the union of entities from all cells the bounding circle
// overlaps. The set is over-inclusive; callers must apply an exact
// narrow-phase test afterward
func (g *SpatialGrid) Query(pos vmath.Vec3F, radius float64) []core.Entity {
	minCX, maxCX, minCY, maxCY := g.cellRange(pos, radius)

	var result []core.Entity
	seen := make(map[core.Entity]struct{}, 16)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			for _, e := range g.cells[cy*g.cols+cx] {
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				result = append(result, e)
			}
		}
	}
	return result
}
