// Package pathfind implements pathing.Provider over a tile grid.
package pathfind

import (
	"errors"
	"fmt"

	"github.com/gspu/vcmi/internal/model"
)

// Terrain movement costs, in movement points per orthogonal step.
const (
	CostImpassable = 0
	CostRoad       = 50
	CostGrass      = 100
	CostRough      = 125
	CostSwamp      = 175
)

// DiagonalFactor scales the cost of a diagonal step.
const DiagonalFactor = 1.41

// ErrGridSize is returned when terrain data does not match the grid dimensions.
var ErrGridSize = errors.New("grid size mismatch")

// terrainCosts maps terrain symbols used in scenario files to movement costs.
var terrainCosts = map[rune]int{
	'=': CostRoad,
	'.': CostGrass,
	',': CostRough,
	'~': CostSwamp,
	'#': CostImpassable,
}

// Grid is a single-level adventure map. Tile (x, y) costs costs[y*width+x].
// Immutable after creation.
type Grid struct {
	width, height int32
	costs         []int
	minCost       int
}

// NewGrid creates a grid from row-major tile costs. Cost 0 marks an impassable tile.
func NewGrid(width, height int32, costs []int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrGridSize)
	}
	if len(costs) != int(width)*int(height) {
		return nil, fmt.Errorf("%dx%d needs %d tiles, got %d: %w", width, height, width*height, len(costs), ErrGridSize)
	}

	g := &Grid{width: width, height: height, costs: costs}
	for _, c := range costs {
		if c < 0 {
			return nil, fmt.Errorf("negative tile cost %d", c)
		}
		if c > 0 && (g.minCost == 0 || c < g.minCost) {
			g.minCost = c
		}
	}
	return g, nil
}

// ParseGrid builds a grid from terrain rows, one string per map row.
// Symbols: '=' road, '.' grass, ',' rough, '~' swamp, '#' impassable.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no terrain rows: %w", ErrGridSize)
	}
	width := len([]rune(rows[0]))
	costs := make([]int, 0, width*len(rows))

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, len(runes), width, ErrGridSize)
		}
		for x, r := range runes {
			c, ok := terrainCosts[r]
			if !ok {
				return nil, fmt.Errorf("unknown terrain %q at (%d,%d)", r, x, y)
			}
			costs = append(costs, c)
		}
	}
	return NewGrid(int32(width), int32(len(rows)), costs)
}

func (g *Grid) Width() int32  { return g.width }
func (g *Grid) Height() int32 { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int32) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cost returns the cost of entering tile (x, y); 0 for impassable or out-of-bounds tiles.
func (g *Grid) Cost(x, y int32) int {
	if !g.InBounds(x, y) {
		return CostImpassable
	}
	return g.costs[y*g.width+x]
}

// Passable reports whether a hero can stand on p.
func (g *Grid) Passable(p model.Position) bool {
	return p.Z == 0 && g.Cost(p.X, p.Y) != CostImpassable
}
