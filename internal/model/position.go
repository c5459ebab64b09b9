package model

import "fmt"

// Position is a tile coordinate on the adventure map.
// Z is the map level (0 = surface, 1 = underground).
// Value type, passed by value.
type Position struct {
	X int32
	Y int32
	Z int32
}

// NewPosition creates a Position with the given coordinates.
func NewPosition(x, y, z int32) Position {
	return Position{X: x, Y: y, Z: z}
}

// DistanceSquared2D returns the squared planar distance to another tile.
// The level (Z) is ignored, matching how the map measures proximity.
func (p Position) DistanceSquared2D(other Position) int64 {
	dx := int64(p.X) - int64(other.X)
	dy := int64(p.Y) - int64(other.Y)
	return dx*dx + dy*dy
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
