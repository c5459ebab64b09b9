// Package pathing defines the contract between the AI and the path finder,
// and the policy the AI uses to pick one path among several.
package pathing

import (
	"fmt"

	"github.com/gspu/vcmi/internal/model"
)

// Plan is a candidate route for one hero to reach a tile.
// Nodes never include the hero's start tile and always end at the target;
// a single node means the hero is already at or next to the target.
// MovementCost grows with the number of nodes for a fixed hero.
type Plan struct {
	Nodes        []model.Position
	MovementCost float64
	TargetHero   *model.Hero // read-only, owned by the game state snapshot
}

// Target returns the destination tile.
func (p Plan) Target() model.Position {
	if len(p.Nodes) == 0 {
		return model.Position{}
	}
	return p.Nodes[len(p.Nodes)-1]
}

// Turns estimates how many days the hero needs to walk the plan,
// given its current and daily movement points. Zero means this turn.
func (p Plan) Turns(movementPoints, maxMovementPoints int) int {
	cost := int(p.MovementCost)
	if cost <= movementPoints {
		return 0
	}
	if maxMovementPoints <= 0 {
		return -1
	}
	left := cost - movementPoints
	return (left + maxMovementPoints - 1) / maxMovementPoints
}

func (p Plan) String() string {
	return fmt.Sprintf("%s->%s cost=%.0f nodes=%d", p.TargetHero, p.Target(), p.MovementCost, len(p.Nodes))
}

// Provider wraps the path finder.
type Provider interface {
	// PathsTo returns every feasible plan to tile, at most one per hero.
	// The result may be empty. It must be deterministic for the same game state.
	PathsTo(tile model.Position) []Plan
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(tile model.Position) []Plan

func (f ProviderFunc) PathsTo(tile model.Position) []Plan {
	return f(tile)
}
