package pathfind

import (
	"cmp"
	"slices"

	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/model"
)

// DefaultMaxTurns is how many days of movement a plan may span.
const DefaultMaxTurns = 3

// Provider answers path queries for the heroes of one snapshot.
type Provider struct {
	grid   *Grid
	heroes []*model.Hero

	maxTurns      int
	maxIterations int
}

// Compile-time interface check
var _ pathing.Provider = (*Provider)(nil)

// NewProvider creates a provider for the heroes of state.
// Non-positive limits fall back to the defaults.
func NewProvider(grid *Grid, state model.GameStateView, maxTurns, maxIterations int) *Provider {
	if maxTurns < 1 {
		maxTurns = DefaultMaxTurns
	}
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}

	heroes := slices.Clone(state.Heroes())
	slices.SortFunc(heroes, func(a, b *model.Hero) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return &Provider{
		grid:          grid,
		heroes:        heroes,
		maxTurns:      maxTurns,
		maxIterations: maxIterations,
	}
}

// Budget returns the movement points h may spend on one plan:
// what is left today plus full days for the remaining turns.
func Budget(h *model.Hero, maxTurns int) float64 {
	return float64(h.MovementPoints + h.MaxMovementPoints*(maxTurns-1))
}

// PathsTo returns one plan per hero that can reach tile, in hero ID order.
func (p *Provider) PathsTo(tile model.Position) []pathing.Plan {
	var plans []pathing.Plan
	for _, h := range p.heroes {
		nodes, cost, ok := FindPath(p.grid, h.Position, tile, Budget(h, p.maxTurns), p.maxIterations)
		if !ok {
			continue
		}
		plans = append(plans, pathing.Plan{
			Nodes:        nodes,
			MovementCost: cost,
			TargetHero:   h,
		})
	}
	return plans
}

// FindPath searches one route from start to target within budget movement points.
// Nodes exclude start; ok is false when target is unreachable.
func FindPath(grid *Grid, start, target model.Position, budget float64, maxIterations int) (nodes []model.Position, cost float64, ok bool) {
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	s := search{grid: grid, budget: budget, maxIterations: maxIterations}
	return s.findPath(start, target)
}
