// Package behavior contains the policies that turn a game state snapshot
// into candidate goals.
package behavior

import (
	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/model"
)

// HeroEvaluator scores hero quality. Scores must form a total order over heroes.
type HeroEvaluator interface {
	EvaluateHero(h *model.Hero) float64
}

// ArmyEstimator estimates how much army value target would gain by taking
// the best creatures of incoming's army.
type ArmyEstimator interface {
	ReinforcementValue(target model.Army, incoming *model.Hero) float64
}

// Context carries everything a behavior may consult during one cycle.
// It lives for a single AI turn and is rebuilt with a fresh State every cycle.
type Context struct {
	State  model.GameStateView
	Paths  pathing.Provider
	Heroes HeroEvaluator
	Armies ArmyEstimator
	Policy config.Policy

	// Debug enables verbose per-cycle logging inside behaviors.
	Debug bool
}

// Behavior proposes goals. Implementations hold no mutable state and must not block.
type Behavior interface {
	// Name returns the behavior name for logs.
	Name() string

	// Tasks returns the goals this behavior proposes for the current state.
	Tasks(c *Context) []goals.Goal
}
