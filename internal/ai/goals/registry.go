package goals

import (
	"errors"
	"fmt"

	"github.com/gspu/vcmi/internal/model"
)

var (
	// ErrNotDecomposable is returned for goal kinds that never reach the executor.
	ErrNotDecomposable = errors.New("goal is not decomposable")
	// ErrCannotFulfill is returned when the current state cannot satisfy a goal.
	ErrCannotFulfill = errors.New("goal cannot be fulfilled")
	// ErrDecompositionDepth is returned when a goal keeps producing sub-goals.
	ErrDecompositionDepth = errors.New("decomposition too deep")
	// ErrNoHandler is returned for goal kinds with no registered handler.
	ErrNoHandler = errors.New("no decomposition handler")
)

// DefaultMaxDepth bounds how many sub-goals a goal may expand into.
const DefaultMaxDepth = 8

// Step is the result of decomposing a goal once: either an atomic Action
// or a further Goal to decompose.
type Step struct {
	Action *Action
	Next   *Goal
}

// Handler decomposes one goal kind against the current state.
type Handler func(g Goal, state model.GameStateView) (Step, error)

// Registry maps goal kinds to their handlers.
// Not safe for concurrent registration; register everything before the first cycle.
type Registry struct {
	handlers map[Kind]Handler
	maxDepth int
}

// NewRegistry creates an empty registry.
func NewRegistry(maxDepth int) *Registry {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Registry{
		handlers: make(map[Kind]Handler),
		maxDepth: maxDepth,
	}
}

// DefaultRegistry creates a registry with handlers for every built-in kind.
func DefaultRegistry(maxDepth int) *Registry {
	r := NewRegistry(maxDepth)
	r.Register(KindRecruitHero, decomposeRecruitHero)
	r.Register(KindExecuteHeroChain, decomposeExecuteHeroChain)
	r.Register(KindExchangeSwapTownHeroes, decomposeExchangeSwapTownHeroes)
	r.Register(KindStartup, decomposeStartup)
	return r
}

// Register sets the handler for kind, replacing any previous one.
func (r *Registry) Register(kind Kind, h Handler) {
	r.handlers[kind] = h
}

// Decompose expands g until it reaches an atomic action.
func (r *Registry) Decompose(g Goal, state model.GameStateView) (Action, error) {
	current := g
	for range r.maxDepth {
		h, ok := r.handlers[current.Kind]
		if !ok {
			return Action{}, fmt.Errorf("%s: %w", current.Kind, ErrNoHandler)
		}

		step, err := h(current, state)
		if err != nil {
			return Action{}, fmt.Errorf("decomposing %q: %w", current.Describe(), err)
		}
		if step.Action != nil {
			return *step.Action, nil
		}
		if step.Next == nil {
			return Action{}, fmt.Errorf("decomposing %q: handler returned nothing: %w", current.Describe(), ErrCannotFulfill)
		}
		current = *step.Next
	}
	return Action{}, fmt.Errorf("decomposing %q: %w (limit %d)", g.Describe(), ErrDecompositionDepth, r.maxDepth)
}

// recruitTowner is implemented by states that know which town would hire.
type recruitTowner interface {
	RecruitTown() *model.Town
}

// decomposeRecruitHero picks the town whose tavern hires the hero.
func decomposeRecruitHero(_ Goal, state model.GameStateView) (Step, error) {
	var town *model.Town
	if rt, ok := state.(recruitTowner); ok {
		town = rt.RecruitTown()
	} else {
		for _, t := range state.Towns() {
			if state.CanRecruitHeroAt(t) {
				town = t
				break
			}
		}
	}
	if town == nil {
		return Step{}, fmt.Errorf("no town can recruit: %w", ErrCannotFulfill)
	}
	return Step{Action: &Action{Kind: ActionRecruitHero, Town: town}}, nil
}

// decomposeExecuteHeroChain reduces a hero chain to a single move.
func decomposeExecuteHeroChain(g Goal, _ model.GameStateView) (Step, error) {
	if g.Path.TargetHero == nil || len(g.Path.Nodes) == 0 {
		return Step{}, fmt.Errorf("empty path: %w", ErrCannotFulfill)
	}
	if g.Town == nil {
		return Step{}, fmt.Errorf("no destination town: %w", ErrCannotFulfill)
	}
	return Step{Action: &Action{Kind: ActionMoveHero, Town: g.Town, Hero: g.Path.TargetHero, Path: g.Path}}, nil
}

func decomposeExchangeSwapTownHeroes(g Goal, _ model.GameStateView) (Step, error) {
	if g.Town == nil {
		return Step{}, fmt.Errorf("no town: %w", ErrCannotFulfill)
	}
	return Step{Action: &Action{Kind: ActionSwapTownHeroes, Town: g.Town, Hero: g.Hero}}, nil
}

func decomposeStartup(Goal, model.GameStateView) (Step, error) {
	return Step{}, ErrNotDecomposable
}
