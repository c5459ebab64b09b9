package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gspu/vcmi/internal/ai/behavior"
	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/model"
)

// ErrExecutionFailed wraps errors reported by the ActionExecutor.
var ErrExecutionFailed = errors.New("action execution failed")

// ActionExecutor performs atomic actions against the real game.
// Execute must finish (or fail) before returning; the next cycle reads the result.
type ActionExecutor interface {
	Execute(ctx context.Context, action goals.Action) error
}

// StateSource produces a fresh immutable snapshot for every cycle.
type StateSource interface {
	Snapshot() model.GameStateView
}

// PathsFunc builds a path provider bound to a snapshot.
type PathsFunc func(state model.GameStateView) pathing.Provider

// DecisionRecorder receives every decision after its cycle ends.
// Recording errors are logged and never fail the cycle.
type DecisionRecorder interface {
	RecordDecision(ctx context.Context, d Decision) error
}

// Collaborators are the external services the orchestrator depends on.
type Collaborators struct {
	State    StateSource
	Paths    PathsFunc
	Heroes   behavior.HeroEvaluator
	Armies   behavior.ArmyEstimator
	Executor ActionExecutor
}

// candidate is a pooled goal with its selection keys.
type candidate struct {
	goal      goals.Goal
	behavior  int // registration index
	emitIndex int // position in the behavior's output
}

// Orchestrator runs decision cycles: ask every behavior for goals, pick the
// best one, reduce it to an atomic action and execute it.
// Not safe for concurrent use; the game serializes AI turns.
type Orchestrator struct {
	deps      Collaborators
	policy    config.Policy
	registry  *goals.Registry
	behaviors []behavior.Behavior
	recorder  DecisionRecorder
	runID     uuid.UUID

	maxCyclesPerTurn int
	turn             int
	cycle            int
}

// NewOrchestrator creates an orchestrator with the default decomposition registry.
func NewOrchestrator(deps Collaborators, policy config.Policy, cfg config.Orchestrator) *Orchestrator {
	maxCycles := cfg.MaxCyclesPerTurn
	if maxCycles < 1 {
		maxCycles = 1
	}
	return &Orchestrator{
		deps:             deps,
		policy:           policy,
		registry:         goals.DefaultRegistry(cfg.MaxDecompositionDepth),
		runID:            uuid.New(),
		maxCyclesPerTurn: maxCycles,
	}
}

// Register appends behaviors. Registration order breaks priority ties:
// the earlier behavior wins.
func (o *Orchestrator) Register(bs ...behavior.Behavior) {
	o.behaviors = append(o.behaviors, bs...)
}

// SetRecorder sets the decision recorder. Nil disables recording.
func (o *Orchestrator) SetRecorder(r DecisionRecorder) {
	o.recorder = r
}

// RunID identifies this orchestrator's decisions in the journal.
// Turn numbers restart at 1 for every orchestrator.
func (o *Orchestrator) RunID() uuid.UUID {
	return o.runID
}

// Behaviors returns the registered behaviors in registration order.
func (o *Orchestrator) Behaviors() []behavior.Behavior {
	return o.behaviors
}

// Cycle runs one decision cycle on a fresh snapshot and executes at most one action.
// An idle cycle (no goals) is not an error.
func (o *Orchestrator) Cycle(ctx context.Context) (Decision, error) {
	state := o.deps.State.Snapshot()
	d, best, ok := o.plan(state)
	return o.act(ctx, state, d, best, ok)
}

// plan pools the goals of all behaviors and selects the best one.
func (o *Orchestrator) plan(state model.GameStateView) (Decision, candidate, bool) {
	o.cycle++
	d := Decision{
		ID:    uuid.New(),
		RunID: o.runID,
		Turn:  o.turn,
		Cycle: o.cycle,
	}

	c := &behavior.Context{
		State:  state,
		Paths:  o.deps.Paths(state),
		Heroes: o.deps.Heroes,
		Armies: o.deps.Armies,
		Policy: o.policy,
		Debug:  IsDebugEnabled(),
	}

	pool := o.collect(c)
	d.Candidates = len(pool)

	best, ok := selectBest(pool)
	if ok {
		d.Goal = best.goal
		d.Behavior = o.behaviors[best.behavior].Name()
	}
	return d, best, ok
}

// act decomposes and executes the planned goal.
func (o *Orchestrator) act(ctx context.Context, state model.GameStateView, d Decision, best candidate, ok bool) (Decision, error) {
	if !ok {
		d.Outcome = OutcomeIdle
		slog.Debug("AI cycle idle", "turn", d.Turn, "cycle", d.Cycle)
		o.record(ctx, d)
		return d, nil
	}

	action, err := o.registry.Decompose(best.goal, state)
	if err != nil {
		return o.fail(ctx, d, err)
	}
	d.Action = action

	if err := o.deps.Executor.Execute(ctx, action); err != nil {
		return o.fail(ctx, d, fmt.Errorf("%s: %w: %w", action, ErrExecutionFailed, err))
	}

	d.Outcome = OutcomeExecuted
	slog.Info("AI goal executed",
		"turn", d.Turn,
		"cycle", d.Cycle,
		"behavior", d.Behavior,
		"goal", d.Goal.Describe(),
		"priority", d.Goal.Priority,
		"action", d.Action.String(),
		"candidates", d.Candidates)
	o.record(ctx, d)
	return d, nil
}

// collect asks every behavior for goals, in registration order.
func (o *Orchestrator) collect(c *behavior.Context) []candidate {
	var pool []candidate
	for bi, b := range o.behaviors {
		tasks := b.Tasks(c)
		for ti, g := range tasks {
			pool = append(pool, candidate{goal: g, behavior: bi, emitIndex: ti})

			if IsDebugEnabled() {
				slog.Debug("AI candidate goal",
					"behavior", b.Name(),
					"goal", g.Describe(),
					"priority", g.Priority)
			}
		}
	}
	return pool
}

// selectBest returns the goal with the highest priority. Ties are broken by
// (registration index asc, emission index asc); NaN priorities never win.
func selectBest(pool []candidate) (candidate, bool) {
	var best candidate
	found := false
	for _, c := range pool {
		if c.goal.Priority != c.goal.Priority { // NaN
			continue
		}
		if !found || better(c, best) {
			best, found = c, true
		}
	}
	return best, found
}

func better(a, b candidate) bool {
	if a.goal.Priority != b.goal.Priority {
		return a.goal.Priority > b.goal.Priority
	}
	if a.behavior != b.behavior {
		return a.behavior < b.behavior
	}
	return a.emitIndex < b.emitIndex
}

func (o *Orchestrator) fail(ctx context.Context, d Decision, err error) (Decision, error) {
	d.Outcome = OutcomeFailed
	d.Err = err
	slog.Warn("AI goal failed",
		"turn", d.Turn,
		"cycle", d.Cycle,
		"behavior", d.Behavior,
		"goal", d.Goal.Describe(),
		"err", err)
	o.record(ctx, d)
	return d, err
}

func (o *Orchestrator) record(ctx context.Context, d Decision) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.RecordDecision(ctx, d); err != nil {
		slog.Warn("recording AI decision", "id", d.ID, "err", err)
	}
}
