package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gspu/vcmi/internal/ai/behavior"
	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/model"
)

// funcBehavior adapts a function to behavior.Behavior.
type funcBehavior struct {
	name  string
	tasks func(c *behavior.Context) []goals.Goal
}

func (b funcBehavior) Name() string                           { return b.name }
func (b funcBehavior) Tasks(c *behavior.Context) []goals.Goal { return b.tasks(c) }

// fixed proposes the same goals every cycle.
func fixed(name string, gs ...goals.Goal) funcBehavior {
	return funcBehavior{name: name, tasks: func(*behavior.Context) []goals.Goal { return gs }}
}

// staticSource always returns the same snapshot.
type staticSource struct {
	state model.GameStateView
}

func (s staticSource) Snapshot() model.GameStateView { return s.state }

// recordingExecutor remembers executed actions and fails on demand.
type recordingExecutor struct {
	actions []goals.Action
	err     error
}

func (e *recordingExecutor) Execute(_ context.Context, a goals.Action) error {
	if e.err != nil {
		return e.err
	}
	e.actions = append(e.actions, a)
	return nil
}

type memoryRecorder struct {
	decisions []Decision
	err       error
}

func (r *memoryRecorder) RecordDecision(_ context.Context, d Decision) error {
	r.decisions = append(r.decisions, d)
	return r.err
}

type zeroHeroes struct{}

func (zeroHeroes) EvaluateHero(*model.Hero) float64 { return 0 }

type zeroArmies struct{}

func (zeroArmies) ReinforcementValue(model.Army, *model.Hero) float64 { return 0 }

func noPaths(model.GameStateView) pathing.Provider {
	return pathing.ProviderFunc(func(model.Position) []pathing.Plan { return nil })
}

// newTestState builds a one-town snapshot with a tavern.
func newTestState(t *testing.T, gold int) *model.GameState {
	t.Helper()
	town := &model.Town{ID: 1, Name: "Castle", Position: model.NewPosition(5, 5, 0), HasTavern: true}
	st, err := model.NewGameState(1, []*model.Town{town}, nil, model.Resources{Gold: gold}, 2, model.DefaultRecruitRules())
	require.NoError(t, err)
	return st
}

func newTestOrchestrator(src StateSource, exec ActionExecutor) *Orchestrator {
	return NewOrchestrator(Collaborators{
		State:    src,
		Paths:    noPaths,
		Heroes:   zeroHeroes{},
		Armies:   zeroArmies{},
		Executor: exec,
	}, config.DefaultPolicy(), config.DefaultAITurn().Orchestrator)
}
