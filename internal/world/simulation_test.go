package world_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspu/vcmi/internal/ai"
	"github.com/gspu/vcmi/internal/ai/behavior"
	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/heuristic"
	"github.com/gspu/vcmi/internal/model"
	"github.com/gspu/vcmi/internal/world"
)

var pikemen = []model.Stack{{Creature: "pikeman", Count: 20, UnitValue: 80}}

func castleScenario(gold int) world.Scenario {
	return world.Scenario{
		Day: 1,
		Terrain: []string{
			"......",
			"......",
			"......",
		},
		Resources: model.Resources{Gold: gold},
		Towns: []world.TownSpec{
			{ID: 1, Name: "Castle", X: 2, Y: 1, HasTavern: true, Income: 1000},
		},
		Heroes: []world.HeroSpec{
			{ID: 1, Name: "Orrin", X: 3, Y: 1, Level: 2, Attack: 2, Defense: 2, Movement: 1500, Army: pikemen},
		},
		Tavern: []world.HeroSpec{
			{ID: 10, Name: "Valeska", Level: 1, Movement: 1500,
				Army: []model.Stack{{Creature: "archer", Count: 10, UnitValue: 126}}},
		},
	}
}

func newSimulation(t *testing.T, sc world.Scenario) (*world.World, *ai.Orchestrator) {
	t.Helper()
	cfg := config.DefaultAITurn()

	w, err := world.New(sc, model.DefaultRecruitRules(), cfg.Pathing)
	require.NoError(t, err)

	o := ai.NewOrchestrator(ai.Collaborators{
		State:    w,
		Paths:    w.PathProvider,
		Heroes:   heuristic.HeroQuality{},
		Armies:   heuristic.ArmyValue{},
		Executor: w,
	}, cfg.Policy, cfg.Orchestrator)
	o.Register(behavior.RecruitHeroBehavior{}, behavior.StartupBehavior{})
	return w, o
}

func state(t *testing.T, w *world.World) *model.GameState {
	t.Helper()
	st, err := w.State()
	require.NoError(t, err)
	return st
}

func TestTurnRecruitWinsTie(t *testing.T) {
	w, o := newSimulation(t, castleScenario(6000))

	res, err := o.Turn(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ai.StopIdle, res.Reason)
	assert.Equal(t, 1, res.Executed())
	first := res.Decisions[0]
	assert.Equal(t, 2, first.Candidates, "recruit and hero chain both at top priority")
	assert.Equal(t, "Recruit hero", first.Behavior)

	st := state(t, w)
	assert.Equal(t, 3500, st.Gold())
	require.NotNil(t, st.Towns()[0].VisitingHero)
	assert.Equal(t, "Valeska", st.Towns()[0].VisitingHero.Name)
}

func TestTurnBringsNearestHero(t *testing.T) {
	w, o := newSimulation(t, castleScenario(1000))

	res, err := o.Turn(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ai.StopIdle, res.Reason)
	require.Equal(t, 1, res.Executed())
	assert.Equal(t, goals.KindExecuteHeroChain, res.Decisions[0].Goal.Kind)
	assert.Equal(t, goals.ActionMoveHero, res.Decisions[0].Action.Kind)

	st := state(t, w)
	orrin := st.Heroes()[0]
	assert.True(t, st.Towns()[0].IsVisiting(orrin))
	assert.Equal(t, 1400, orrin.MovementPoints)
}

// A weak garrison hero and a strong visitor: the strong hero goes in, the
// fallback then pulls it out again, and the stall guard ends the turn.
func TestTurnGarrisonSwapStalls(t *testing.T) {
	sc := castleScenario(0)
	sc.Heroes = []world.HeroSpec{
		{ID: 1, Name: "Orrin", X: 2, Y: 1, Level: 2, Attack: 2, Defense: 2, Movement: 1500, Army: pikemen},
		{ID: 2, Name: "Gelu", X: 2, Y: 1, Level: 1, Movement: 1500,
			Army: []model.Stack{{Creature: "peasant", Count: 1, UnitValue: 15}}},
	}
	sc.Towns[0].Garrison = 2
	sc.Towns[0].Visiting = 1
	w, o := newSimulation(t, sc)

	res, err := o.Turn(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ai.StopStalled, res.Reason)
	require.Len(t, res.Decisions, 2)
	assert.Equal(t, "Keep Orrin#1 in garrison of Castle#1", res.Decisions[0].GoalLabel())
	assert.Equal(t, 100.0, res.Decisions[0].Goal.Priority)
	assert.Equal(t, "Empty garrison of Castle#1", res.Decisions[1].GoalLabel())
	assert.Equal(t, 0.0001, res.Decisions[1].Goal.Priority)

	town := state(t, w).Towns()[0]
	assert.Equal(t, "Gelu", town.GarrisonHero.Name)
	assert.Equal(t, "Orrin", town.VisitingHero.Name)
}

func TestDaysAccumulateGold(t *testing.T) {
	w, o := newSimulation(t, castleScenario(1000))
	ctx := context.Background()

	for range 3 {
		_, err := o.Turn(ctx)
		require.NoError(t, err)
		w.EndTurn()
	}

	st := state(t, w)
	assert.Equal(t, 4, st.Day())
	assert.Equal(t, 4000, st.Gold())
	assert.Equal(t, 1500, st.Heroes()[0].MovementPoints)
}
