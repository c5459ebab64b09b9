package behavior

import (
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/model"
)

// fakeState is a GameStateView with a hand-set recruit answer.
type fakeState struct {
	towns      []*model.Town
	heroes     []*model.Hero
	gold       int
	canRecruit bool
}

func (s *fakeState) Towns() []*model.Town              { return s.towns }
func (s *fakeState) Heroes() []*model.Hero             { return s.heroes }
func (s *fakeState) Gold() int                         { return s.gold }
func (s *fakeState) Resources() model.Resources        { return model.Resources{Gold: s.gold} }
func (s *fakeState) CanRecruitAnyHero() bool           { return s.canRecruit }
func (s *fakeState) CanRecruitHeroAt(*model.Town) bool { return s.canRecruit }

// heroScores evaluates heroes from a fixed table; unknown heroes score 0.
type heroScores map[model.HeroID]float64

func (s heroScores) EvaluateHero(h *model.Hero) float64 { return s[h.ID] }

// flatGain reports the same reinforcement value for every pair.
type flatGain float64

func (g flatGain) ReinforcementValue(model.Army, *model.Hero) float64 { return float64(g) }

// pathTable serves fixed plans per target tile.
type pathTable map[model.Position][]pathing.Plan

func (p pathTable) PathsTo(tile model.Position) []pathing.Plan { return p[tile] }

func newHero(id model.HeroID, x, y int32) *model.Hero {
	return &model.Hero{ID: id, Name: "Hero", Position: model.NewPosition(x, y, 0)}
}

func newTown(id model.TownID, x, y int32) *model.Town {
	return &model.Town{ID: id, Name: "Town", Position: model.NewPosition(x, y, 0), HasTavern: true}
}

// stepPlan is a single-step plan of h into town.
func stepPlan(h *model.Hero, town *model.Town, cost float64) pathing.Plan {
	return pathing.Plan{Nodes: []model.Position{town.Position}, MovementCost: cost, TargetHero: h}
}

func newContext(st *fakeState, paths pathTable, scores heroScores, gain float64) *Context {
	if paths == nil {
		paths = pathTable{}
	}
	if scores == nil {
		scores = heroScores{}
	}
	return &Context{
		State:  st,
		Paths:  paths,
		Heroes: scores,
		Armies: flatGain(gain),
		Policy: config.DefaultPolicy(),
	}
}
