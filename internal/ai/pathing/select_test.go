package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspu/vcmi/internal/model"
)

func newHero(id model.HeroID, x, y int32) *model.Hero {
	return &model.Hero{ID: id, Name: "Hero", Position: model.NewPosition(x, y, 0)}
}

func newPlan(h *model.Hero, to model.Position, nodes int, cost float64) Plan {
	p := Plan{MovementCost: cost, TargetHero: h}
	for range nodes - 1 {
		p.Nodes = append(p.Nodes, h.Position)
	}
	p.Nodes = append(p.Nodes, to)
	return p
}

func TestScore(t *testing.T) {
	garrison := newHero(1, 5, 5)
	walker := newHero(2, 6, 5)
	town := &model.Town{ID: 1, Position: model.NewPosition(5, 5, 0), GarrisonHero: garrison}

	assert.Equal(t, 1.0, Score(town, newPlan(garrison, town.Position, 1, 0)))
	assert.Equal(t, 100.0, Score(town, newPlan(walker, town.Position, 1, 100)))
}

func TestShortest(t *testing.T) {
	town := &model.Town{ID: 1, Position: model.NewPosition(5, 5, 0)}

	t.Run("empty", func(t *testing.T) {
		_, ok := Shortest(town, nil)
		assert.False(t, ok)
	})

	t.Run("lowest cost wins", func(t *testing.T) {
		far := newPlan(newHero(1, 9, 9), town.Position, 4, 400)
		near := newPlan(newHero(2, 6, 5), town.Position, 1, 100)

		best, ok := Shortest(town, []Plan{far, near})
		require.True(t, ok)
		assert.Equal(t, model.HeroID(2), best.TargetHero.ID)
	})

	t.Run("garrison hero preferred over walkers", func(t *testing.T) {
		garrison := newHero(3, 5, 5)
		town := &model.Town{ID: 1, Position: model.NewPosition(5, 5, 0), GarrisonHero: garrison}
		walker := newPlan(newHero(1, 6, 5), town.Position, 1, 100)

		best, ok := Shortest(town, []Plan{walker, newPlan(garrison, town.Position, 1, 0)})
		require.True(t, ok)
		assert.Equal(t, model.HeroID(3), best.TargetHero.ID)
	})

	t.Run("zero cost visitor beats garrison", func(t *testing.T) {
		garrison := newHero(3, 5, 5)
		town := &model.Town{ID: 1, Position: model.NewPosition(5, 5, 0), GarrisonHero: garrison}
		visitor := newPlan(newHero(4, 5, 5), town.Position, 1, 0)

		best, ok := Shortest(town, []Plan{newPlan(garrison, town.Position, 1, 0), visitor})
		require.True(t, ok)
		assert.Equal(t, model.HeroID(4), best.TargetHero.ID)
	})

	t.Run("ties go to the lowest hero id", func(t *testing.T) {
		a := newPlan(newHero(7, 6, 5), town.Position, 1, 100)
		b := newPlan(newHero(2, 4, 5), town.Position, 1, 100)

		for _, order := range [][]Plan{{a, b}, {b, a}} {
			best, ok := Shortest(town, order)
			require.True(t, ok)
			assert.Equal(t, model.HeroID(2), best.TargetHero.ID)
		}
	})
}

func TestNearestHero(t *testing.T) {
	townPos := model.NewPosition(5, 5, 0)

	tests := []struct {
		name   string
		town   func() *model.Town
		plans  func(town *model.Town) []Plan
		wantID model.HeroID
		wantOK bool
	}{
		{
			name:   "no plans",
			town:   func() *model.Town { return &model.Town{Position: townPos} },
			plans:  func(*model.Town) []Plan { return nil },
			wantOK: false,
		},
		{
			name: "adjacent hero",
			town: func() *model.Town { return &model.Town{Position: townPos} },
			plans: func(town *model.Town) []Plan {
				return []Plan{newPlan(newHero(1, 6, 6), town.Position, 1, 141)}
			},
			wantID: 1,
			wantOK: true,
		},
		{
			name: "hero two tiles away on a single step",
			town: func() *model.Town { return &model.Town{Position: townPos} },
			plans: func(town *model.Town) []Plan {
				return []Plan{newPlan(newHero(1, 7, 5), town.Position, 1, 100)}
			},
			wantID: 1,
			wantOK: true,
		},
		{
			name: "hero three tiles away is never selected",
			town: func() *model.Town { return &model.Town{Position: townPos} },
			plans: func(town *model.Town) []Plan {
				return []Plan{newPlan(newHero(1, 8, 5), town.Position, 1, 100)}
			},
			wantOK: false,
		},
		{
			name: "multi-step route",
			town: func() *model.Town { return &model.Town{Position: townPos} },
			plans: func(town *model.Town) []Plan {
				return []Plan{newPlan(newHero(1, 6, 5), town.Position, 2, 200)}
			},
			wantOK: false,
		},
		{
			name: "shortest is the garrison hero",
			town: func() *model.Town {
				return &model.Town{Position: townPos, GarrisonHero: newHero(9, 5, 5)}
			},
			plans: func(town *model.Town) []Plan {
				return []Plan{
					newPlan(town.GarrisonHero, town.Position, 1, 0),
					newPlan(newHero(1, 6, 5), town.Position, 1, 100),
				}
			},
			wantOK: false,
		},
		{
			name: "only the shortest plan is considered",
			town: func() *model.Town { return &model.Town{Position: townPos} },
			plans: func(town *model.Town) []Plan {
				return []Plan{
					newPlan(newHero(1, 6, 5), town.Position, 1, 150),
					newPlan(newHero(2, 8, 5), town.Position, 1, 100),
				}
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			town := tt.town()
			got, ok := NearestHero(town, tt.plans(town), 4)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, got.TargetHero.ID)
			}
		})
	}
}

func TestPlanTurns(t *testing.T) {
	p := Plan{MovementCost: 2500}

	assert.Equal(t, 0, p.Turns(3000, 1500))
	assert.Equal(t, 1, p.Turns(1500, 1500))
	assert.Equal(t, 2, p.Turns(0, 1500))
	assert.Equal(t, -1, p.Turns(0, 0))
}

func TestPlanTarget(t *testing.T) {
	h := newHero(1, 0, 0)
	p := newPlan(h, model.NewPosition(3, 3, 0), 3, 300)
	assert.Equal(t, model.NewPosition(3, 3, 0), p.Target())
	assert.Equal(t, model.Position{}, Plan{}.Target())
}
