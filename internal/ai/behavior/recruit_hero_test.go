package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/model"
)

func TestRecruitHeroBehavior(t *testing.T) {
	twoHeroes := []*model.Hero{newHero(1, 0, 0), newHero(2, 1, 1)}
	oneTown := []*model.Town{newTown(1, 5, 5)}

	tests := []struct {
		name       string
		state      *fakeState
		wantRecuit bool
	}{
		{
			name:       "cannot recruit, few heroes",
			state:      &fakeState{towns: oneTown, canRecruit: false},
			wantRecuit: false,
		},
		{
			name:       "cannot recruit, rich",
			state:      &fakeState{towns: oneTown, gold: 50000, canRecruit: false},
			wantRecuit: false,
		},
		{
			name:       "no heroes, one town",
			state:      &fakeState{towns: oneTown, gold: 500, canRecruit: true},
			wantRecuit: true,
		},
		{
			name:       "baseline met, poor",
			state:      &fakeState{towns: oneTown, heroes: twoHeroes, gold: 10000, canRecruit: true},
			wantRecuit: false,
		},
		{
			name:       "baseline met, rich",
			state:      &fakeState{towns: oneTown, heroes: twoHeroes, gold: 10001, canRecruit: true},
			wantRecuit: true,
		},
		{
			name:       "no towns, no heroes",
			state:      &fakeState{canRecruit: true},
			wantRecuit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := RecruitHeroBehavior{}.Tasks(newContext(tt.state, nil, nil, 0))

			if !tt.wantRecuit {
				assert.Empty(t, tasks)
				return
			}
			require.Len(t, tasks, 1)
			assert.Equal(t, goals.KindRecruitHero, tasks[0].Kind)
			assert.Equal(t, 100.0, tasks[0].Priority)
		})
	}
}

func TestRecruitHeroBehavior_GoldThresholdIsTunable(t *testing.T) {
	st := &fakeState{
		towns:      []*model.Town{newTown(1, 5, 5)},
		heroes:     []*model.Hero{newHero(1, 0, 0), newHero(2, 1, 1)},
		gold:       6000,
		canRecruit: true,
	}
	c := newContext(st, nil, nil, 0)
	c.Policy.GoldThreshold = 5000

	assert.Len(t, RecruitHeroBehavior{}.Tasks(c), 1)
}
