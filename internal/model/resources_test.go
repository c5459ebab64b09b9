package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcesArithmetic(t *testing.T) {
	purse := Resources{Gold: 3000, Wood: 5, Ore: 5, Gems: 1}
	cost := Resources{Gold: 2500, Wood: 5}

	assert.Equal(t, Resources{Gold: 5500, Wood: 10, Ore: 5, Gems: 1}, purse.Add(cost))
	assert.Equal(t, Resources{Gold: 500, Ore: 5, Gems: 1}, purse.Sub(cost))
	assert.Equal(t, Resources{Gold: 3000, Wood: 5, Ore: 5, Gems: 1}, purse, "value receiver")
}

func TestResourcesCanAfford(t *testing.T) {
	purse := Resources{Gold: 2500, Crystal: 2}

	tests := []struct {
		name string
		cost Resources
		want bool
	}{
		{"free", Resources{}, true},
		{"exact gold", Resources{Gold: 2500}, true},
		{"one gold short", Resources{Gold: 2501}, false},
		{"gold and crystal", Resources{Gold: 1000, Crystal: 2}, true},
		{"missing mercury", Resources{Gold: 1, Mercury: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, purse.CanAfford(tt.cost))
		})
	}
}

func TestRecruitRulesCost(t *testing.T) {
	assert.Equal(t, Resources{Gold: DefaultHeroCost}, DefaultRecruitRules().Cost())
}
