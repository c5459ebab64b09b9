// Package heuristic provides the hero and army estimators the AI behaviors consult.
package heuristic

import (
	"math"

	"github.com/gspu/vcmi/internal/ai/behavior"
	"github.com/gspu/vcmi/internal/model"
)

// levelValue is the army value one hero level is worth.
const levelValue = 100

// skillBonus is the damage/defense bonus of one attack or defense point.
const skillBonus = 0.05

// HeroQuality rates heroes by how hard they hit with their current army.
type HeroQuality struct{}

// Compile-time interface check
var _ behavior.HeroEvaluator = HeroQuality{}

func (HeroQuality) EvaluateHero(h *model.Hero) float64 {
	if h == nil {
		return 0
	}
	return FightingStrength(h) * float64(h.ArmyValue()+h.Level*levelValue)
}

// FightingStrength returns the multiplier a hero's attack and defense
// apply to its army in battle.
func FightingStrength(h *model.Hero) float64 {
	return math.Sqrt((1 + skillBonus*float64(h.Attack)) * (1 + skillBonus*float64(h.Defense)))
}

// ArmyValue estimates army gains from merging stacks.
type ArmyValue struct{}

var _ behavior.ArmyEstimator = ArmyValue{}

// ReinforcementValue returns how much value target gains by taking the best
// stacks of incoming's army. Never negative.
func (ArmyValue) ReinforcementValue(target model.Army, incoming *model.Hero) float64 {
	if incoming == nil || incoming.Army.Empty() {
		return 0
	}
	kept, _ := target.MergeBest(incoming.Army)
	return math.Max(0, float64(kept.Value()-target.Value()))
}
