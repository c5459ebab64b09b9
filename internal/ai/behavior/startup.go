package behavior

import (
	"log/slog"
	"math"

	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/model"
)

// StartupBehavior settles heroes around the primary town in the early game:
// bring the nearest hero in, keep the stronger of the garrison and visiting
// heroes in the garrison, hire a hero, and as a last resort empty garrisons.
type StartupBehavior struct{}

// Compile-time interface check
var _ Behavior = StartupBehavior{}

func (StartupBehavior) Name() string { return "Startup" }

func (b StartupBehavior) Tasks(c *Context) []goals.Goal {
	towns := c.State.Towns()
	if len(towns) == 0 {
		return nil
	}

	canRecruit := c.State.CanRecruitAnyHero()
	town := b.primaryTown(c, towns)

	var tasks []goals.Goal

	if town.VisitingHero == nil {
		if path, ok := nearestHero(c, town); ok {
			gain := c.Armies.ReinforcementValue(town.UpperArmy(), path.TargetHero)
			if gain > c.Policy.ReinforcementThreshold {
				tasks = append(tasks, goals.ExecuteHeroChain(path, town, c.Policy.UrgentPriority))
			}
		}
	} else {
		tasks = append(tasks, b.arrangeVisitor(c, town, canRecruit)...)
	}

	if len(tasks) == 0 && canRecruit && town.VisitingHero == nil {
		tasks = append(tasks, goals.RecruitHero(c.Policy.UrgentPriority))
	}

	if len(tasks) == 0 {
		for _, t := range towns {
			if t.GarrisonHero != nil {
				tasks = append(tasks, goals.ExchangeSwapTownHeroes(t, nil, c.Policy.FallbackPriority))
			}
		}
	}

	return tasks
}

// arrangeVisitor decides which of the town's heroes stays in the garrison.
func (StartupBehavior) arrangeVisitor(c *Context, town *model.Town, canRecruit bool) []goals.Goal {
	visitor := town.VisitingHero
	visitorScore := c.Heroes.EvaluateHero(visitor)

	if garrison := town.GarrisonHero; garrison != nil {
		garrisonScore := c.Heroes.EvaluateHero(garrison)

		if garrisonScore > visitorScore {
			// Keep the garrison hero and feed it the visitor's army, if that is worth a move.
			if c.Armies.ReinforcementValue(garrison.Army, visitor) > c.Policy.ReinforcementThreshold {
				return []goals.Goal{goals.ExchangeSwapTownHeroes(town, garrison, c.Policy.UrgentPriority)}
			}
			return nil
		}
		return []goals.Goal{goals.ExchangeSwapTownHeroes(town, visitor, c.Policy.UrgentPriority)}
	}

	if canRecruit {
		// Free the town tile so the tavern can hire.
		return []goals.Goal{goals.ExchangeSwapTownHeroes(town, visitor, c.Policy.UrgentPriority)}
	}
	return nil
}

// primaryTown returns the only town, or the town whose nearest eligible hero
// is the strongest. Towns without such a hero score 0; the first best town wins.
func (StartupBehavior) primaryTown(c *Context, towns []*model.Town) *model.Town {
	if len(towns) == 1 {
		return towns[0]
	}

	var best *model.Town
	bestScore := math.Inf(-1)
	for _, t := range towns {
		score := 0.0
		if path, ok := nearestHero(c, t); ok {
			score = c.Heroes.EvaluateHero(path.TargetHero)
		}
		if best == nil || score > bestScore {
			best, bestScore = t, score
		}
	}

	if c.Debug {
		slog.Debug("startup primary town selected",
			"town", best,
			"score", bestScore,
			"towns", len(towns))
	}
	return best
}

// nearestHero queries the path provider for town and applies the eligibility rules.
func nearestHero(c *Context, town *model.Town) (pathing.Plan, bool) {
	return pathing.NearestHero(town, c.Paths.PathsTo(town.Position), c.Policy.MaxHeroDistanceSquared)
}
