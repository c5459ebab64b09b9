package pathing

import "github.com/gspu/vcmi/internal/model"

// garrisonScore is the score of a plan whose hero already sits in the
// destination town's garrison, so such a hero is preferred over anyone
// who would have to walk.
const garrisonScore = 1

// Score rates a plan towards town; lower is better.
func Score(town *model.Town, p Plan) float64 {
	if town.IsGarrison(p.TargetHero) {
		return garrisonScore
	}
	return p.MovementCost
}

// Shortest picks the plan with the lowest Score.
// Exact ties go to the hero with the lowest ID so the choice does not depend
// on the order the path finder returned plans in.
func Shortest(town *model.Town, plans []Plan) (Plan, bool) {
	if len(plans) == 0 {
		return Plan{}, false
	}

	best := plans[0]
	bestScore := Score(town, best)
	for _, p := range plans[1:] {
		s := Score(town, p)
		if s < bestScore || (s == bestScore && p.TargetHero.ID < best.TargetHero.ID) {
			best, bestScore = p, s
		}
	}
	return best, true
}

// NearestHero returns the hero that can enter town right away.
// The shortest plan is rejected when it needs more than one step, when its
// hero stands further than maxDistSq (squared tiles) from the town, or when
// its hero is already the town's garrison hero.
func NearestHero(town *model.Town, plans []Plan, maxDistSq int64) (Plan, bool) {
	best, ok := Shortest(town, plans)
	if !ok {
		return Plan{}, false
	}

	if len(best.Nodes) > 1 ||
		best.TargetHero.Position.DistanceSquared2D(town.Position) > maxDistSq ||
		town.IsGarrison(best.TargetHero) {
		return Plan{}, false
	}
	return best, true
}
