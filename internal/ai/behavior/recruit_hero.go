package behavior

import "github.com/gspu/vcmi/internal/ai/goals"

// RecruitHeroBehavior hires a hero while the player is short of heroes
// (fewer than one per town plus a spare) or is rich enough not to care.
type RecruitHeroBehavior struct{}

// Compile-time interface check
var _ Behavior = RecruitHeroBehavior{}

func (RecruitHeroBehavior) Name() string { return "Recruit hero" }

func (RecruitHeroBehavior) Tasks(c *Context) []goals.Goal {
	if !c.State.CanRecruitAnyHero() {
		return nil
	}

	if len(c.State.Heroes()) < len(c.State.Towns())+1 ||
		c.State.Gold() > c.Policy.GoldThreshold {
		return []goals.Goal{goals.RecruitHero(c.Policy.UrgentPriority)}
	}

	return nil
}
