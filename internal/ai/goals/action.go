package goals

import (
	"fmt"

	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/model"
)

// ActionKind is the type of an atomic action.
type ActionKind uint8

const (
	// ActionRecruitHero - hire a hero at Town
	ActionRecruitHero ActionKind = iota + 1
	// ActionMoveHero - walk Hero along Path into Town
	ActionMoveHero
	// ActionSwapTownHeroes - rearrange Town so that Hero (or nobody) is in the garrison
	ActionSwapTownHeroes
)

// String returns human-readable action kind name
func (k ActionKind) String() string {
	switch k {
	case ActionRecruitHero:
		return "RECRUIT_HERO"
	case ActionMoveHero:
		return "MOVE_HERO"
	case ActionSwapTownHeroes:
		return "SWAP_TOWN_HEROES"
	default:
		return "UNKNOWN"
	}
}

// Action is a goal reduced to something the executor can perform in one call.
type Action struct {
	Kind ActionKind
	Town *model.Town
	Hero *model.Hero
	Path pathing.Plan
}

func (a Action) String() string {
	switch a.Kind {
	case ActionRecruitHero:
		return fmt.Sprintf("recruit at %s", a.Town)
	case ActionMoveHero:
		return fmt.Sprintf("move %s to %s via %d nodes", a.Hero, a.Town, len(a.Path.Nodes))
	case ActionSwapTownHeroes:
		return fmt.Sprintf("swap heroes of %s keeping %s", a.Town, a.Hero)
	default:
		return fmt.Sprintf("Action(%d)", a.Kind)
	}
}
