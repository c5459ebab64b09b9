// Package goals holds the prioritized tasks behaviors propose and the atomic
// actions they reduce to.
package goals

import (
	"fmt"

	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/model"
)

// Kind is the type of a goal.
type Kind uint8

const (
	// KindRecruitHero - hire a hero in some town's tavern
	KindRecruitHero Kind = iota + 1
	// KindExecuteHeroChain - walk a hero along a plan into a town
	KindExecuteHeroChain
	// KindExchangeSwapTownHeroes - rearrange a town's garrison and visiting heroes
	KindExchangeSwapTownHeroes
	// KindStartup - early-game meta task; only labels what the startup behavior does
	KindStartup
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindRecruitHero:
		return "RECRUIT_HERO"
	case KindExecuteHeroChain:
		return "EXECUTE_HERO_CHAIN"
	case KindExchangeSwapTownHeroes:
		return "EXCHANGE_SWAP_TOWN_HEROES"
	case KindStartup:
		return "STARTUP"
	default:
		return "UNKNOWN"
	}
}

// Goal is a candidate task with a priority. Higher priority wins.
// Which payload fields are set depends on Kind:
//   - RecruitHero: none
//   - ExecuteHeroChain: Path and Town
//   - ExchangeSwapTownHeroes: Town and Hero (the hero to keep in garrison, nil for none)
//
// Goals are built fresh every cycle and never outlive it.
type Goal struct {
	Kind     Kind
	Priority float64

	Path pathing.Plan
	Town *model.Town
	Hero *model.Hero
}

// RecruitHero creates a goal to hire a hero.
func RecruitHero(priority float64) Goal {
	return Goal{Kind: KindRecruitHero, Priority: priority}
}

// ExecuteHeroChain creates a goal to move path's hero into town.
func ExecuteHeroChain(path pathing.Plan, town *model.Town, priority float64) Goal {
	return Goal{Kind: KindExecuteHeroChain, Priority: priority, Path: path, Town: town, Hero: path.TargetHero}
}

// ExchangeSwapTownHeroes creates a goal that leaves keep in town's garrison.
// keep == nil empties the garrison.
func ExchangeSwapTownHeroes(town *model.Town, keep *model.Hero, priority float64) Goal {
	return Goal{Kind: KindExchangeSwapTownHeroes, Priority: priority, Town: town, Hero: keep}
}

// Startup creates the startup meta goal.
func Startup(priority float64) Goal {
	return Goal{Kind: KindStartup, Priority: priority}
}

// Describe returns a label for logs and diagnostics.
func (g Goal) Describe() string {
	switch g.Kind {
	case KindRecruitHero:
		return "Recruit hero"
	case KindExecuteHeroChain:
		return fmt.Sprintf("Move %s to %s (cost %.0f)", g.Path.TargetHero, g.Town, g.Path.MovementCost)
	case KindExchangeSwapTownHeroes:
		if g.Hero == nil {
			return fmt.Sprintf("Empty garrison of %s", g.Town)
		}
		return fmt.Sprintf("Keep %s in garrison of %s", g.Hero, g.Town)
	case KindStartup:
		return "Startup"
	default:
		return fmt.Sprintf("Goal(%d)", g.Kind)
	}
}

func (g Goal) String() string {
	return fmt.Sprintf("%s@%g", g.Describe(), g.Priority)
}
