package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gspu/vcmi/internal/ai/goals"
	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/model"
	"github.com/gspu/vcmi/internal/pathfind"
)

// Execute performs an atomic action. Actions reference objects by ID;
// the pointers they carry belong to an older snapshot.
func (w *World) Execute(ctx context.Context, a goals.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.Town == nil {
		return fmt.Errorf("%s: no town: %w", a, ErrInconsistentState)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	town, err := w.town(a.Town.ID)
	if err != nil {
		return err
	}

	switch a.Kind {
	case goals.ActionRecruitHero:
		err = w.recruit(town)
	case goals.ActionMoveHero:
		err = w.move(town, a.Hero)
	case goals.ActionSwapTownHeroes:
		err = w.swap(town, a.Hero)
	default:
		err = fmt.Errorf("unknown action kind %d: %w", a.Kind, ErrInconsistentState)
	}
	if err != nil {
		return err
	}

	slog.Debug("action executed", "action", a.String(), "day", w.day, "gold", w.resources.Gold)
	return nil
}

func (w *World) canRecruitAt(t *model.Town) bool {
	return t.HasTavern &&
		t.VisitingHero == nil &&
		w.resources.CanAfford(w.rules.Cost()) &&
		len(w.heroes) < w.rules.MaxHeroes &&
		len(w.tavern) > 0
}

// recruit hires the first tavern hero; it appears on the town tile.
func (w *World) recruit(t *model.Town) error {
	if !w.canRecruitAt(t) {
		return fmt.Errorf("town %s: %w", t, ErrCannotRecruit)
	}

	h := w.tavern[0]
	w.tavern = w.tavern[1:]

	h.Position = t.Position
	h.MovementPoints = h.MaxMovementPoints
	w.heroes = append(w.heroes, h)
	w.resources = w.resources.Sub(w.rules.Cost())
	t.VisitingHero = h

	slog.Info("hero recruited", "hero", h, "town", t, "gold", w.resources.Gold)
	return nil
}

// move walks a hero into the town tile. The route is searched again on the
// live map; the hero becomes the town's visiting hero.
func (w *World) move(t *model.Town, ref *model.Hero) error {
	if ref == nil {
		return fmt.Errorf("move to %s: no hero: %w", t, ErrInconsistentState)
	}
	h, err := w.hero(ref.ID)
	if err != nil {
		return err
	}
	if t.IsVisiting(h) {
		return nil
	}
	if t.VisitingHero != nil {
		return fmt.Errorf("move %s to %s: %s is there: %w", h, t, t.VisitingHero, ErrSlotTaken)
	}

	budget := pathfind.Budget(h, w.pathing.MaxTurns)
	nodes, cost, ok := pathfind.FindPath(w.grid, h.Position, t.Position, budget, w.pathing.MaxIterations)
	if !ok {
		return fmt.Errorf("move %s to %s: %w", h, t, ErrUnreachable)
	}
	route := pathing.Plan{Nodes: nodes, MovementCost: cost, TargetHero: h}
	days := route.Turns(h.MovementPoints, h.MaxMovementPoints)

	w.leaveTowns(h)
	h.Position = t.Position
	h.MovementPoints = max(0, h.MovementPoints-int(cost))
	t.VisitingHero = h

	slog.Info("hero moved",
		"hero", h,
		"town", t,
		"cost", cost,
		"nodes", len(nodes),
		"extra_days", days,
		"movement_left", h.MovementPoints)
	return nil
}

// leaveTowns clears every town slot h occupies.
func (w *World) leaveTowns(h *model.Hero) {
	for _, t := range w.towns {
		if t.IsGarrison(h) {
			t.GarrisonHero = nil
		}
		if t.IsVisiting(h) {
			t.VisitingHero = nil
		}
	}
}

// swap rearranges the town's heroes so that keep ends up in the garrison:
//   - nil: the garrison hero steps out; a visitor, if any, takes its place;
//   - the visiting hero: the two heroes trade places;
//   - the garrison hero: it stays and takes the visitor's best stacks.
func (w *World) swap(t *model.Town, keep *model.Hero) error {
	garrison, visitor := t.GarrisonHero, t.VisitingHero

	switch {
	case keep == nil:
		if garrison == nil {
			return fmt.Errorf("empty garrison of %s: no garrison hero: %w", t, ErrInconsistentState)
		}
		t.GarrisonHero, t.VisitingHero = visitor, garrison

	case t.IsVisiting(keep):
		t.GarrisonHero, t.VisitingHero = visitor, garrison

	case t.IsGarrison(keep):
		if visitor == nil {
			return fmt.Errorf("reinforce %s in %s: no visiting hero: %w", garrison, t, ErrInconsistentState)
		}
		garrison.Army, visitor.Army = garrison.Army.MergeBest(visitor.Army)

	default:
		return fmt.Errorf("keep %s in %s: hero is not in town: %w", keep, t, ErrInconsistentState)
	}

	slog.Info("town heroes swapped", "town", t, "garrison", t.GarrisonHero, "visiting", t.VisitingHero)
	return nil
}
