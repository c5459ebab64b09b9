// Package world is a small simulated adventure map. It produces game state
// snapshots for the AI and executes the actions the AI decides on.
package world

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gspu/vcmi/internal/ai/pathing"
	"github.com/gspu/vcmi/internal/config"
	"github.com/gspu/vcmi/internal/model"
	"github.com/gspu/vcmi/internal/pathfind"
)

var (
	// ErrInconsistentState is returned when an action references objects the world does not have,
	// or asks for a slot arrangement that makes no sense.
	ErrInconsistentState = errors.New("inconsistent world state")
	// ErrCannotRecruit is returned when a town cannot hire a hero right now.
	ErrCannotRecruit = errors.New("cannot recruit hero")
	// ErrSlotTaken is returned when a town's visiting slot is occupied.
	ErrSlotTaken = errors.New("visiting slot taken")
	// ErrUnreachable is returned when a hero cannot reach its destination.
	ErrUnreachable = errors.New("destination unreachable")
)

// World holds the mutable game state of one AI player.
// Safe for concurrent use.
type World struct {
	mu sync.Mutex

	grid      *pathfind.Grid
	day       int
	resources model.Resources
	towns     []*model.Town
	heroes    []*model.Hero
	tavern    []*model.Hero

	rules   model.RecruitRules
	pathing config.Pathing
}

// New builds a world from a scenario.
func New(sc Scenario, rules model.RecruitRules, pc config.Pathing) (*World, error) {
	grid, err := pathfind.ParseGrid(sc.Terrain)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}

	w := &World{
		grid:      grid,
		day:       sc.Day,
		resources: sc.Resources,
		rules:     rules,
		pathing:   pc,
	}

	byID := make(map[model.HeroID]*model.Hero)
	for _, hs := range sc.Heroes {
		h := hs.hero()
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hero %s: %w", h, ErrScenario)
		}
		if !grid.Passable(h.Position) {
			return nil, fmt.Errorf("hero %s stands on impassable tile %s: %w", h, h.Position, ErrScenario)
		}
		byID[h.ID] = h
		w.heroes = append(w.heroes, h)
	}
	for _, hs := range sc.Tavern {
		h := hs.hero()
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hero %s: %w", h, ErrScenario)
		}
		byID[h.ID] = h
		w.tavern = append(w.tavern, h)
	}

	slot := func(ts TownSpec, id int32) (*model.Hero, error) {
		if id == 0 {
			return nil, nil
		}
		h, ok := byID[model.HeroID(id)]
		if !ok || w.inTavern(h.ID) {
			return nil, fmt.Errorf("town %d: hero %d: %w", ts.ID, id, model.ErrUnknownHero)
		}
		if h.Position != model.NewPosition(ts.X, ts.Y, 0) {
			return nil, fmt.Errorf("town %d: hero %s is at %s: %w", ts.ID, h, h.Position, ErrScenario)
		}
		return h, nil
	}

	for _, ts := range sc.Towns {
		t := &model.Town{
			ID:        model.TownID(ts.ID),
			Name:      ts.Name,
			Position:  model.NewPosition(ts.X, ts.Y, 0),
			Army:      model.NewArmy(ts.Army...),
			HasTavern: ts.HasTavern,
			Income:    ts.Income,
		}
		if !grid.Passable(t.Position) {
			return nil, fmt.Errorf("town %s on impassable tile %s: %w", t, t.Position, ErrScenario)
		}
		if t.GarrisonHero, err = slot(ts, ts.Garrison); err != nil {
			return nil, err
		}
		if t.VisitingHero, err = slot(ts, ts.Visiting); err != nil {
			return nil, err
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		w.towns = append(w.towns, t)
	}

	return w, nil
}

func (w *World) inTavern(id model.HeroID) bool {
	for _, h := range w.tavern {
		if h.ID == id {
			return true
		}
	}
	return false
}

// Day returns the current game day.
func (w *World) Day() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.day
}

// Resources returns the treasury.
func (w *World) Resources() model.Resources {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resources
}

// Snapshot returns an immutable copy of the current state.
func (w *World) Snapshot() model.GameStateView {
	st, err := w.State()
	if err != nil {
		// The world validates every change, so a broken snapshot is a bug.
		panic(fmt.Sprintf("world snapshot: %v", err))
	}
	return st
}

// State returns an immutable copy of the current state.
func (w *World) State() (*model.GameState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	heroes := make([]*model.Hero, 0, len(w.heroes))
	for _, h := range w.heroes {
		heroes = append(heroes, h.Clone())
	}

	// Town slots still point at live heroes; NewGameState relinks them to the clones.
	towns := make([]*model.Town, 0, len(w.towns))
	for _, t := range w.towns {
		c := *t
		c.Army = t.Army.Clone()
		towns = append(towns, &c)
	}

	return model.NewGameState(w.day, towns, heroes, w.resources, len(w.tavern), w.rules)
}

// PathProvider returns a path provider for the heroes of view.
func (w *World) PathProvider(view model.GameStateView) pathing.Provider {
	return pathfind.NewProvider(w.grid, view, w.pathing.MaxTurns, w.pathing.MaxIterations)
}

// EndTurn starts the next day: heroes regain movement and towns pay income.
func (w *World) EndTurn() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.day++
	for _, h := range w.heroes {
		h.MovementPoints = h.MaxMovementPoints
	}
	var income model.Resources
	for _, t := range w.towns {
		income.Gold += t.Income
	}
	w.resources = w.resources.Add(income)

	slog.Info("day started", "day", w.day, "gold", w.resources.Gold, "income", income.Gold)
}

func (w *World) town(id model.TownID) (*model.Town, error) {
	for _, t := range w.towns {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("town %d: %w", id, ErrInconsistentState)
}

func (w *World) hero(id model.HeroID) (*model.Hero, error) {
	for _, h := range w.heroes {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, fmt.Errorf("hero %d: %w", id, ErrInconsistentState)
}
