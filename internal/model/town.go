package model

import (
	"errors"
	"fmt"
)

// ErrTownSlots is returned when a town's hero slots violate the garrison/visiting invariant.
var ErrTownSlots = errors.New("invalid town hero slots")

// TownID identifies a town on the adventure map.
type TownID int32

// Town is an owned town as seen by the AI.
// A town holds at most one garrison hero (inside the walls) and at most one
// visiting hero (standing on the town tile). They are never the same hero.
type Town struct {
	ID           TownID
	Name         string
	Position     Position
	GarrisonHero *Hero
	VisitingHero *Hero
	Army         Army // garrison troops without a hero
	HasTavern    bool
	Income       int // daily gold income
}

// UpperArmy returns the army that defends the town:
// the garrison hero's army if present, otherwise the town's own troops.
func (t *Town) UpperArmy() Army {
	if t.GarrisonHero != nil {
		return t.GarrisonHero.Army
	}
	return t.Army
}

// IsGarrison reports whether h is the town's garrison hero.
func (t *Town) IsGarrison(h *Hero) bool {
	return h != nil && t.GarrisonHero != nil && t.GarrisonHero.ID == h.ID
}

// IsVisiting reports whether h is the town's visiting hero.
func (t *Town) IsVisiting(h *Hero) bool {
	return h != nil && t.VisitingHero != nil && t.VisitingHero.ID == h.ID
}

// Validate checks the hero slot invariant.
func (t *Town) Validate() error {
	if t.GarrisonHero != nil && t.VisitingHero != nil && t.GarrisonHero.ID == t.VisitingHero.ID {
		return fmt.Errorf("town %s: hero %s is both garrison and visiting: %w", t, t.GarrisonHero, ErrTownSlots)
	}
	return nil
}

func (t *Town) String() string {
	if t == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s#%d", t.Name, t.ID)
}
