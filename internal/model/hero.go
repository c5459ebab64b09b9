package model

import "fmt"

// HeroID identifies a hero on the adventure map.
type HeroID int32

// Hero is an owned hero as seen by the AI.
type Hero struct {
	ID       HeroID
	Name     string
	Position Position
	Level    int

	// Primary skills
	Attack     int
	Defense    int
	SpellPower int
	Knowledge  int

	// MovementPoints left this turn; MaxMovementPoints is the daily allowance.
	MovementPoints    int
	MaxMovementPoints int

	Army Army
}

// ArmyValue returns the AI value of the hero's army.
func (h *Hero) ArmyValue() int {
	return h.Army.Value()
}

// Clone returns a deep copy of the hero.
func (h *Hero) Clone() *Hero {
	c := *h
	c.Army = h.Army.Clone()
	return &c
}

func (h *Hero) String() string {
	if h == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s#%d", h.Name, h.ID)
}
