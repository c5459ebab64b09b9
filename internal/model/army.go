package model

import (
	"cmp"
	"slices"
)

// ArmySize is the number of creature slots an army has.
const ArmySize = 7

// Stack is a group of identical creatures occupying one army slot.
type Stack struct {
	Creature  string `yaml:"creature"`
	Count     int    `yaml:"count"`
	UnitValue int    `yaml:"unit_value"` // AI value of a single creature
}

// Value returns the AI value of the whole stack.
func (s Stack) Value() int {
	return s.Count * s.UnitValue
}

// Army is an ordered list of creature stacks. Value type; use Clone before mutating.
type Army struct {
	Stacks []Stack
}

// NewArmy creates an Army from stacks, dropping empty ones.
func NewArmy(stacks ...Stack) Army {
	a := Army{Stacks: make([]Stack, 0, len(stacks))}
	for _, s := range stacks {
		if s.Count > 0 {
			a.Stacks = append(a.Stacks, s)
		}
	}
	return a
}

// Value returns the total AI value of the army.
func (a Army) Value() int {
	total := 0
	for _, s := range a.Stacks {
		total += s.Value()
	}
	return total
}

// Empty reports whether the army has no creatures.
func (a Army) Empty() bool {
	for _, s := range a.Stacks {
		if s.Count > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the army.
func (a Army) Clone() Army {
	return Army{Stacks: slices.Clone(a.Stacks)}
}

// MergeBest pools the creatures of both armies, joins stacks of the same
// creature and keeps the ArmySize most valuable stacks.
// Returns the kept army and whatever did not fit.
// Ties in stack value keep the creature that appeared first.
func (a Army) MergeBest(other Army) (kept, rest Army) {
	pooled := make([]Stack, 0, len(a.Stacks)+len(other.Stacks))
	index := make(map[string]int, len(a.Stacks)+len(other.Stacks))

	add := func(s Stack) {
		if s.Count <= 0 {
			return
		}
		if i, ok := index[s.Creature]; ok {
			pooled[i].Count += s.Count
			return
		}
		index[s.Creature] = len(pooled)
		pooled = append(pooled, s)
	}
	for _, s := range a.Stacks {
		add(s)
	}
	for _, s := range other.Stacks {
		add(s)
	}

	slices.SortStableFunc(pooled, func(x, y Stack) int {
		return cmp.Compare(y.Value(), x.Value())
	})

	if len(pooled) <= ArmySize {
		return Army{Stacks: pooled}, Army{}
	}
	return Army{Stacks: slices.Clone(pooled[:ArmySize])}, Army{Stacks: slices.Clone(pooled[ArmySize:])}
}
