package model

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

// ErrUnknownHero is returned when a town slot references a hero the player does not own.
var ErrUnknownHero = errors.New("unknown hero")

// Recruit rule defaults.
const (
	DefaultHeroCost  = 2500 // gold price of a tavern hero
	DefaultMaxHeroes = 8    // roaming hero cap per player
)

// GameStateView is the read-only snapshot exposed to AI behaviors.
// Implementations must not change for the duration of one decision cycle.
type GameStateView interface {
	// Towns returns owned towns in a stable order.
	Towns() []*Town
	// Heroes returns owned heroes in a stable order.
	Heroes() []*Hero
	// Gold returns the gold amount in the treasury.
	Gold() int
	// Resources returns the whole treasury.
	Resources() Resources
	// CanRecruitAnyHero reports whether some owned town can recruit a hero now.
	CanRecruitAnyHero() bool
	// CanRecruitHeroAt reports whether the given town can recruit a hero now.
	CanRecruitHeroAt(t *Town) bool
}

// RecruitRules are the conditions under which a tavern hires a hero.
type RecruitRules struct {
	HeroCost  int
	MaxHeroes int
}

// DefaultRecruitRules returns the standard tavern rules.
func DefaultRecruitRules() RecruitRules {
	return RecruitRules{
		HeroCost:  DefaultHeroCost,
		MaxHeroes: DefaultMaxHeroes,
	}
}

// Cost returns the price of hiring one hero.
func (r RecruitRules) Cost() Resources {
	return Resources{Gold: r.HeroCost}
}

// GameState is an immutable GameStateView.
// It owns its towns and heroes; garrison and visiting slots point into its own hero list.
type GameState struct {
	day        int
	towns      []*Town
	heroes     []*Hero
	resources  Resources
	tavernPool int
	rules      RecruitRules
}

// Compile-time interface check
var _ GameStateView = (*GameState)(nil)

// NewGameState builds a snapshot from the given objects.
// Town hero slots are relinked to the matching entries of heroes by ID.
// The caller must not mutate the arguments afterwards.
func NewGameState(day int, towns []*Town, heroes []*Hero, res Resources, tavernPool int, rules RecruitRules) (*GameState, error) {
	byID := make(map[HeroID]*Hero, len(heroes))
	for _, h := range heroes {
		if _, dup := byID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hero %s", h)
		}
		byID[h.ID] = h
	}

	for _, t := range towns {
		if t.GarrisonHero != nil {
			h, ok := byID[t.GarrisonHero.ID]
			if !ok {
				return nil, fmt.Errorf("town %s garrison %s: %w", t, t.GarrisonHero, ErrUnknownHero)
			}
			t.GarrisonHero = h
		}
		if t.VisitingHero != nil {
			h, ok := byID[t.VisitingHero.ID]
			if !ok {
				return nil, fmt.Errorf("town %s visitor %s: %w", t, t.VisitingHero, ErrUnknownHero)
			}
			t.VisitingHero = h
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	return &GameState{
		day:        day,
		towns:      towns,
		heroes:     heroes,
		resources:  res,
		tavernPool: tavernPool,
		rules:      rules,
	}, nil
}

// Day returns the game day the snapshot was taken on.
func (s *GameState) Day() int { return s.day }

func (s *GameState) Towns() []*Town { return s.towns }

func (s *GameState) Heroes() []*Hero { return s.heroes }

func (s *GameState) Gold() int { return s.resources.Gold }

func (s *GameState) Resources() Resources { return s.resources }

// Hero returns the owned hero with the given ID.
func (s *GameState) Hero(id HeroID) (*Hero, bool) {
	for _, h := range s.heroes {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// Town returns the owned town with the given ID.
func (s *GameState) Town(id TownID) (*Town, bool) {
	for _, t := range s.towns {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// CanRecruitHeroAt reports whether t can hire a hero: it needs a tavern and a
// free town tile, the player must afford the hero and be under the hero cap,
// and the tavern must have someone to offer.
func (s *GameState) CanRecruitHeroAt(t *Town) bool {
	if t == nil || !t.HasTavern || t.VisitingHero != nil {
		return false
	}
	if !s.resources.CanAfford(s.rules.Cost()) {
		return false
	}
	if len(s.heroes) >= s.rules.MaxHeroes {
		return false
	}
	return s.tavernPool > 0
}

func (s *GameState) CanRecruitAnyHero() bool {
	return s.RecruitTown() != nil
}

// RecruitTown returns the first town that can hire a hero, or nil.
func (s *GameState) RecruitTown() *Town {
	for _, t := range s.towns {
		if s.CanRecruitHeroAt(t) {
			return t
		}
	}
	return nil
}

// Fingerprint hashes everything a decision can change.
// Equal fingerprints mean the AI made no progress between two snapshots.
func (s *GameState) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}

	put(int64(s.day))
	put(int64(s.resources.Gold))
	put(int64(s.tavernPool))
	for _, hero := range s.heroes {
		put(int64(hero.ID))
		put(int64(hero.Position.X))
		put(int64(hero.Position.Y))
		put(int64(hero.Position.Z))
		put(int64(hero.MovementPoints))
		put(int64(hero.ArmyValue()))
	}
	slotID := func(hero *Hero) int64 {
		if hero == nil {
			return -1
		}
		return int64(hero.ID)
	}
	for _, t := range s.towns {
		put(int64(t.ID))
		put(slotID(t.GarrisonHero))
		put(slotID(t.VisitingHero))
		put(int64(t.Army.Value()))
	}
	return h.Sum64()
}
