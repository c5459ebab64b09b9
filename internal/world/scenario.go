package world

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gspu/vcmi/internal/model"
)

// ErrScenario is returned for scenarios that cannot be loaded into a world.
var ErrScenario = errors.New("invalid scenario")

// Scenario is the starting position of one AI player on a small adventure map.
type Scenario struct {
	Day       int             `yaml:"day"`
	Terrain   []string        `yaml:"terrain"` // one string per map row, see pathfind.ParseGrid
	Resources model.Resources `yaml:"resources"`
	Towns     []TownSpec      `yaml:"towns"`
	Heroes    []HeroSpec      `yaml:"heroes"`
	Tavern    []HeroSpec      `yaml:"tavern"` // heroes for hire, first one is hired first
}

// TownSpec describes an owned town. Garrison and Visiting are hero IDs, 0 for none.
type TownSpec struct {
	ID        int32         `yaml:"id"`
	Name      string        `yaml:"name"`
	X         int32         `yaml:"x"`
	Y         int32         `yaml:"y"`
	HasTavern bool          `yaml:"tavern"`
	Income    int           `yaml:"income"`
	Garrison  int32         `yaml:"garrison"`
	Visiting  int32         `yaml:"visiting"`
	Army      []model.Stack `yaml:"army"`
}

// HeroSpec describes an owned or hireable hero. Position is ignored for tavern heroes.
type HeroSpec struct {
	ID         int32         `yaml:"id"`
	Name       string        `yaml:"name"`
	X          int32         `yaml:"x"`
	Y          int32         `yaml:"y"`
	Level      int           `yaml:"level"`
	Attack     int           `yaml:"attack"`
	Defense    int           `yaml:"defense"`
	SpellPower int           `yaml:"spell_power"`
	Knowledge  int           `yaml:"knowledge"`
	Movement   int           `yaml:"movement"` // daily movement points
	Army       []model.Stack `yaml:"army"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if sc.Day < 1 {
		sc.Day = 1
	}
	return sc, nil
}

func (s HeroSpec) hero() *model.Hero {
	return &model.Hero{
		ID:                model.HeroID(s.ID),
		Name:              s.Name,
		Position:          model.NewPosition(s.X, s.Y, 0),
		Level:             s.Level,
		Attack:            s.Attack,
		Defense:           s.Defense,
		SpellPower:        s.SpellPower,
		Knowledge:         s.Knowledge,
		MovementPoints:    s.Movement,
		MaxMovementPoints: s.Movement,
		Army:              model.NewArmy(s.Army...),
	}
}
