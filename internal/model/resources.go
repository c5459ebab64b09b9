package model

// Resources holds the player's treasury.
type Resources struct {
	Gold    int `yaml:"gold"`
	Wood    int `yaml:"wood"`
	Ore     int `yaml:"ore"`
	Mercury int `yaml:"mercury"`
	Sulfur  int `yaml:"sulfur"`
	Crystal int `yaml:"crystal"`
	Gems    int `yaml:"gems"`
}

// Add returns the sum of two resource sets.
func (r Resources) Add(o Resources) Resources {
	return Resources{
		Gold:    r.Gold + o.Gold,
		Wood:    r.Wood + o.Wood,
		Ore:     r.Ore + o.Ore,
		Mercury: r.Mercury + o.Mercury,
		Sulfur:  r.Sulfur + o.Sulfur,
		Crystal: r.Crystal + o.Crystal,
		Gems:    r.Gems + o.Gems,
	}
}

// Sub returns r minus o. Amounts may go negative; check CanAfford first.
func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Gold:    r.Gold - o.Gold,
		Wood:    r.Wood - o.Wood,
		Ore:     r.Ore - o.Ore,
		Mercury: r.Mercury - o.Mercury,
		Sulfur:  r.Sulfur - o.Sulfur,
		Crystal: r.Crystal - o.Crystal,
		Gems:    r.Gems - o.Gems,
	}
}

// CanAfford reports whether every amount in cost is covered.
func (r Resources) CanAfford(cost Resources) bool {
	return r.Gold >= cost.Gold &&
		r.Wood >= cost.Wood &&
		r.Ore >= cost.Ore &&
		r.Mercury >= cost.Mercury &&
		r.Sulfur >= cost.Sulfur &&
		r.Crystal >= cost.Crystal &&
		r.Gems >= cost.Gems
}
