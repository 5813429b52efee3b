package entities

// PlayerClass is a class taken by a player. Name is unique within a player.
type PlayerClass struct {
	Name     string        `json:"name"`
	Lvl      int           `json:"lvl"`
	Benefits ClassBenefits `json:"benefits"`
	Skills   []Skill       `json:"skills"`
	Heroic   *Heroic       `json:"heroic"`
	Spells   []Spell       `json:"spells"`
}

// ClassBenefits are the bonuses a class contributes. Absent values are zero.
type ClassBenefits struct {
	HPPlus       int         `json:"hpplus" yaml:"hpplus"`
	MPPlus       int         `json:"mpplus" yaml:"mpplus"`
	IPPlus       int         `json:"ipplus" yaml:"ipplus"`
	SpellClasses []SpellType `json:"spellClasses" yaml:"spellClasses"`
	Rituals      []string    `json:"rituals" yaml:"rituals"`
}

// Skill is a class skill with its current and maximum level.
type Skill struct {
	SkillName   string `json:"skillName"`
	CurrentLvl  int    `json:"currentLvl"`
	MaxLvl      int    `json:"maxLvl"`
	Description string `json:"description"`
}

// Heroic is a heroic skill attached to a mastered class.
type Heroic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the benefits.
func (b ClassBenefits) Clone() ClassBenefits {
	b.SpellClasses = cloneSlice(b.SpellClasses)
	b.Rituals = cloneSlice(b.Rituals)
	return b
}

// UnlocksSpells reports whether the class grants any spell category.
func (b ClassBenefits) UnlocksSpells() bool {
	return len(b.SpellClasses) > 0
}

// Clone returns a deep copy of the class.
func (c PlayerClass) Clone() PlayerClass {
	c.Benefits = c.Benefits.Clone()
	c.Skills = cloneSlice(c.Skills)
	c.Spells = cloneSlice(c.Spells)
	if c.Heroic != nil {
		heroic := *c.Heroic
		c.Heroic = &heroic
	}
	return c
}
