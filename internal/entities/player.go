// Package entities provides the core data structures for fabula-api.
package entities

import (
	"time"
)

// Attribute names a character attribute. Its value on a player is a die size.
type Attribute string

// Attributes
const (
	AttributeDexterity Attribute = "dexterity"
	AttributeInsight   Attribute = "insight"
	AttributeMight     Attribute = "might"
	AttributeWillpower Attribute = "willpower"
)

// AllAttributes lists attributes in sheet order.
var AllAttributes = []Attribute{AttributeDexterity, AttributeInsight, AttributeMight, AttributeWillpower}

// ShortName returns the three letter label used on cards ("DEX", "INS", "MIG", "WLP").
func (a Attribute) ShortName() string {
	switch a {
	case AttributeDexterity:
		return "DEX"
	case AttributeInsight:
		return "INS"
	case AttributeMight:
		return "MIG"
	case AttributeWillpower:
		return "WLP"
	default:
		return string(a)
	}
}

// Valid reports whether a is a known attribute.
func (a Attribute) Valid() bool {
	for _, known := range AllAttributes {
		if a == known {
			return true
		}
	}
	return false
}

// ValidDieSizes are the die sizes an attribute may take.
var ValidDieSizes = []int{6, 8, 10, 12}

// Player is a character sheet document. It is stored and saved wholesale.
type Player struct {
	ID         string            `json:"id"`
	UID        string            `json:"uid"`
	Name       string            `json:"name"`
	Lvl        int               `json:"lvl"`
	Info       Info              `json:"info"`
	Traits     Traits            `json:"traits"`
	Bonds      []Bond            `json:"bonds"`
	Notes      []Note            `json:"notes"`
	Attributes map[Attribute]int `json:"attributes"`
	Stats      Stats             `json:"stats"`
	Statuses   Statuses          `json:"statuses"`
	Modifiers  Modifiers         `json:"modifiers"`
	Classes    []PlayerClass     `json:"classes"`
	Equipment  Equipment         `json:"equipment"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// Info holds descriptive fields from the informations tab.
type Info struct {
	Pronouns     string `json:"pronouns"`
	Description  string `json:"description"`
	FabulaPoints int    `json:"fabulapoints"`
	Exp          int    `json:"exp"`
	Zenit        int    `json:"zenit"`
}

// Traits are the identity, theme and origin of a character.
type Traits struct {
	Identity string `json:"identity"`
	Theme    string `json:"theme"`
	Origin   string `json:"origin"`
}

// Bond is a relationship with its emotions.
type Bond struct {
	Name        string `json:"name"`
	Admiration  bool   `json:"admiration"`
	Loyality    bool   `json:"loyality"`
	Affection   bool   `json:"affection"`
	Inferiority bool   `json:"inferiority"`
	Mistrust    bool   `json:"mistrust"`
	Hatred      bool   `json:"hatred"`
}

// Note is a free form note.
type Note struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Pool is a capped resource.
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Stats are the derived resource pools.
type Stats struct {
	HP Pool `json:"hp"`
	MP Pool `json:"mp"`
	IP Pool `json:"ip"`
}

// Statuses are the status effects currently applied.
type Statuses struct {
	Slow     bool `json:"slow"`
	Dazed    bool `json:"dazed"`
	Weak     bool `json:"weak"`
	Shaken   bool `json:"shaken"`
	Enraged  bool `json:"enraged"`
	Poisoned bool `json:"poisoned"`
}

// Modifiers are manual flat bonuses entered on the stats tab.
type Modifiers struct {
	HP   int `json:"hp"`
	MP   int `json:"mp"`
	IP   int `json:"ip"`
	Def  int `json:"def"`
	MDef int `json:"mdef"`
	Init int `json:"init"`
}

// FindClass returns the index of the class with name, or -1.
func (p *Player) FindClass(name string) int {
	for i := range p.Classes {
		if p.Classes[i].Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	out := *p
	out.Bonds = cloneSlice(p.Bonds)
	out.Notes = cloneSlice(p.Notes)

	if p.Attributes != nil {
		out.Attributes = make(map[Attribute]int, len(p.Attributes))
		for k, v := range p.Attributes {
			out.Attributes[k] = v
		}
	}

	if p.Classes != nil {
		out.Classes = make([]PlayerClass, len(p.Classes))
		for i := range p.Classes {
			out.Classes[i] = p.Classes[i].Clone()
		}
	}

	out.Equipment = p.Equipment.Clone()
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
