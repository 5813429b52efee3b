// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/testutils"
)

// PlayerBuilder provides a fluent interface for building test Player instances
type PlayerBuilder struct {
	player *entities.Player
}

// NewPlayerBuilder starts from the standard test player
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{player: testutils.CreateTestPlayer()}
}

// WithID sets the player ID
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.player.ID = id
	return b
}

// WithOwner sets the owning user ID
func (b *PlayerBuilder) WithOwner(uid string) *PlayerBuilder {
	b.player.UID = uid
	return b
}

// WithLevel sets the player level
func (b *PlayerBuilder) WithLevel(lvl int) *PlayerBuilder {
	b.player.Lvl = lvl
	return b
}

// WithAttribute sets one attribute die
func (b *PlayerBuilder) WithAttribute(attr entities.Attribute, die int) *PlayerBuilder {
	b.player.Attributes[attr] = die
	return b
}

// WithClasses replaces the class list
func (b *PlayerBuilder) WithClasses(classes ...entities.PlayerClass) *PlayerBuilder {
	b.player.Classes = classes
	return b
}

// WithClass appends a class with the given level and no benefits
func (b *PlayerBuilder) WithClass(name string, lvl int) *PlayerBuilder {
	b.player.Classes = append(b.player.Classes, entities.PlayerClass{
		Name:   name,
		Lvl:    lvl,
		Skills: []entities.Skill{},
		Spells: []entities.Spell{},
	})
	return b
}

// WithSpells replaces the spells of the named class
func (b *PlayerBuilder) WithSpells(className string, spells ...entities.Spell) *PlayerBuilder {
	if i := b.player.FindClass(className); i >= 0 {
		b.player.Classes[i].Spells = spells
	}
	return b
}

// WithStats sets the stats subtree
func (b *PlayerBuilder) WithStats(stats entities.Stats) *PlayerBuilder {
	b.player.Stats = stats
	return b
}

// WithModifiers sets manual modifiers
func (b *PlayerBuilder) WithModifiers(mods entities.Modifiers) *PlayerBuilder {
	b.player.Modifiers = mods
	return b
}

// WithWeapons replaces the weapon list
func (b *PlayerBuilder) WithWeapons(weapons ...entities.Weapon) *PlayerBuilder {
	b.player.Equipment.Weapons = weapons
	return b
}

// Build returns the player
func (b *PlayerBuilder) Build() *entities.Player {
	return b.player
}
