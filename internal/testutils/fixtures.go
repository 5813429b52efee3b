package testutils

import (
	"time"

	"github.com/KirkDiggler/fabula-api/internal/entities"
)

// Fixture identifiers
const (
	TestPlayerID  = "player_test_001"
	TestOwnerID   = "uid_owner"
	TestVisitorID = "uid_visitor"
	TestSessionID = "session_test_001"
)

// TestTime is the fixed time used by fixtures and mocked clocks
var TestTime = time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

// CreateTestPlayer returns a level 5 player with two classes whose stats
// are already consistent with its attributes.
func CreateTestPlayer() *entities.Player {
	return &entities.Player{
		ID:   TestPlayerID,
		UID:  TestOwnerID,
		Name: "Lia",
		Lvl:  5,
		Attributes: map[entities.Attribute]int{
			entities.AttributeDexterity: 8,
			entities.AttributeInsight:   8,
			entities.AttributeMight:     8,
			entities.AttributeWillpower: 8,
		},
		Classes: []entities.PlayerClass{
			{
				Name:     "Guardian",
				Lvl:      3,
				Benefits: entities.ClassBenefits{HPPlus: 5},
				Skills:   []entities.Skill{},
				Spells:   []entities.Spell{},
			},
			{
				Name:     "Elementalist",
				Lvl:      2,
				Benefits: entities.ClassBenefits{MPPlus: 5, SpellClasses: []entities.SpellType{entities.SpellTypeDefault}},
				Skills:   []entities.Skill{},
				Spells:   []entities.Spell{},
			},
		},
		Stats: entities.Stats{
			HP: entities.Pool{Current: 50, Max: 50},
			MP: entities.Pool{Current: 50, Max: 50},
			IP: entities.Pool{Current: 6, Max: 6},
		},
		Equipment: entities.Equipment{
			Weapons: []entities.Weapon{CreateTestWeapon()},
		},
		CreatedAt: TestTime,
		UpdatedAt: TestTime,
	}
}

// CreateTestWeapon returns a basic one-handed melee weapon
func CreateTestWeapon() entities.Weapon {
	return entities.Weapon{
		Name:     "Iron Sword",
		Category: "Sword",
		Cost:     200,
		Att1:     entities.AttributeDexterity,
		Att2:     entities.AttributeMight,
		Prec:     1,
		Damage:   10,
		Type:     entities.DamagePhysical,
		Hands:    1,
		Melee:    true,
		Martial:  true,
	}
}
