package engine

import (
	"github.com/KirkDiggler/fabula-api/internal/entities"
)

// Rule constants
const (
	// BaseIP is the inventory points every character starts with
	BaseIP = 6
	// AttributeMultiplier scales might/willpower into max HP/MP
	AttributeMultiplier = 5
	// MasteredClassLevel is the level at which a class no longer counts against the class limit
	MasteredClassLevel = 10
	// MinClasses is the smallest recommended class count
	MinClasses = 2
	// MaxUnmasteredClasses is how many classes below MasteredClassLevel a player may hold
	MaxUnmasteredClasses = 3
)

// RecalculateStatsInput contains the player to derive stats for
type RecalculateStatsInput struct {
	Player *entities.Player
}

// RecalculateStatsOutput contains the replacement stats subtree
type RecalculateStatsOutput struct {
	Stats   entities.Stats
	Bonuses StatBonuses
}

// StatBonuses are the class benefit plus manual modifier totals
type StatBonuses struct {
	HP int
	MP int
	IP int
}

// RosterWarning identifies an advisory class roster warning
type RosterWarning string

// Roster warnings
const (
	RosterWarningMinClasses RosterWarning = "min_classes"
	RosterWarningClassLimit RosterWarning = "class_limit"
	RosterWarningLevelSum   RosterWarning = "level_sum"
)

// CheckClassRosterInput contains the player to check
type CheckClassRosterInput struct {
	Player *entities.Player
}

// CheckClassRosterOutput lists warnings in a stable order
type CheckClassRosterOutput struct {
	Warnings      []RosterWarning
	TotalClassLvl int
	MasteredCount int
}

// RollCheckInput contains the two dice and flat bonus of a check
type RollCheckInput struct {
	Die1  int
	Die2  int
	Bonus int
}

// RollCheckOutput contains the rolled values
type RollCheckOutput struct {
	Result1  int
	Result2  int
	Bonus    int
	Total    int
	HighRoll int
	Critical bool
	Fumble   bool
}
