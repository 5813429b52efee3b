// Package rpgtoolkit implements the engine interface, rolling dice with rpg-toolkit.
package rpgtoolkit

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// criticalThreshold is the lowest matching face that makes a critical
const criticalThreshold = 6

// Adapter implements the engine.Engine interface
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{diceRoller: cfg.DiceRoller}, nil
}

var _ engine.Engine = (*Adapter)(nil)

// RecalculateStats derives max HP, MP and IP from level, attributes, class
// benefits and manual modifiers. Current values are lowered to the new max
// but never raised.
func (a *Adapter) RecalculateStats(
	_ context.Context,
	input *engine.RecalculateStatsInput,
) (*engine.RecalculateStatsOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	bonuses := engine.StatBonuses{
		HP: p.Modifiers.HP,
		MP: p.Modifiers.MP,
		IP: p.Modifiers.IP,
	}
	for _, cls := range p.Classes {
		bonuses.HP += cls.Benefits.HPPlus
		bonuses.MP += cls.Benefits.MPPlus
		bonuses.IP += cls.Benefits.IPPlus
	}

	maxHP := p.Lvl + p.Attributes[entities.AttributeMight]*engine.AttributeMultiplier + bonuses.HP
	maxMP := p.Lvl + p.Attributes[entities.AttributeWillpower]*engine.AttributeMultiplier + bonuses.MP
	maxIP := engine.BaseIP + bonuses.IP

	return &engine.RecalculateStatsOutput{
		Stats: entities.Stats{
			HP: entities.Pool{Current: min(p.Stats.HP.Current, maxHP), Max: maxHP},
			MP: entities.Pool{Current: min(p.Stats.MP.Current, maxMP), Max: maxMP},
			IP: entities.Pool{Current: min(p.Stats.IP.Current, maxIP), Max: maxIP},
		},
		Bonuses: bonuses,
	}, nil
}

// CheckClassRoster reports the class count, mastered class limit and level
// sum warnings. They are advisory and never block an edit.
func (a *Adapter) CheckClassRoster(
	_ context.Context,
	input *engine.CheckClassRosterInput,
) (*engine.CheckClassRosterOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	p := input.Player

	output := &engine.CheckClassRosterOutput{}
	for _, cls := range p.Classes {
		output.TotalClassLvl += cls.Lvl
		if cls.Lvl >= engine.MasteredClassLevel {
			output.MasteredCount++
		}
	}

	if len(p.Classes) < engine.MinClasses {
		output.Warnings = append(output.Warnings, engine.RosterWarningMinClasses)
	}
	if len(p.Classes)-output.MasteredCount > engine.MaxUnmasteredClasses {
		output.Warnings = append(output.Warnings, engine.RosterWarningClassLimit)
	}
	if output.TotalClassLvl != p.Lvl {
		output.Warnings = append(output.Warnings, engine.RosterWarningLevelSum)
	}

	return output, nil
}

// RollCheck rolls one die per attribute. The high roll is the larger die, a
// critical is a pair at or above criticalThreshold and a fumble is a pair of ones.
func (a *Adapter) RollCheck(_ context.Context, input *engine.RollCheckInput) (*engine.RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if !slices.Contains(entities.ValidDieSizes, input.Die1) {
		vb.Fieldf("die1", "d%d is not an attribute die", input.Die1)
	}
	if !slices.Contains(entities.ValidDieSizes, input.Die2) {
		vb.Fieldf("die2", "d%d is not an attribute die", input.Die2)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r1, err := a.diceRoller.Roll(input.Die1)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", input.Die1)
	}
	r2, err := a.diceRoller.Roll(input.Die2)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", input.Die2)
	}

	return &engine.RollCheckOutput{
		Result1:  r1,
		Result2:  r2,
		Bonus:    input.Bonus,
		Total:    r1 + r2 + input.Bonus,
		HighRoll: max(r1, r2),
		Critical: r1 == r2 && r1 >= criticalThreshold,
		Fumble:   r1 == 1 && r2 == 1,
	}, nil
}
