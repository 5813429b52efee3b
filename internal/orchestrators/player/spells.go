package player

import (
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// SelectSpellClass picks the class whose spells are edited and returns the
// spell types it unlocks. Viewers may select too; nothing is marked dirty.
func (o *Orchestrator) SelectSpellClass(ctx context.Context, input *player.SelectSpellClassInput) (*player.SelectSpellClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	i, err := findClass(session.Scratch, input.ClassName)
	if err != nil {
		return nil, err
	}
	spellTypes := slices.Clone(session.Scratch.Classes[i].Benefits.SpellClasses)
	if spellTypes == nil {
		spellTypes = []entities.SpellType{}
	}

	session.Selection = entities.SpellSelection{ClassName: input.ClassName}
	session, err = o.touch(ctx, session)
	if err != nil {
		return nil, err
	}

	out, err := o.sessionOutput(ctx, session, nil)
	if err != nil {
		return nil, err
	}
	return &player.SelectSpellClassOutput{
		SessionOutput: *out,
		SpellTypes:    spellTypes,
	}, nil
}

// AddSpell adds a spell of the given type to a class. Only the default type
// has a payload; other unlocked types report Unimplemented and change nothing.
func (o *Orchestrator) AddSpell(ctx context.Context, input *player.AddSpellInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellType == "" {
		return nil, errors.InvalidArgument("spell type is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		i, err := findClass(s.Scratch, input.ClassName)
		if err != nil {
			return nil, err
		}

		class := &s.Scratch.Classes[i]
		if !slices.Contains(class.Benefits.SpellClasses, input.SpellType) {
			return nil, errors.InvalidArgumentf("class %s does not unlock %s spells", class.Name, input.SpellType).
				WithMeta("class", class.Name).
				WithMeta("spell_type", string(input.SpellType))
		}

		if input.SpellType != entities.SpellTypeDefault {
			msg := o.translator.Sprintf(s.Language, i18n.NoticeSpellNotImplemented, strings.ToUpper(string(input.SpellType)))
			return nil, errors.Unimplementedf("%s", msg).WithMeta("spell_type", string(input.SpellType))
		}

		class.Spells = append(class.Spells, entities.NewDefaultSpell())
		s.Selection = entities.SpellSelection{}
		return &change{}, nil
	})
}

// EditSpell replaces the spell at Index
func (o *Orchestrator) EditSpell(ctx context.Context, input *player.EditSpellInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("spell.name", input.Spell.Name, vb)
	if input.Spell.MP < 0 {
		vb.Field("spell.mp", "cannot be negative")
	}
	if input.Spell.MaxTargets < 0 {
		vb.Field("spell.maxTargets", "cannot be negative")
	}
	if input.Spell.Attr1 != "" && !input.Spell.Attr1.Valid() {
		vb.Field("spell.attr1", "unknown attribute")
	}
	if input.Spell.Attr2 != "" && !input.Spell.Attr2.Valid() {
		vb.Field("spell.attr2", "unknown attribute")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		i, err := findClass(s.Scratch, input.ClassName)
		if err != nil {
			return nil, err
		}

		class := &s.Scratch.Classes[i]
		if err := checkIndex("spell", input.Index, len(class.Spells)); err != nil {
			return nil, err
		}

		spell := input.Spell
		if spell.SpellType == "" {
			spell.SpellType = class.Spells[input.Index].SpellType
		}
		class.Spells[input.Index] = spell
		s.Selection = entities.SpellSelection{}
		return &change{}, nil
	})
}

// DeleteSpell removes the spell at Index; the rest keep their order
func (o *Orchestrator) DeleteSpell(ctx context.Context, input *player.DeleteSpellInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		i, err := findClass(s.Scratch, input.ClassName)
		if err != nil {
			return nil, err
		}

		class := &s.Scratch.Classes[i]
		if err := checkIndex("spell", input.Index, len(class.Spells)); err != nil {
			return nil, err
		}

		class.Spells = slices.Delete(class.Spells, input.Index, input.Index+1)
		s.Selection = entities.SpellSelection{}
		return &change{}, nil
	})
}
