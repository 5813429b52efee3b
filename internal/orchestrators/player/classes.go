package player

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

const maxSkillLevel = 10

// AddClass adds a catalog class at level 1. Adding a class the player already
// has changes nothing: the error is logged and a notice is returned.
func (o *Orchestrator) AddClass(ctx context.Context, input *player.AddClassInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.ClassName) == "" {
		return nil, errors.InvalidArgument("class name is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		if s.Scratch.FindClass(input.ClassName) >= 0 {
			return o.duplicateClass(ctx, s, input.ClassName), nil
		}

		def, err := o.catalog.GetClass(input.ClassName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up class")
		}
		if s.Scratch.FindClass(def.Name) >= 0 {
			return o.duplicateClass(ctx, s, def.Name), nil
		}

		s.Scratch.Classes = append(s.Scratch.Classes, entities.PlayerClass{
			Name:     def.Name,
			Lvl:      1,
			Benefits: def.Benefits.Clone(),
			Skills:   []entities.Skill{},
			Spells:   []entities.Spell{},
		})
		return &change{recalc: true}, nil
	})
}

// RemoveClass removes the class at Index, keeping the order of the rest
func (o *Orchestrator) RemoveClass(ctx context.Context, input *player.RemoveClassInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		if err := checkIndex("class", input.Index, len(s.Scratch.Classes)); err != nil {
			return nil, err
		}

		removed := s.Scratch.Classes[input.Index].Name
		s.Scratch.Classes = append(s.Scratch.Classes[:input.Index:input.Index], s.Scratch.Classes[input.Index+1:]...)
		if s.Selection.ClassName == removed {
			s.Selection = entities.SpellSelection{}
		}
		return &change{recalc: true}, nil
	})
}

// SetClassLevel sets the level of the class at Index
func (o *Orchestrator) SetClassLevel(ctx context.Context, input *player.SetClassLevelInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("lvl", input.Lvl, 1, engine.MasteredClassLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		if err := checkIndex("class", input.Index, len(s.Scratch.Classes)); err != nil {
			return nil, err
		}
		s.Scratch.Classes[input.Index].Lvl = input.Lvl
		return &change{recalc: true}, nil
	})
}

// AddSkill appends a skill at level 1 to the named class
func (o *Orchestrator) AddSkill(ctx context.Context, input *player.AddSkillInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("className", input.ClassName, vb)
	errors.ValidateRequired("skillName", input.SkillName, vb)
	errors.ValidateRange("maxLvl", input.MaxLvl, 1, maxSkillLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		i, err := findClass(s.Scratch, input.ClassName)
		if err != nil {
			return nil, err
		}

		s.Scratch.Classes[i].Skills = append(s.Scratch.Classes[i].Skills, entities.Skill{
			SkillName:   input.SkillName,
			CurrentLvl:  1,
			MaxLvl:      input.MaxLvl,
			Description: input.Description,
		})
		return &change{}, nil
	})
}

func (o *Orchestrator) duplicateClass(ctx context.Context, s *entities.EditSession, name string) *change {
	slog.ErrorContext(ctx, "class already exists for player",
		"session_id", s.ID,
		"player_id", s.PlayerID,
		"class", name)
	return &change{
		noop:    true,
		notices: []string{o.translator.Sprintf(s.Language, i18n.NoticeClassExists)},
	}
}

func findClass(p *entities.Player, name string) (int, error) {
	i := p.FindClass(name)
	if i < 0 {
		return -1, errors.NotFoundf("player has no class %q", name).WithMeta("class", name)
	}
	return i, nil
}

func checkIndex(kind string, index, length int) error {
	if index < 0 || index >= length {
		return errors.OutOfRangef("%s index %d out of range [0, %d)", kind, index, length).
			WithMeta("index", index).
			WithMeta("length", length)
	}
	return nil
}
