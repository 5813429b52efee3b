package player

import (
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

const maxPlayerLevel = 60

// UpdateBasics replaces name, level and the informations tab
func (o *Orchestrator) UpdateBasics(ctx context.Context, input *player.UpdateBasicsInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, maxPlayerNameLen, vb)
	errors.ValidateRange("lvl", input.Lvl, 1, maxPlayerLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		levelChanged := s.Scratch.Lvl != input.Lvl
		s.Scratch.Name = name
		s.Scratch.Lvl = input.Lvl
		s.Scratch.Info = input.Info
		return &change{recalc: levelChanged}, nil
	})
}

// UpdateAttributes replaces the attribute dice and recomputes derived stats
func (o *Orchestrator) UpdateAttributes(ctx context.Context, input *player.UpdateAttributesInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for _, attr := range entities.AllAttributes {
		die, ok := input.Attributes[attr]
		if !ok {
			vb.RequiredField(string(attr))
			continue
		}
		if !slices.Contains(entities.ValidDieSizes, die) {
			vb.Fieldf(string(attr), "must be one of d6, d8, d10, d12, got %d", die)
		}
	}
	for attr := range input.Attributes {
		if !attr.Valid() {
			vb.Field(string(attr), "unknown attribute")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		attributes := make(map[entities.Attribute]int, len(input.Attributes))
		for attr, die := range input.Attributes {
			attributes[attr] = die
		}
		s.Scratch.Attributes = attributes
		return &change{recalc: true}, nil
	})
}

// UpdateModifiers replaces the manual modifiers and recomputes derived stats
func (o *Orchestrator) UpdateModifiers(ctx context.Context, input *player.UpdateModifiersInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		s.Scratch.Modifiers = input.Modifiers
		return &change{recalc: true}, nil
	})
}

// UpdateCurrentStats sets current HP, MP and IP, clamped to [0, max]
func (o *Orchestrator) UpdateCurrentStats(ctx context.Context, input *player.UpdateCurrentStatsInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		stats := &s.Scratch.Stats
		stats.HP.Current = clamp(input.HP, 0, stats.HP.Max)
		stats.MP.Current = clamp(input.MP, 0, stats.MP.Max)
		stats.IP.Current = clamp(input.IP, 0, stats.IP.Max)
		return &change{}, nil
	})
}

// UpdateStatuses replaces the status effects
func (o *Orchestrator) UpdateStatuses(ctx context.Context, input *player.UpdateStatusesInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		s.Scratch.Statuses = input.Statuses
		return &change{}, nil
	})
}

// UpdateDetails replaces traits, bonds and notes
func (o *Orchestrator) UpdateDetails(ctx context.Context, input *player.UpdateDetailsInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		s.Scratch.Traits = input.Traits
		s.Scratch.Bonds = append([]entities.Bond{}, input.Bonds...)
		s.Scratch.Notes = append([]entities.Note{}, input.Notes...)
		return &change{}, nil
	})
}

// clamp bounds v to [lo, hi]; hi wins when hi < lo
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
