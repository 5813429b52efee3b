package player

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/export"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// AddWeapon appends a weapon after checking it against the weapon schema
func (o *Orchestrator) AddWeapon(ctx context.Context, input *player.AddWeaponInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	data, err := json.Marshal(input.Weapon)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal weapon")
	}
	return o.importWeapon(ctx, input.SessionID, input.UserID, data)
}

// ImportWeapon appends a weapon from its exported JSON form
func (o *Orchestrator) ImportWeapon(ctx context.Context, input *player.ImportWeaponInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("weapon data is required")
	}
	return o.importWeapon(ctx, input.SessionID, input.UserID, input.Data)
}

func (o *Orchestrator) importWeapon(ctx context.Context, sessionID, userID string, data []byte) (*player.SessionOutput, error) {
	weapon, err := o.schema.DecodeWeapon(data)
	if err != nil {
		return nil, err
	}

	return o.mutate(ctx, sessionID, userID, func(s *entities.EditSession) (*change, error) {
		s.Scratch.Equipment.Weapons = append(s.Scratch.Equipment.Weapons, *weapon)
		return &change{}, nil
	})
}

// RemoveWeapon removes the weapon at Index
func (o *Orchestrator) RemoveWeapon(ctx context.Context, input *player.RemoveWeaponInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.SessionID, input.UserID, func(s *entities.EditSession) (*change, error) {
		weapons := s.Scratch.Equipment.Weapons
		if err := checkIndex("weapon", input.Index, len(weapons)); err != nil {
			return nil, err
		}
		s.Scratch.Equipment.Weapons = slices.Delete(weapons, input.Index, input.Index+1)
		return &change{}, nil
	})
}

// ExportWeapon returns the weapon at Index as a JSON download
func (o *Orchestrator) ExportWeapon(ctx context.Context, input *player.ExportWeaponInput) (*player.ExportOutput, error) {
	weapon, err := o.sessionWeapon(ctx, input)
	if err != nil {
		return nil, err
	}

	file, err := export.WeaponJSON(*weapon)
	if err != nil {
		return nil, err
	}
	return &player.ExportOutput{File: file}, nil
}

// RenderWeaponCard returns the weapon at Index drawn as a PNG card
func (o *Orchestrator) RenderWeaponCard(ctx context.Context, input *player.ExportWeaponInput) (*player.ExportOutput, error) {
	weapon, err := o.sessionWeapon(ctx, input)
	if err != nil {
		return nil, err
	}

	file, err := export.WeaponCardPNG(*weapon)
	if err != nil {
		return nil, err
	}
	return &player.ExportOutput{File: file}, nil
}

func (o *Orchestrator) sessionWeapon(ctx context.Context, input *player.ExportWeaponInput) (*entities.Weapon, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	weapons := session.Scratch.Equipment.Weapons
	if err := checkIndex("weapon", input.Index, len(weapons)); err != nil {
		return nil, err
	}
	weapon := weapons[input.Index]
	return &weapon, nil
}
