package v1alpha1

import (
	"context"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// UpdateBasics replaces name, level and the informations tab
func (h *Handler) UpdateBasics(
	ctx context.Context,
	req *fabulav1alpha1.UpdateBasicsRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	var info entities.Info
	if err := decodeRaw("info", req.Info, &info); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.UpdateBasics(ctx, &player.UpdateBasicsInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Name:      req.Name,
		Lvl:       req.Lvl,
		Info:      info,
	}))
}

// UpdateAttributes replaces the attribute dice
func (h *Handler) UpdateAttributes(
	ctx context.Context,
	req *fabulav1alpha1.UpdateAttributesRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	attributes := make(map[entities.Attribute]int, len(req.Attributes))
	for name, die := range req.Attributes {
		attributes[entities.Attribute(name)] = die
	}

	return sessionResponse(h.playerService.UpdateAttributes(ctx, &player.UpdateAttributesInput{
		SessionID:  req.SessionID,
		UserID:     callerFrom(ctx).userID,
		Attributes: attributes,
	}))
}

// UpdateModifiers replaces the manual modifiers
func (h *Handler) UpdateModifiers(
	ctx context.Context,
	req *fabulav1alpha1.UpdateModifiersRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	var modifiers entities.Modifiers
	if err := decodeRaw("modifiers", req.Modifiers, &modifiers); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.UpdateModifiers(ctx, &player.UpdateModifiersInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Modifiers: modifiers,
	}))
}

// UpdateCurrentStats sets current HP, MP and IP
func (h *Handler) UpdateCurrentStats(
	ctx context.Context,
	req *fabulav1alpha1.UpdateCurrentStatsRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.UpdateCurrentStats(ctx, &player.UpdateCurrentStatsInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		HP:        req.HP,
		MP:        req.MP,
		IP:        req.IP,
	}))
}

// UpdateStatuses replaces the status effects
func (h *Handler) UpdateStatuses(
	ctx context.Context,
	req *fabulav1alpha1.UpdateStatusesRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	var statuses entities.Statuses
	if err := decodeRaw("statuses", req.Statuses, &statuses); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.UpdateStatuses(ctx, &player.UpdateStatusesInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Statuses:  statuses,
	}))
}

// UpdateDetails replaces traits, bonds and notes
func (h *Handler) UpdateDetails(
	ctx context.Context,
	req *fabulav1alpha1.UpdateDetailsRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	input := &player.UpdateDetailsInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
	}
	if err := decodeRaw("traits", req.Traits, &input.Traits); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := decodeRaw("bonds", req.Bonds, &input.Bonds); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := decodeRaw("notes", req.Notes, &input.Notes); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.UpdateDetails(ctx, input))
}

// AddClass adds a catalog class at level 1
func (h *Handler) AddClass(
	ctx context.Context,
	req *fabulav1alpha1.ClassRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.AddClass(ctx, &player.AddClassInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		ClassName: req.ClassName,
	}))
}

// RemoveClass removes the class at Index
func (h *Handler) RemoveClass(
	ctx context.Context,
	req *fabulav1alpha1.IndexRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.RemoveClass(ctx, &player.RemoveClassInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Index:     req.Index,
	}))
}

// SetClassLevel sets the level of the class at Index
func (h *Handler) SetClassLevel(
	ctx context.Context,
	req *fabulav1alpha1.SetClassLevelRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.SetClassLevel(ctx, &player.SetClassLevelInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Index:     req.Index,
		Lvl:       req.Lvl,
	}))
}

// AddSkill appends a skill to a class
func (h *Handler) AddSkill(
	ctx context.Context,
	req *fabulav1alpha1.AddSkillRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.AddSkill(ctx, &player.AddSkillInput{
		SessionID:   req.SessionID,
		UserID:      callerFrom(ctx).userID,
		ClassName:   req.ClassName,
		SkillName:   req.SkillName,
		MaxLvl:      req.MaxLvl,
		Description: req.Description,
	}))
}

// SelectSpellClass picks the class whose spells are edited
func (h *Handler) SelectSpellClass(
	ctx context.Context,
	req *fabulav1alpha1.ClassRequest,
) (*fabulav1alpha1.SelectSpellClassResponse, error) {
	out, err := h.playerService.SelectSpellClass(ctx, &player.SelectSpellClassInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		ClassName: req.ClassName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	session, err := toSession(&out.SessionOutput)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	spellTypes := make([]string, 0, len(out.SpellTypes))
	for _, t := range out.SpellTypes {
		spellTypes = append(spellTypes, string(t))
	}
	return &fabulav1alpha1.SelectSpellClassResponse{
		Session:    session,
		SpellTypes: spellTypes,
	}, nil
}

// AddSpell adds a spell to a class
func (h *Handler) AddSpell(
	ctx context.Context,
	req *fabulav1alpha1.AddSpellRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.AddSpell(ctx, &player.AddSpellInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		ClassName: req.ClassName,
		SpellType: entities.SpellType(req.SpellType),
	}))
}

// EditSpell replaces the spell at Index
func (h *Handler) EditSpell(
	ctx context.Context,
	req *fabulav1alpha1.EditSpellRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	if len(req.Spell) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("spell is required"))
	}

	var spell entities.Spell
	if err := decodeRaw("spell", req.Spell, &spell); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.EditSpell(ctx, &player.EditSpellInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		ClassName: req.ClassName,
		Index:     req.Index,
		Spell:     spell,
	}))
}

// DeleteSpell removes the spell at Index
func (h *Handler) DeleteSpell(
	ctx context.Context,
	req *fabulav1alpha1.DeleteSpellRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.DeleteSpell(ctx, &player.DeleteSpellInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		ClassName: req.ClassName,
		Index:     req.Index,
	}))
}

// AddWeapon appends a weapon
func (h *Handler) AddWeapon(
	ctx context.Context,
	req *fabulav1alpha1.WeaponRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	if len(req.Weapon) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon is required"))
	}

	var weapon entities.Weapon
	if err := decodeRaw("weapon", req.Weapon, &weapon); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return sessionResponse(h.playerService.AddWeapon(ctx, &player.AddWeaponInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Weapon:    weapon,
	}))
}

// ImportWeapon appends a weapon from an exported file
func (h *Handler) ImportWeapon(
	ctx context.Context,
	req *fabulav1alpha1.WeaponRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.ImportWeapon(ctx, &player.ImportWeaponInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Data:      req.Weapon,
	}))
}

// RemoveWeapon removes the weapon at Index
func (h *Handler) RemoveWeapon(
	ctx context.Context,
	req *fabulav1alpha1.IndexRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.RemoveWeapon(ctx, &player.RemoveWeaponInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Index:     req.Index,
	}))
}

// ExportWeapon returns the weapon at Index as JSON or as a PNG card
func (h *Handler) ExportWeapon(
	ctx context.Context,
	req *fabulav1alpha1.ExportWeaponRequest,
) (*fabulav1alpha1.FileResponse, error) {
	input := &player.ExportWeaponInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Index:     req.Index,
	}

	var (
		out *player.ExportOutput
		err error
	)
	switch req.Format {
	case "", fabulav1alpha1.ExportFormatJSON:
		out, err = h.playerService.ExportWeapon(ctx, input)
	case fabulav1alpha1.ExportFormatPNG:
		out, err = h.playerService.RenderWeaponCard(ctx, input)
	default:
		err = errors.InvalidArgumentf("unknown export format %q", req.Format).WithMeta("format", req.Format)
	}
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &fabulav1alpha1.FileResponse{
		FileName:    out.File.FileName,
		ContentType: out.File.ContentType,
		Data:        out.File.Data,
	}, nil
}

// RollCheck rolls the dice of two attributes
func (h *Handler) RollCheck(
	ctx context.Context,
	req *fabulav1alpha1.RollCheckRequest,
) (*fabulav1alpha1.RollCheckResponse, error) {
	out, err := h.playerService.RollCheck(ctx, &player.RollCheckInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Attr1:     entities.Attribute(req.Attr1),
		Attr2:     entities.Attribute(req.Attr2),
		Bonus:     req.Bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &fabulav1alpha1.RollCheckResponse{
		Attr1:    string(out.Attr1),
		Attr2:    string(out.Attr2),
		Result1:  out.Result.Result1,
		Result2:  out.Result.Result2,
		Bonus:    out.Result.Bonus,
		Total:    out.Result.Total,
		HighRoll: out.Result.HighRoll,
		Critical: out.Result.Critical,
		Fumble:   out.Result.Fumble,
	}, nil
}
