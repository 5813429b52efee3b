package player

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	editsessionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// OpenSession starts viewing a player. The caller's language preference is
// resolved once here and kept on the session.
func (o *Orchestrator) OpenSession(ctx context.Context, input *player.OpenSessionInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.UserID == "" {
		return nil, errors.Unauthenticated("a user is required to open a session")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	p := getOutput.Player

	session := &entities.EditSession{
		ID:        o.sessionIDGen.Generate(),
		PlayerID:  p.ID,
		UserID:    input.UserID,
		Language:  o.translator.Resolve(input.Language),
		IsOwner:   ownerOf(p, input.UserID),
		Scratch:   p.Clone(),
		ActiveTab: entities.TabSheet,
	}

	created, err := o.sessionRepo.Create(ctx, editsessionrepo.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create session")
	}

	slog.InfoContext(ctx, "edit session opened",
		"session_id", created.Session.ID,
		"player_id", p.ID,
		"user_id", input.UserID,
		"is_owner", created.Session.IsOwner,
		"language", created.Session.Language)

	return o.sessionOutput(ctx, created.Session, nil)
}

// GetSession returns a session with its current warnings
func (o *Orchestrator) GetSession(ctx context.Context, input *player.GetSessionInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}
	return o.sessionOutput(ctx, session, nil)
}

// CloseSession ends a session. Unsaved changes block the close unless forced;
// nothing is ever saved implicitly.
func (o *Orchestrator) CloseSession(ctx context.Context, input *player.CloseSessionInput) (*player.CloseSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if session.Dirty && !input.Force {
		return nil, errors.FailedPrecondition(o.translator.Sprintf(session.Language, i18n.ConfirmUnsavedChanges)).
			WithMeta("session_id", session.ID).
			WithMeta("reason", "unsaved_changes")
	}

	if _, err := o.sessionRepo.Delete(ctx, editsessionrepo.DeleteInput{ID: session.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	if session.Dirty {
		slog.InfoContext(ctx, "edit session closed with unsaved changes discarded",
			"session_id", session.ID,
			"player_id", session.PlayerID)
	}

	return &player.CloseSessionOutput{}, nil
}

// SelectTab switches the active tab. It does not change the session state.
func (o *Orchestrator) SelectTab(ctx context.Context, input *player.SelectTabInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !slices.Contains(entities.AllTabs, input.Tab) {
		return nil, errors.InvalidArgumentf("unknown tab %q", input.Tab).WithMeta("tab", string(input.Tab))
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	session.ActiveTab = input.Tab
	session, err = o.touch(ctx, session)
	if err != nil {
		return nil, err
	}
	return o.sessionOutput(ctx, session, nil)
}

// SaveSession persists the scratch document wholesale and records a revision
func (o *Orchestrator) SaveSession(ctx context.Context, input *player.SaveSessionInput) (*player.SaveSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !session.IsOwner {
		return nil, errors.PermissionDenied("only the owner can save this player").
			WithMeta("session_id", session.ID).
			WithMeta("player_id", session.PlayerID)
	}

	saved, err := o.playerRepo.Save(ctx, playerrepo.SaveInput{Player: session.Scratch})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	recorded, err := o.revisionRepo.Record(ctx, revisionrepo.RecordInput{
		Player:  saved.Player,
		SavedBy: input.UserID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record revision")
	}

	session.Scratch = saved.Player.Clone()
	session.Dirty = false

	updated, err := o.sessionRepo.Update(ctx, editsessionrepo.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	slog.InfoContext(ctx, "player saved",
		"session_id", session.ID,
		"player_id", session.PlayerID,
		"revision", recorded.Revision.Revision)

	out, err := o.sessionOutput(ctx, updated.Session, nil)
	if err != nil {
		return nil, err
	}
	return &player.SaveSessionOutput{
		SessionOutput: *out,
		Revision:      recorded.Revision,
	}, nil
}

// DiscardChanges reloads the persisted document into the session
func (o *Orchestrator) DiscardChanges(ctx context.Context, input *player.DiscardChangesInput) (*player.SessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	getOutput, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: session.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}

	session.Scratch = getOutput.Player.Clone()
	session.Dirty = false
	session.Selection = entities.SpellSelection{}

	session, err = o.touch(ctx, session)
	if err != nil {
		return nil, err
	}
	return o.sessionOutput(ctx, session, nil)
}

// ResetFromUpstream replaces the scratch document of every open session of a
// player with the latest remote document. Unsaved changes are dropped: the
// last remote write wins. Sessions of a deleted player are closed.
func (o *Orchestrator) ResetFromUpstream(ctx context.Context, input *player.ResetFromUpstreamInput) (*player.ResetFromUpstreamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	listOutput, err := o.sessionRepo.ListByPlayerID(ctx, editsessionrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list sessions")
	}

	output := &player.ResetFromUpstreamOutput{}
	var firstErr error
	for _, session := range listOutput.Sessions {
		if input.Player == nil {
			_, err := o.sessionRepo.Delete(ctx, editsessionrepo.DeleteInput{ID: session.ID})
			switch {
			case err == nil:
				output.SessionsClosed++
			case errors.IsNotFound(err):
			default:
				slog.ErrorContext(ctx, "failed to close session of deleted player",
					"session_id", session.ID,
					"player_id", input.PlayerID,
					"error", err.Error())
				if firstErr == nil {
					firstErr = err
				}
			}
			continue
		}

		if session.Dirty {
			slog.WarnContext(ctx, "upstream change replaces unsaved edits",
				"session_id", session.ID,
				"player_id", input.PlayerID)
		}

		session.Scratch = input.Player.Clone()
		session.IsOwner = ownerOf(input.Player, session.UserID)
		session.Dirty = false
		session.Selection = entities.SpellSelection{}

		_, err := o.sessionRepo.Update(ctx, editsessionrepo.UpdateInput{Session: session})
		switch {
		case err == nil:
			output.SessionsReset++
		case errors.IsNotFound(err):
			// expired between list and update
		default:
			slog.ErrorContext(ctx, "failed to reset session",
				"session_id", session.ID,
				"player_id", input.PlayerID,
				"error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		return nil, errors.Wrapf(firstErr, "failed to reset sessions of player %s", input.PlayerID)
	}
	return output, nil
}
