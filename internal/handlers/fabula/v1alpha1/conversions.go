package v1alpha1

import (
	"encoding/json"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

func marshalRaw(v any) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return data, nil
}

// decodeRaw leaves v untouched when raw is empty
func decodeRaw(field string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.InvalidArgumentf("%s is malformed: %v", field, err).WithMeta("field", field)
	}
	return nil
}

func playerResponse(p *entities.Player) (*fabulav1alpha1.PlayerResponse, error) {
	data, err := marshalRaw(p)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.PlayerResponse{Player: data}, nil
}

func toPlayerDocuments(players []*entities.Player) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(players))
	for _, p := range players {
		data, err := marshalRaw(p)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

func toPlayerEvent(event *player.PlayerEvent) (*fabulav1alpha1.PlayerEvent, error) {
	msg := &fabulav1alpha1.PlayerEvent{
		PlayerID: event.PlayerID,
		Deleted:  event.Player == nil,
	}
	if event.Player != nil {
		data, err := marshalRaw(event.Player)
		if err != nil {
			return nil, err
		}
		msg.Player = data
	}
	return msg, nil
}

func toRevision(r *entities.Revision) (*fabulav1alpha1.Revision, error) {
	rev := &fabulav1alpha1.Revision{
		PlayerID: r.PlayerID,
		Revision: r.Revision,
		SavedBy:  r.SavedBy,
		SavedAt:  r.SavedAt,
	}
	if r.Player != nil {
		data, err := marshalRaw(r.Player)
		if err != nil {
			return nil, err
		}
		rev.Player = data
	}
	return rev, nil
}

func toSession(out *player.SessionOutput) (*fabulav1alpha1.Session, error) {
	s := out.Session
	data, err := marshalRaw(s.Scratch)
	if err != nil {
		return nil, err
	}

	warnings := make([]fabulav1alpha1.Warning, 0, len(out.Warnings))
	for _, w := range out.Warnings {
		warnings = append(warnings, fabulav1alpha1.Warning{Code: string(w.Code), Message: w.Message})
	}

	notices := out.Notices
	if notices == nil {
		notices = []string{}
	}

	return &fabulav1alpha1.Session{
		ID:            s.ID,
		PlayerID:      s.PlayerID,
		Language:      s.Language,
		IsOwner:       s.IsOwner,
		Dirty:         s.Dirty,
		State:         string(out.State),
		ActiveTab:     string(s.ActiveTab),
		SelectedClass: s.Selection.ClassName,
		Player:        data,
		Warnings:      warnings,
		Notices:       notices,
		ExpiresAt:     s.ExpiresAt,
	}, nil
}

// sessionResponse converts a service result, mapping errors to gRPC status
func sessionResponse(out *player.SessionOutput, err error) (*fabulav1alpha1.SessionResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	session, err := toSession(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.SessionResponse{Session: session}, nil
}
