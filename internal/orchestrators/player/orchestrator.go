// Package player implements the player sheet orchestrator: player documents,
// edit sessions and the editors that mutate a session's scratch document.
package player

import (
	"context"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/catalog"
	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	"github.com/KirkDiggler/fabula-api/internal/pkg/idgen"
	editsessionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/schema"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo   playerrepo.Repository
	SessionRepo  editsessionrepo.Repository
	RevisionRepo revisionrepo.Repository
	Engine       engine.Engine
	Catalog      catalog.Catalog
	Translator   *i18n.Translator
	Schema       *schema.Validator
	PlayerIDGen  idgen.Generator
	SessionIDGen idgen.Generator
	// SessionTTL is how long an idle session lives; zero uses the repository default
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.RevisionRepo == nil {
		vb.RequiredField("RevisionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Translator == nil {
		vb.RequiredField("Translator")
	}
	if c.Schema == nil {
		vb.RequiredField("Schema")
	}
	if c.PlayerIDGen == nil {
		vb.RequiredField("PlayerIDGen")
	}
	if c.SessionIDGen == nil {
		vb.RequiredField("SessionIDGen")
	}
	return vb.Build()
}

// Orchestrator implements the player.Service interface
type Orchestrator struct {
	playerRepo   playerrepo.Repository
	sessionRepo  editsessionrepo.Repository
	revisionRepo revisionrepo.Repository
	engine       engine.Engine
	catalog      catalog.Catalog
	translator   *i18n.Translator
	schema       *schema.Validator
	playerIDGen  idgen.Generator
	sessionIDGen idgen.Generator
	sessionTTL   time.Duration
}

// New creates a new player orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		playerRepo:   cfg.PlayerRepo,
		sessionRepo:  cfg.SessionRepo,
		revisionRepo: cfg.RevisionRepo,
		engine:       cfg.Engine,
		catalog:      cfg.Catalog,
		translator:   cfg.Translator,
		schema:       cfg.Schema,
		playerIDGen:  cfg.PlayerIDGen,
		sessionIDGen: cfg.SessionIDGen,
		sessionTTL:   cfg.SessionTTL,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ player.Service = (*Orchestrator)(nil)

// change describes what a mutator did to the scratch document
type change struct {
	// recalc asks for derived stats to be recomputed
	recalc bool
	// noop means nothing changed; the session stays as it was
	noop    bool
	notices []string
}

// loadSession fetches a session and checks it belongs to the caller.
func (o *Orchestrator) loadSession(ctx context.Context, sessionID, userID string) (*entities.EditSession, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if userID == "" {
		return nil, errors.Unauthenticated("a user is required to use a session")
	}

	out, err := o.sessionRepo.Get(ctx, editsessionrepo.GetInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session")
	}

	if out.Session.UserID != userID {
		return nil, errors.PermissionDenied("session belongs to another user").
			WithMeta("session_id", sessionID)
	}
	return out.Session, nil
}

// mutate applies fn to the scratch document of an owned session, recomputes
// derived stats when asked, marks the session dirty and stores it.
func (o *Orchestrator) mutate(
	ctx context.Context,
	sessionID, userID string,
	fn func(s *entities.EditSession) (*change, error),
) (*player.SessionOutput, error) {
	session, err := o.loadSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if !session.IsOwner {
		return nil, errors.PermissionDenied("only the owner can edit this player").
			WithMeta("session_id", session.ID).
			WithMeta("player_id", session.PlayerID)
	}

	c, err := fn(session)
	if err != nil {
		return nil, err
	}

	if c.noop {
		return o.sessionOutput(ctx, session, c.notices)
	}

	if c.recalc {
		if err := o.recalculate(ctx, session.Scratch); err != nil {
			return nil, err
		}
	}
	session.Dirty = true

	updated, err := o.sessionRepo.Update(ctx, editsessionrepo.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}

	return o.sessionOutput(ctx, updated.Session, c.notices)
}

// touch stores view-only session changes (tab, selection) without marking it dirty.
func (o *Orchestrator) touch(ctx context.Context, session *entities.EditSession) (*entities.EditSession, error) {
	updated, err := o.sessionRepo.Update(ctx, editsessionrepo.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update session")
	}
	return updated.Session, nil
}

func (o *Orchestrator) recalculate(ctx context.Context, p *entities.Player) error {
	out, err := o.engine.RecalculateStats(ctx, &engine.RecalculateStatsInput{Player: p})
	if err != nil {
		return errors.Wrapf(err, "failed to recalculate stats")
	}
	p.Stats = out.Stats
	return nil
}

// sessionOutput attaches the localized roster warnings to a session.
func (o *Orchestrator) sessionOutput(
	ctx context.Context,
	session *entities.EditSession,
	notices []string,
) (*player.SessionOutput, error) {
	roster, err := o.engine.CheckClassRoster(ctx, &engine.CheckClassRosterInput{Player: session.Scratch})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check class roster")
	}

	warnings := make([]player.Warning, 0, len(roster.Warnings))
	for _, w := range roster.Warnings {
		warnings = append(warnings, player.Warning{
			Code:    w,
			Message: o.translator.Sprintf(session.Language, warningKeys[w]),
		})
	}

	if notices == nil {
		notices = []string{}
	}

	return &player.SessionOutput{
		Session:  session,
		State:    session.State(),
		Warnings: warnings,
		Notices:  notices,
	}, nil
}

var warningKeys = map[engine.RosterWarning]i18n.Key{
	engine.RosterWarningMinClasses: i18n.WarningMinClasses,
	engine.RosterWarningClassLimit: i18n.WarningClassLimit,
	engine.RosterWarningLevelSum:   i18n.WarningLevelSum,
}

// ownerOf reports whether userID owns p. Anonymous callers own nothing.
func ownerOf(p *entities.Player, userID string) bool {
	return userID != "" && p.UID == userID
}
