package player

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// New characters start at level 5 with every attribute at d8
const (
	startingLevel    = 5
	startingDie      = 8
	maxPlayerNameLen = 100
)

// CreatePlayer creates a new character owned by the caller with derived
// stats filled to their maximum.
func (o *Orchestrator) CreatePlayer(ctx context.Context, input *player.CreatePlayerInput) (*player.CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("a user is required to create a player")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, maxPlayerNameLen, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p := &entities.Player{
		ID:         o.playerIDGen.Generate(),
		UID:        input.UserID,
		Name:       name,
		Lvl:        startingLevel,
		Bonds:      []entities.Bond{},
		Notes:      []entities.Note{},
		Attributes: make(map[entities.Attribute]int, len(entities.AllAttributes)),
		Classes:    []entities.PlayerClass{},
		Equipment: entities.Equipment{
			Weapons:     []entities.Weapon{},
			Armor:       []entities.Armor{},
			Shields:     []entities.Armor{},
			Accessories: []entities.Accessory{},
		},
	}
	for _, attr := range entities.AllAttributes {
		p.Attributes[attr] = startingDie
	}

	if err := o.recalculate(ctx, p); err != nil {
		return nil, err
	}
	p.Stats.HP.Current = p.Stats.HP.Max
	p.Stats.MP.Current = p.Stats.MP.Max
	p.Stats.IP.Current = p.Stats.IP.Max

	created, err := o.playerRepo.Create(ctx, playerrepo.CreateInput{Player: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	slog.InfoContext(ctx, "player created",
		"player_id", created.Player.ID,
		"user_id", input.UserID)

	return &player.CreatePlayerOutput{Player: created.Player}, nil
}

// GetPlayer returns a stored player document
func (o *Orchestrator) GetPlayer(ctx context.Context, input *player.GetPlayerInput) (*player.GetPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	return &player.GetPlayerOutput{Player: out.Player}, nil
}

// ListPlayers returns every player owned by the caller
func (o *Orchestrator) ListPlayers(ctx context.Context, input *player.ListPlayersInput) (*player.ListPlayersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.Unauthenticated("a user is required to list players")
	}

	out, err := o.playerRepo.ListByOwner(ctx, playerrepo.ListByOwnerInput{OwnerID: input.UserID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}
	return &player.ListPlayersOutput{Players: out.Players}, nil
}

// DeletePlayer removes a player. Only its owner may delete it.
func (o *Orchestrator) DeletePlayer(ctx context.Context, input *player.DeletePlayerInput) (*player.DeletePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.ownedPlayer(ctx, input.PlayerID, input.UserID); err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Delete(ctx, playerrepo.DeleteInput{ID: input.PlayerID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}

	slog.InfoContext(ctx, "player deleted",
		"player_id", input.PlayerID,
		"user_id", input.UserID)

	return &player.DeletePlayerOutput{}, nil
}

// WatchPlayer streams the latest document of a player. The first event is
// the current document, or a nil Player when there is none.
func (o *Orchestrator) WatchPlayer(ctx context.Context, input *player.WatchPlayerInput) (<-chan *player.PlayerEvent, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	events, err := o.playerRepo.Watch(ctx, playerrepo.WatchInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to watch player")
	}

	out := make(chan *player.PlayerEvent)
	go func() {
		defer close(out)
		for event := range events {
			select {
			case out <- &player.PlayerEvent{PlayerID: event.PlayerID, Player: event.Player}:
			case <-ctx.Done():
				// drain so the repository goroutine can exit
				for range events {
				}
				return
			}
		}
	}()
	return out, nil
}

// ListRevisions returns the save history of an owned player, newest first
func (o *Orchestrator) ListRevisions(ctx context.Context, input *player.ListRevisionsInput) (*player.ListRevisionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.ownedPlayer(ctx, input.PlayerID, input.UserID); err != nil {
		return nil, err
	}

	out, err := o.revisionRepo.List(ctx, revisionrepo.ListInput{PlayerID: input.PlayerID, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list revisions")
	}
	return &player.ListRevisionsOutput{Revisions: out.Revisions}, nil
}

// GetRevision returns one saved revision of an owned player
func (o *Orchestrator) GetRevision(ctx context.Context, input *player.GetRevisionInput) (*player.GetRevisionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := o.ownedPlayer(ctx, input.PlayerID, input.UserID); err != nil {
		return nil, err
	}

	out, err := o.revisionRepo.Get(ctx, revisionrepo.GetInput{PlayerID: input.PlayerID, Revision: input.Revision})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get revision")
	}
	return &player.GetRevisionOutput{Revision: out.Revision}, nil
}

// ListClasses returns the class catalog, optionally filtered by book
func (o *Orchestrator) ListClasses(_ context.Context, input *player.ListClassesInput) (*player.ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	classes := o.catalog.ListClasses(input.Book)
	if input.Book != "" && len(classes) == 0 {
		return nil, errors.NotFoundf("unknown book %q", input.Book).WithMeta("book", input.Book)
	}

	return &player.ListClassesOutput{
		Classes: classes,
		Books:   o.catalog.Books(),
	}, nil
}

func (o *Orchestrator) ownedPlayer(ctx context.Context, playerID, userID string) (*entities.Player, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: playerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	if !ownerOf(out.Player, userID) {
		return nil, errors.PermissionDenied("only the owner can do this").
			WithMeta("player_id", playerID)
	}
	return out.Player, nil
}
