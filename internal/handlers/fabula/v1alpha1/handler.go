// Package v1alpha1 handles the fabula.v1alpha1 PlayerService gRPC interface
package v1alpha1

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// HandlerConfig holds dependencies for the player handler
type HandlerConfig struct {
	PlayerService player.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.PlayerService == nil {
		return errors.InvalidArgument("player service is required")
	}
	return nil
}

// Handler implements the PlayerService gRPC server
type Handler struct {
	playerService player.Service
}

// NewHandler creates a new player handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		playerService: cfg.PlayerService,
	}, nil
}

var _ fabulav1alpha1.PlayerServiceServer = (*Handler)(nil)

// caller reads the opaque user id and language preference from metadata
type caller struct {
	userID   string
	language string
}

func callerFrom(ctx context.Context) caller {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return caller{}
	}
	return caller{
		userID:   firstValue(md, fabulav1alpha1.MetadataUserID),
		language: strings.Join(md.Get(fabulav1alpha1.MetadataLanguage), ","),
	}
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// CreatePlayer creates a player owned by the caller
func (h *Handler) CreatePlayer(
	ctx context.Context,
	req *fabulav1alpha1.CreatePlayerRequest,
) (*fabulav1alpha1.PlayerResponse, error) {
	out, err := h.playerService.CreatePlayer(ctx, &player.CreatePlayerInput{
		UserID: callerFrom(ctx).userID,
		Name:   req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return playerResponse(out.Player)
}

// GetPlayer returns a stored player document
func (h *Handler) GetPlayer(
	ctx context.Context,
	req *fabulav1alpha1.GetPlayerRequest,
) (*fabulav1alpha1.PlayerResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("playerId is required"))
	}

	out, err := h.playerService.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return playerResponse(out.Player)
}

// ListPlayers returns the caller's players
func (h *Handler) ListPlayers(
	ctx context.Context,
	_ *fabulav1alpha1.ListPlayersRequest,
) (*fabulav1alpha1.ListPlayersResponse, error) {
	out, err := h.playerService.ListPlayers(ctx, &player.ListPlayersInput{UserID: callerFrom(ctx).userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	players, err := toPlayerDocuments(out.Players)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.ListPlayersResponse{Players: players}, nil
}

// DeletePlayer deletes an owned player
func (h *Handler) DeletePlayer(
	ctx context.Context,
	req *fabulav1alpha1.DeletePlayerRequest,
) (*fabulav1alpha1.Empty, error) {
	_, err := h.playerService.DeletePlayer(ctx, &player.DeletePlayerInput{
		PlayerID: req.PlayerID,
		UserID:   callerFrom(ctx).userID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.Empty{}, nil
}

// WatchPlayer streams a player's document until the client goes away
func (h *Handler) WatchPlayer(
	req *fabulav1alpha1.WatchPlayerRequest,
	stream fabulav1alpha1.PlayerService_WatchPlayerServer,
) error {
	ctx := stream.Context()
	events, err := h.playerService.WatchPlayer(ctx, &player.WatchPlayerInput{PlayerID: req.PlayerID})
	if err != nil {
		return errors.ToGRPCError(err)
	}

	for event := range events {
		msg, err := toPlayerEvent(event)
		if err != nil {
			return errors.ToGRPCError(err)
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

// ListRevisions lists the save history of an owned player
func (h *Handler) ListRevisions(
	ctx context.Context,
	req *fabulav1alpha1.ListRevisionsRequest,
) (*fabulav1alpha1.ListRevisionsResponse, error) {
	out, err := h.playerService.ListRevisions(ctx, &player.ListRevisionsInput{
		PlayerID: req.PlayerID,
		UserID:   callerFrom(ctx).userID,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	revisions := make([]*fabulav1alpha1.Revision, 0, len(out.Revisions))
	for _, r := range out.Revisions {
		rev, err := toRevision(r)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		revisions = append(revisions, rev)
	}
	return &fabulav1alpha1.ListRevisionsResponse{Revisions: revisions}, nil
}

// GetRevision returns one saved revision with its snapshot
func (h *Handler) GetRevision(
	ctx context.Context,
	req *fabulav1alpha1.GetRevisionRequest,
) (*fabulav1alpha1.RevisionResponse, error) {
	out, err := h.playerService.GetRevision(ctx, &player.GetRevisionInput{
		PlayerID: req.PlayerID,
		UserID:   callerFrom(ctx).userID,
		Revision: req.Revision,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rev, err := toRevision(out.Revision)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.RevisionResponse{Revision: rev}, nil
}

// ListClasses lists catalog classes
func (h *Handler) ListClasses(
	ctx context.Context,
	req *fabulav1alpha1.ListClassesRequest,
) (*fabulav1alpha1.ListClassesResponse, error) {
	out, err := h.playerService.ListClasses(ctx, &player.ListClassesInput{Book: req.Book})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	classes := make([]*fabulav1alpha1.ClassDefinition, 0, len(out.Classes))
	for _, def := range out.Classes {
		benefits, err := marshalRaw(def.Benefits)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		classes = append(classes, &fabulav1alpha1.ClassDefinition{
			Name:     def.Name,
			Book:     def.Book,
			Benefits: benefits,
		})
	}
	return &fabulav1alpha1.ListClassesResponse{Classes: classes, Books: out.Books}, nil
}

// OpenSession starts viewing a player in the caller's language
func (h *Handler) OpenSession(
	ctx context.Context,
	req *fabulav1alpha1.OpenSessionRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	c := callerFrom(ctx)
	return sessionResponse(h.playerService.OpenSession(ctx, &player.OpenSessionInput{
		PlayerID: req.PlayerID,
		UserID:   c.userID,
		Language: c.language,
	}))
}

// GetSession returns a session with its warnings
func (h *Handler) GetSession(
	ctx context.Context,
	req *fabulav1alpha1.SessionRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.GetSession(ctx, &player.GetSessionInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
	}))
}

// CloseSession ends a session
func (h *Handler) CloseSession(
	ctx context.Context,
	req *fabulav1alpha1.CloseSessionRequest,
) (*fabulav1alpha1.Empty, error) {
	_, err := h.playerService.CloseSession(ctx, &player.CloseSessionInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Force:     req.Force,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &fabulav1alpha1.Empty{}, nil
}

// SelectTab switches the active tab
func (h *Handler) SelectTab(
	ctx context.Context,
	req *fabulav1alpha1.SelectTabRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.SelectTab(ctx, &player.SelectTabInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
		Tab:       entities.Tab(req.Tab),
	}))
}

// SaveSession persists the scratch document
func (h *Handler) SaveSession(
	ctx context.Context,
	req *fabulav1alpha1.SessionRequest,
) (*fabulav1alpha1.SaveSessionResponse, error) {
	out, err := h.playerService.SaveSession(ctx, &player.SaveSessionInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	session, err := toSession(&out.SessionOutput)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &fabulav1alpha1.SaveSessionResponse{Session: session}
	if out.Revision != nil {
		resp.Revision = out.Revision.Revision
	}
	return resp, nil
}

// DiscardChanges reloads the stored document into the session
func (h *Handler) DiscardChanges(
	ctx context.Context,
	req *fabulav1alpha1.SessionRequest,
) (*fabulav1alpha1.SessionResponse, error) {
	return sessionResponse(h.playerService.DiscardChanges(ctx, &player.DiscardChangesInput{
		SessionID: req.SessionID,
		UserID:    callerFrom(ctx).userID,
	}))
}
