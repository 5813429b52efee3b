// Package player provides the interface for player document persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/fabula-api/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/fabula-api/internal/entities"
)

// Repository stores player documents. Documents are always written whole.
type Repository interface {
	// Create stores a new player document
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a player with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	// Returns errors.NotFound if the player doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the stored document with the given one, creating it if
	// needed, and notifies watchers
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player and notifies watchers
	// Returns errors.NotFound if the player doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves every player owned by a user
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Watch streams one player's document. The first event carries the
	// current document, or Deleted when there is none. The channel closes
	// when ctx is done.
	Watch(ctx context.Context, input WatchInput) (<-chan *WatchEvent, error)

	// WatchAll streams change events for every player. No initial event
	// is sent.
	WatchAll(ctx context.Context) (<-chan *WatchEvent, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing a user's players
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing a user's players
type ListByOwnerOutput struct {
	Players []*entities.Player
}

// WatchInput defines the input for watching a player
type WatchInput struct {
	ID string
}

// WatchEvent is one change notification
type WatchEvent struct {
	PlayerID string
	Player   *entities.Player
	Deleted  bool
}
