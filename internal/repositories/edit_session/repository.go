// Package editsession provides repository interface and types for edit sessions
package editsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=editsessionmock github.com/KirkDiggler/fabula-api/internal/repositories/edit_session Repository

// Repository defines the interface for edit session storage operations
type Repository interface {
	// Create stores a new edit session. CreatedAt, UpdatedAt and ExpiresAt
	// are set by the repository.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an edit session by ID
	// Returns errors.NotFound if the session doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing edit session and extends its expiry
	// Returns errors.NotFound if the session doesn't exist or has expired
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an edit session
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves every live session open on a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput contains parameters for creating an edit session
type CreateInput struct {
	Session *entities.EditSession
	TTL     time.Duration // Falls back to the repository default when zero
}

// CreateOutput contains the result of creating an edit session
type CreateOutput struct {
	Session *entities.EditSession
}

// GetInput contains parameters for retrieving an edit session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving an edit session
type GetOutput struct {
	Session *entities.EditSession
}

// UpdateInput contains parameters for updating an edit session
type UpdateInput struct {
	Session *entities.EditSession
}

// UpdateOutput contains the result of updating an edit session
type UpdateOutput struct {
	Session *entities.EditSession
}

// DeleteInput contains parameters for deleting an edit session
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting an edit session
type DeleteOutput struct{}

// ListByPlayerIDInput contains parameters for listing a player's sessions
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput contains the sessions open on a player
type ListByPlayerIDOutput struct {
	Sessions []*entities.EditSession
}
