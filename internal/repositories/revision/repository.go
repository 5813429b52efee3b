// Package revision keeps the save history of player documents
package revision

//go:generate mockgen -destination=mock/mock_repository.go -package=revisionmock github.com/KirkDiggler/fabula-api/internal/repositories/revision Repository

import (
	"context"

	"github.com/KirkDiggler/fabula-api/internal/entities"
)

// Repository stores compressed snapshots of saved player documents
type Repository interface {
	// Record appends a snapshot of the player as the next revision
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// List returns revision metadata for a player, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get returns one revision including its snapshot
	// Returns errors.NotFound if the revision doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Close releases the underlying database
	Close() error
}

// RecordInput defines the input for recording a revision
type RecordInput struct {
	Player  *entities.Player
	SavedBy string
}

// RecordOutput defines the output for recording a revision
type RecordOutput struct {
	Revision *entities.Revision
}

// ListInput defines the input for listing revisions
type ListInput struct {
	PlayerID string
	Limit    int // zero means no limit
}

// ListOutput defines the output for listing revisions
type ListOutput struct {
	Revisions []*entities.Revision
}

// GetInput defines the input for getting a revision
type GetInput struct {
	PlayerID string
	Revision int
}

// GetOutput defines the output for getting a revision
type GetOutput struct {
	Revision *entities.Revision
}
