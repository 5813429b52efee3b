// Package engine holds the character sheet rules
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/fabula-api/internal/engine Engine

import (
	"context"
)

// Engine computes derived values and advisory checks for a player document
type Engine interface {
	// RecalculateStats derives max HP/MP/IP and clamps current values
	RecalculateStats(ctx context.Context, input *RecalculateStatsInput) (*RecalculateStatsOutput, error)

	// CheckClassRoster returns advisory warnings about the class list
	CheckClassRoster(ctx context.Context, input *CheckClassRosterInput) (*CheckClassRosterOutput, error)

	// RollCheck rolls a two attribute check
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
}
