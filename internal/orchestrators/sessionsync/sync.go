// Package sessionsync keeps open edit sessions in step with the stored
// player documents. Every remote write replaces the scratch copy of the
// sessions viewing that player.
package sessionsync

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/errors"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// Retry delays used when the change feed drops
const (
	DefaultRetryDelay = 200 * time.Millisecond
	MaxRetryDelay     = 5 * time.Second
)

// Config holds the dependencies for the syncer
type Config struct {
	PlayerRepo playerrepo.Repository
	Service    player.Service
	// RetryDelay is the first delay before resubscribing; zero uses DefaultRetryDelay
	RetryDelay time.Duration
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
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.RetryDelay < 0 {
		vb.Field("RetryDelay", "cannot be negative")
	}
	return vb.Build()
}

// Syncer forwards player change events to ResetFromUpstream
type Syncer struct {
	playerRepo playerrepo.Repository
	service    player.Service
	retryDelay time.Duration
}

// New creates a new syncer
func New(cfg *Config) (*Syncer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	return &Syncer{
		playerRepo: cfg.PlayerRepo,
		service:    cfg.Service,
		retryDelay: retryDelay,
	}, nil
}

// Run consumes the change feed until ctx is done, resubscribing with
// backoff whenever the feed fails or closes.
func (s *Syncer) Run(ctx context.Context) error {
	delay := s.retryDelay
	for {
		if ctx.Err() != nil {
			return nil
		}

		events, err := s.playerRepo.WatchAll(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to watch player changes",
				"retry_in", delay.String(),
				"error", err.Error())
		} else {
			slog.InfoContext(ctx, "watching player changes")
			if s.consume(ctx, events) {
				// a feed that delivered events was healthy; start over
				delay = s.retryDelay
			}
			if ctx.Err() != nil {
				return nil
			}
			slog.WarnContext(ctx, "player change feed closed", "retry_in", delay.String())
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
		delay = min(delay*2, max(MaxRetryDelay, s.retryDelay))
	}
}

// consume applies events until the channel closes and reports whether any arrived
func (s *Syncer) consume(ctx context.Context, events <-chan *playerrepo.WatchEvent) bool {
	received := false
	for event := range events {
		received = true
		s.apply(ctx, event)
	}
	return received
}

func (s *Syncer) apply(ctx context.Context, event *playerrepo.WatchEvent) {
	input := &player.ResetFromUpstreamInput{PlayerID: event.PlayerID}
	if !event.Deleted {
		input.Player = event.Player
	}

	out, err := s.service.ResetFromUpstream(ctx, input)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reset sessions from upstream",
			"player_id", event.PlayerID,
			"error", err.Error())
		return
	}

	if out.SessionsReset > 0 || out.SessionsClosed > 0 {
		slog.DebugContext(ctx, "sessions reset from upstream",
			"player_id", event.PlayerID,
			"sessions_reset", out.SessionsReset,
			"sessions_closed", out.SessionsClosed)
	}
}
