package editsession

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
)

const (
	// Key pattern: edit_session:{id}
	sessionKeyPrefix = "edit_session:"
	// Key pattern: edit_session:player:{player_id}
	playerIndexPrefix = "edit_session:player:"
	// DefaultTTL is used when neither the config nor the input set one
	DefaultTTL = 2 * time.Hour

	// Error messages
	errSessionNil     = "session cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errPlayerIDEmpty  = "player ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for edit sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	session := *input.Session
	session.CreatedAt = now
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(ttl)

	if err := r.write(ctx, &session, ttl); err != nil {
		return nil, errors.Wrapf(err, "failed to create session %s", session.ID)
	}

	return &CreateOutput{Session: &session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKeyPrefix + input.ID
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("edit session %s not found", input.ID).WithMeta("session_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session entities.EditSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal session %s", input.ID)
	}

	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("edit session %s has expired", input.ID).WithMeta("session_id", input.ID)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Session.ID})
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	session := *input.Session
	session.CreatedAt = existing.Session.CreatedAt
	session.UpdatedAt = now
	session.ExpiresAt = now.Add(r.ttl)

	if err := r.write(ctx, &session, r.ttl); err != nil {
		return nil, errors.Wrapf(err, "failed to update session %s", session.ID)
	}

	return &UpdateOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+input.ID)
	pipe.SRem(ctx, playerIndexPrefix+getOutput.Session.PlayerID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get sessions from index %s", indexKey)
	}
	sort.Strings(ids)

	sessions := make([]*entities.EditSession, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.DebugContext(ctx, "edit session gone, cleaning up index",
					"session_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get session %s", id)
		}
		sessions = append(sessions, getOutput.Session)
	}

	return &ListByPlayerIDOutput{Sessions: sessions}, nil
}

// write stores the session and keeps the player index alive at least as
// long as the session itself.
func (r *redisRepository) write(ctx context.Context, session *entities.EditSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	indexKey := playerIndexPrefix + session.PlayerID
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.ID, data, ttl)
	pipe.SAdd(ctx, indexKey, session.ID)
	pipe.Expire(ctx, indexKey, max(ttl, r.ttl))
	_, err = pipe.Exec(ctx)
	return err
}

func validateSession(session *entities.EditSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", session.ID, vb)
	errors.ValidateRequired("player_id", session.PlayerID, vb)
	if session.Scratch == nil {
		vb.RequiredField("scratch")
	}
	return vb.Build()
}
