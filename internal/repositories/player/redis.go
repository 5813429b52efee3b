package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
)

const (
	playerKeyPrefix     = "player:"
	ownerIndexPrefix    = "player:owner:"
	updateChannelPrefix = "player:updates:"

	watchBuffer = 16

	// Error messages
	errPlayerNil     = "player cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	key := playerKeyPrefix + input.Player.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("player with ID %s already exists", input.Player.ID)
	}

	now := r.clock.Now()
	p := input.Player.Clone()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if p.UID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+p.UID, p.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	r.publish(ctx, p.ID, data)
	return &CreateOutput{Player: p}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID).WithMeta("player_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	p, err := decodePlayer(result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode player %s", input.ID)
	}

	return &GetOutput{Player: p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	key := playerKeyPrefix + input.Player.ID

	var previousOwner string
	existing, err := r.Get(ctx, GetInput{ID: input.Player.ID})
	switch {
	case err == nil:
		previousOwner = existing.Player.UID
	case errors.IsNotFound(err):
	default:
		return nil, err
	}

	now := r.clock.Now()
	p := input.Player.Clone()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if previousOwner != p.UID {
		if previousOwner != "" {
			pipe.SRem(ctx, ownerIndexPrefix+previousOwner, p.ID)
		}
		if p.UID != "" {
			pipe.SAdd(ctx, ownerIndexPrefix+p.UID, p.ID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	r.publish(ctx, p.ID, data)
	return &SaveOutput{Player: p}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKeyPrefix+input.ID)
	if getOutput.Player.UID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+getOutput.Player.UID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}

	r.publish(ctx, input.ID, nil)
	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get players from index %s", indexKey)
	}
	sort.Strings(ids)

	players := make([]*entities.Player, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "player not found, cleaning up index",
					"player_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get player %s", id)
		}
		players = append(players, getOutput.Player)
	}

	return &ListByOwnerOutput{Players: players}, nil
}

func (r *redisRepository) Watch(ctx context.Context, input WatchInput) (<-chan *WatchEvent, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	// Subscribe before reading so no update between the read and the
	// subscription is lost.
	pubsub := r.client.Subscribe(ctx, updateChannelPrefix+input.ID)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Wrapf(err, "failed to subscribe to player %s", input.ID)
	}

	initial := &WatchEvent{PlayerID: input.ID}
	getOutput, err := r.Get(ctx, GetInput(input))
	switch {
	case err == nil:
		initial.Player = getOutput.Player
	case errors.IsNotFound(err):
		initial.Deleted = true
	default:
		_ = pubsub.Close()
		return nil, err
	}

	return r.stream(ctx, pubsub, initial), nil
}

func (r *redisRepository) WatchAll(ctx context.Context) (<-chan *WatchEvent, error) {
	pubsub := r.client.PSubscribe(ctx, updateChannelPrefix+"*")
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Wrapf(err, "failed to subscribe to player updates")
	}

	return r.stream(ctx, pubsub, nil), nil
}

func (r *redisRepository) stream(ctx context.Context, pubsub *redis.PubSub, initial *WatchEvent) <-chan *WatchEvent {
	out := make(chan *WatchEvent, watchBuffer)

	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		if initial != nil {
			select {
			case out <- initial:
			case <-ctx.Done():
				return
			}
		}

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				event, err := decodeEvent(msg)
				if err != nil {
					slog.WarnContext(ctx, "dropping malformed player update",
						"channel", msg.Channel,
						"error", err.Error())
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (r *redisRepository) publish(ctx context.Context, id string, data []byte) {
	if err := r.client.Publish(ctx, updateChannelPrefix+id, data).Err(); err != nil {
		// The write already succeeded; watchers pick the change up on their next read.
		slog.ErrorContext(ctx, "failed to publish player update",
			"player_id", id,
			"error", err.Error())
	}
}

func decodeEvent(msg *redis.Message) (*WatchEvent, error) {
	event := &WatchEvent{PlayerID: strings.TrimPrefix(msg.Channel, updateChannelPrefix)}
	if msg.Payload == "" {
		event.Deleted = true
		return event, nil
	}

	p, err := decodePlayer([]byte(msg.Payload))
	if err != nil {
		return nil, err
	}
	event.Player = p
	return event, nil
}

func decodePlayer(data []byte) (*entities.Player, error) {
	var p entities.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal player")
	}
	return &p, nil
}

func validatePlayer(p *entities.Player) error {
	if p == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
