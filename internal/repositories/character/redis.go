package character

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/heroforge/hero-api/internal/errors"
	"github.com/heroforge/hero-api/internal/pkg/clock"
	redisclient "github.com/heroforge/hero-api/internal/redis"
)

const (
	characterKeyPrefix = "hero:character:"

	errRecordNil    = "record cannot be nil"
	errCharacterNil = "record character cannot be nil"
	errPubkeyEmpty  = "pubkey cannot be empty"
	errInventoryNil = "record inventory cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
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

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}
	if input.Record.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Record.Inventory == nil {
		return nil, errors.InvalidArgument(errInventoryNil)
	}

	key := characterKeyPrefix + input.Record.Pubkey

	record := *input.Record
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.clock.Now().UTC()
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character record")
	}

	// SET NX keeps the first finalization; a pubkey owns one character
	set, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}
	if !set {
		return nil, errors.AlreadyExistsf("character for pubkey %s already exists", record.Pubkey)
	}

	return &SaveOutput{Record: &record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}

	key := characterKeyPrefix + input.Pubkey
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character for pubkey %s not found", input.Pubkey)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Pubkey == "" {
		return nil, errors.InvalidArgument(errPubkeyEmpty)
	}

	key := characterKeyPrefix + input.Pubkey
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("character for pubkey %s not found", input.Pubkey)
	}

	return &DeleteOutput{}, nil
}
