package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dizzycode.xyz/logstrategy/strategies"
)

// Redis appends JSON encoded records to a list whose key is KeyPrefix + table
type Redis struct {
	client    redis.Cmdable
	keyPrefix string
	maxLength int64
}

// RedisOptions configures the Redis store
type RedisOptions struct {
	// KeyPrefix is prepended to the table name to form the list key.
	KeyPrefix string
	// MaxLength keeps only the newest MaxLength records per list. Zero keeps everything.
	MaxLength int64
}

// NewRedis creates a Redis store. client may be a *redis.Client, cluster client or pipeline.
func NewRedis(client redis.Cmdable, opts ...RedisOptions) *Redis {
	r := &Redis{client: client}
	if len(opts) > 0 {
		r.keyPrefix = opts[0].KeyPrefix
		r.maxLength = opts[0].MaxLength
	}
	return r
}

// Key returns the list key records for table are pushed to
func (r *Redis) Key(table string) string {
	return r.keyPrefix + table
}

// Insert implements strategies.Store
func (r *Redis) Insert(ctx context.Context, table string, record strategies.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	key := r.Key(table)

	if r.maxLength <= 0 {
		if err := r.client.RPush(ctx, key, data).Err(); err != nil {
			return fmt.Errorf("redis rpush %s: %w", key, err)
		}
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -r.maxLength, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis append %s: %w", key, err)
	}
	return nil
}

// RedisConfig holds connection settings for Dial
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// Dial opens a redis client and verifies the connection with PING
func Dial(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}
