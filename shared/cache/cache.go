package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"workation/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "store"
	otelStoreKeyAttribute = "store.key"
)

// Nil is returned (wrapped) by Get when the key does not exist.
var Nil = redis.Nil

// KV is the origin-scoped key-value store backing both durable collections
// and derived-view caches. A duration of zero persists the key without expiry.
type KV interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisKV struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisKV(client *redis.Client, ot otel.Otel) KV {
	return &redisKV{
		client: client,
		otel:   ot,
	}
}

// Clear implements KV.
func (kv *redisKV) Clear(ctx context.Context, prefix string) (err error) {
	ctx, scope := kv.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttribute, prefix)

	scan := kv.client.Scan(ctx, 0, prefix, 0)
	if scan != nil {
		iter := scan.Iterator()

		for iter.Next(ctx) {
			key := iter.Val()
			if err = kv.client.Del(ctx, key).Err(); err != nil {
				log.Error().Err(err).Str("key", key).Str("KV", "Clear").Msg("failed to del key")

				return fmt.Errorf("failed to delete stored value: %w", err)
			}
		}
	}

	return nil
}

// Delete implements KV.
func (kv *redisKV) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := kv.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttribute, key)

	if err = kv.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Str("KV", "Delete").Msg("failed to del key")

		return fmt.Errorf("failed to delete stored value: %w", err)
	}

	return nil
}

// Get implements KV. String destinations receive the raw stored value, any
// other destination is unmarshalled from JSON.
func (kv *redisKV) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := kv.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttribute, key)

	storedValue, err := kv.client.Get(ctx, key).Result()

	if err == nil {
		switch v := value.(type) {
		case *string:
			*v = storedValue

			return nil
		default:
			err = json.Unmarshal([]byte(storedValue), value)

			if err != nil {
				log.Error().Err(err).Str("KV", "Get").Msg("failed to unmarshal stored value")

				return fmt.Errorf("failed to unmarshal stored value: %w", err)
			}

			return nil
		}
	}

	return fmt.Errorf("failed to get stored value: %w", err)
}

// Save implements KV.
func (kv *redisKV) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := kv.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelStoreKeyAttribute, key)

	var strValue []byte
	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)

		if err != nil {
			log.Error().Err(err).Str("key", key).Str("KV", "Save").Msg("failed to marshal value")

			return fmt.Errorf("failed to marshal value: %w", err)
		}
	}

	err = kv.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()

	if err != nil {
		log.Error().Err(err).Str("key", key).Str("KV", "Save").Msg("failed to set key")

		return fmt.Errorf("failed to set stored value: %w", err)
	}

	log.Debug().Str("KV", "Save").Str("key", key).Msg("stored value saved")

	return nil
}
