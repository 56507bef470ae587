package shared

import (
	"context"
	"fmt"
	"strings"
	"workation/shared/cache"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a cache prefix and its qualifiers with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithCriteria derives a cache key from any criteria value, so
// distinct filter combinations get distinct cached views.
func BuildCacheKeyWithCriteria(prefix string, criteria any) string {
	return fmt.Sprintf("%s:%+v", prefix, criteria)
}

// InvalidateCaches clears every cached entry under the given prefix, logging
// instead of failing since stale cache entries expire on their own.
func InvalidateCaches(ctx context.Context, kv cache.KV, prefix string) {
	if err := kv.Clear(ctx, prefix+":*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}

	if err := kv.Delete(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache key")
	}
}
