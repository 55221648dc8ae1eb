package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Port: TTL'd store for computed optimization results, keyed by a content
// hash of the input place set and settings. Entries are pure recomputable
// artifacts; a miss or a lost entry only costs recomputation time.
type ResultCache interface {
	// Get returns the cached result for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (result *domain.OptimizationResult, ok bool, err error)
	// Put stores a result under key with the cache's configured TTL.
	Put(ctx context.Context, key string, result *domain.OptimizationResult) error
}
