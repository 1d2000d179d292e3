package ports

import (
	"context"

	"go.trai.ch/scaledash/internal/core/domain"
)

// QueryCache deduplicates and caches asynchronous fetches keyed by domain.RequestKey.
//
//go:generate go run go.uber.org/mock/mockgen -source=query_cache.go -destination=mocks/mock_query_cache.go -package=mocks
type QueryCache interface {
	// Register records producer and policy for key without fetching.
	Register(key domain.RequestKey, producer domain.Producer, policy domain.Staleness) error

	// Fetch registers producer for key and returns the cached value if it is
	// fresh under policy. Otherwise it runs the producer, sharing a single
	// in-flight run with every concurrent caller for the same key.
	Fetch(ctx context.Context, key domain.RequestKey, producer domain.Producer, policy domain.Staleness) (domain.Payload, error)

	// Get returns the entry for key, fetching it with the registered producer
	// when it is missing or no longer fresh. Fetch failures are reported in
	// the entry. It returns domain.ErrNoProducer if key was never registered.
	Get(ctx context.Context, key domain.RequestKey) (domain.CacheEntry, error)

	// Peek returns the entry for key without fetching.
	Peek(key domain.RequestKey) (domain.CacheEntry, bool)

	// Invalidate marks every entry whose key starts with prefix as stale and
	// returns how many were marked. In-flight fetches are not cancelled.
	Invalidate(prefix domain.RequestKey) int
}
