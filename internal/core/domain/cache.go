package domain

import (
	"context"
	"math"
	"time"
)

// FetchStatus is the state of a cached query.
type FetchStatus uint8

const (
	// StatusPending means the entry exists but no fetch has completed yet.
	StatusPending FetchStatus = iota
	// StatusSuccess means the last fetch produced a value.
	StatusSuccess
	// StatusError means the last fetch failed.
	StatusError
)

func (s FetchStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Staleness is how long a successful result may be served without re-running its producer.
type Staleness time.Duration

const (
	// AlwaysStale re-runs the producer on every fetch. Concurrent fetches still share one run.
	AlwaysStale Staleness = 0
	// NeverStale serves a successful result until the key is invalidated.
	NeverStale Staleness = Staleness(math.MaxInt64)
)

// StalenessFromMillis converts a configuration value to a Staleness.
// Negative values mean NeverStale.
func StalenessFromMillis(ms int64) Staleness {
	if ms < 0 {
		return NeverStale
	}
	return Staleness(time.Duration(ms) * time.Millisecond)
}

// Payload is an opaque decoded JSON value. Numbers are kept as json.Number.
type Payload = any

// Producer fetches the value for a key.
type Producer func(ctx context.Context) (Payload, error)

// CacheEntry is a point-in-time view of a cached query.
type CacheEntry struct {
	Key       RequestKey
	Status    FetchStatus
	Data      Payload
	Err       error
	UpdatedAt time.Time
	// Stale is set by invalidation and forces the next read to re-fetch.
	Stale bool
}

// Fresh reports whether the entry can be served at now under the given policy.
func (e CacheEntry) Fresh(now time.Time, policy Staleness) bool {
	if e.Status != StatusSuccess || e.Stale {
		return false
	}
	if policy == NeverStale {
		return true
	}
	return now.Sub(e.UpdatedAt) < time.Duration(policy)
}
