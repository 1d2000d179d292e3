// Package querycache implements the query registry: a keyed cache of fetch
// results with single-flight deduplication and explicit invalidation.
package querycache

import (
	"context"
	"sync"
	"time"
	"unique"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// entry is the mutable state behind a domain.CacheEntry. It is only touched
// with Registry.mu held.
type entry struct {
	key       domain.RequestKey
	producer  domain.Producer
	policy    domain.Staleness
	status    domain.FetchStatus
	data      domain.Payload
	err       error
	updatedAt time.Time
	stale     bool
	// epoch is bumped by every invalidation so a fetch that was already in
	// flight can tell its result is outdated.
	epoch uint64
}

func (e *entry) view() domain.CacheEntry {
	return domain.CacheEntry{
		Key:       e.key.Clone(),
		Status:    e.status,
		Data:      e.data,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		Stale:     e.stale,
	}
}

// Registry implements ports.QueryCache.
type Registry struct {
	mu      sync.Mutex
	entries *lru.Cache[unique.Handle[string], *entry]
	// generation changes on Reset; results of fetches started before it are dropped.
	generation uint64

	group   singleflight.Group
	clock   clockwork.Clock
	metrics *metrics
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	maxEntries int
	clock      clockwork.Clock
}

// WithMaxEntries bounds the number of cached keys. Least recently used keys are evicted first.
func WithMaxEntries(n int) Option {
	return func(o *options) { o.maxEntries = n }
}

// WithClock sets the clock used for staleness windows.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates an empty Registry.
func New(opts ...Option) (*Registry, error) {
	o := options{
		maxEntries: domain.DefaultCacheMaxEntries,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxEntries <= 0 {
		o.maxEntries = domain.DefaultCacheMaxEntries
	}

	entries, err := lru.New[unique.Handle[string], *entry](o.maxEntries)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create query registry")
	}

	return &Registry{
		entries: entries,
		clock:   o.clock,
		metrics: newMetrics(),
	}, nil
}

// lookupOrCreate returns the entry for h, inserting a pending one if needed.
// Callers must hold r.mu.
func (r *Registry) lookupOrCreate(h unique.Handle[string], key domain.RequestKey) *entry {
	if e, ok := r.entries.Get(h); ok {
		return e
	}
	e := &entry{key: key.Clone(), status: domain.StatusPending}
	r.entries.Add(h, e)
	return e
}

func validate(key domain.RequestKey, producer domain.Producer) error {
	if len(key) == 0 {
		return domain.ErrEmptyRequestKey
	}
	if producer == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoProducer, "invalid query"), "key", key.String())
	}
	return nil
}

// Register records producer and policy for key without fetching.
func (r *Registry) Register(key domain.RequestKey, producer domain.Producer, policy domain.Staleness) error {
	if err := validate(key, producer); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.lookupOrCreate(key.Handle(), key)
	e.producer = producer
	e.policy = policy
	return nil
}

// Fetch registers producer for key and returns the cached value when it is
// fresh under policy. Otherwise the producer runs once for all concurrent
// callers of the same key, and every caller receives its result or error.
func (r *Registry) Fetch(
	ctx context.Context,
	key domain.RequestKey,
	producer domain.Producer,
	policy domain.Staleness,
) (domain.Payload, error) {
	if err := validate(key, producer); err != nil {
		return nil, err
	}
	h := key.Handle()

	r.mu.Lock()
	e := r.lookupOrCreate(h, key)
	e.producer = producer
	e.policy = policy
	if e.view().Fresh(r.clock.Now(), policy) {
		data := e.data
		r.mu.Unlock()
		r.metrics.hit(ctx)
		return data, nil
	}
	r.mu.Unlock()

	r.metrics.miss(ctx)
	return r.run(ctx, h, key, producer)
}

// Get returns the entry for key, re-fetching with the registered producer
// when the entry is missing, failed, invalidated or past its window.
// Fetch failures are reported through the entry's Status and Err.
func (r *Registry) Get(ctx context.Context, key domain.RequestKey) (domain.CacheEntry, error) {
	if len(key) == 0 {
		return domain.CacheEntry{}, domain.ErrEmptyRequestKey
	}
	h := key.Handle()

	r.mu.Lock()
	e, ok := r.entries.Get(h)
	if !ok || e.producer == nil {
		r.mu.Unlock()
		return domain.CacheEntry{}, zerr.With(zerr.Wrap(domain.ErrNoProducer, "cache lookup failed"), "key", key.String())
	}
	if e.view().Fresh(r.clock.Now(), e.policy) {
		view := e.view()
		r.mu.Unlock()
		r.metrics.hit(ctx)
		return view, nil
	}
	producer := e.producer
	r.mu.Unlock()

	r.metrics.miss(ctx)
	data, err := r.run(ctx, h, key, producer)

	if view, ok := r.Peek(key); ok {
		return view, nil
	}

	// The entry was evicted or reset while the fetch ran.
	view := domain.CacheEntry{Key: key.Clone(), Status: domain.StatusSuccess, Data: data, UpdatedAt: r.clock.Now()}
	if err != nil {
		view.Status, view.Data, view.Err = domain.StatusError, nil, err
	}
	return view, nil
}

// run executes producer under single-flight for h and records the outcome.
// The producer is detached from the caller's cancellation: once started it
// runs to completion and its result is shared by every waiter.
func (r *Registry) run(
	ctx context.Context,
	h unique.Handle[string],
	key domain.RequestKey,
	producer domain.Producer,
) (domain.Payload, error) {
	v, err, _ := r.group.Do(h.Value(), func() (any, error) {
		r.mu.Lock()
		e := r.lookupOrCreate(h, key)
		// A flight that ended after the caller's freshness check already
		// stored a usable result.
		if e.view().Fresh(r.clock.Now(), e.policy) {
			data := e.data
			r.mu.Unlock()
			return data, nil
		}
		startEpoch := e.epoch
		generation := r.generation
		r.mu.Unlock()

		data, err := producer(context.WithoutCancel(ctx))

		r.mu.Lock()
		defer r.mu.Unlock()

		if generation != r.generation {
			return data, err
		}

		e = r.lookupOrCreate(h, key)
		e.updatedAt = r.clock.Now()
		if err != nil {
			e.status = domain.StatusError
			e.err = err
			r.metrics.failure(ctx)
			return nil, err
		}

		e.status = domain.StatusSuccess
		e.data = data
		e.err = nil
		e.stale = e.epoch != startEpoch
		return data, nil
	})
	return v, err
}

// Peek returns the entry for key without fetching and without touching its recency.
func (r *Registry) Peek(key domain.RequestKey) (domain.CacheEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries.Peek(key.Handle())
	if !ok {
		return domain.CacheEntry{}, false
	}
	return e.view(), true
}

// Invalidate marks every entry whose key starts with prefix as stale, so the
// next Fetch or Get runs its producer again. An empty prefix matches every key.
// Fetches already in flight are left running; their results are stored but
// stay stale.
func (r *Registry) Invalidate(prefix domain.RequestKey) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := 0
	for _, h := range r.entries.Keys() {
		e, ok := r.entries.Peek(h)
		if !ok || !e.key.HasPrefix(prefix) {
			continue
		}
		e.stale = true
		e.epoch++
		marked++
	}

	r.metrics.invalidated(context.Background(), marked)
	return marked
}

// Len returns the number of cached keys.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// Reset drops every entry. Results of fetches still in flight are discarded.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries.Purge()
	r.generation++
}
