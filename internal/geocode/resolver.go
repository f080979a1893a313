package geocode

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=resolver.go -destination=../mock/geocode_lookuper_mock.go -package=mock

// Lookuper performs a single reverse-geocoding request.
type Lookuper interface {
	// Lookup returns the display string for the coordinate pair. lat and lon
	// are already normalized decimal strings.
	Lookup(ctx context.Context, lat, lon string) (string, error)
}

type request struct {
	ctx   context.Context
	point point
	done  chan string
}

// Resolver turns coordinates into locations through a [Cache] and a
// [Lookuper], batching cache misses.
//
// At most one batch loop runs at a time. Each iteration takes up to
// BatchSize queued requests, looks up every distinct key concurrently, and
// then, if more requests are waiting, pauses for BatchDelay before the next
// iteration. Two callers asking for the same key in the same batch share one
// lookup; callers in different batches may each trigger one.
type Resolver struct {
	cache    *Cache
	lookuper Lookuper

	batchSize  int
	batchDelay time.Duration

	mu         sync.Mutex
	queue      []*request
	processing bool

	logger *logger.Logger
}

// NewResolver creates a Resolver. A BatchSize below one is treated as one.
func NewResolver(cache *Cache, lookuper Lookuper, cfg config.Geocoder, logger *logger.Logger) *Resolver {
	return &Resolver{
		cache:      cache,
		lookuper:   lookuper,
		batchSize:  max(cfg.BatchSize, 1),
		batchDelay: cfg.BatchDelay,
		logger:     logger,
	}
}

// Cache returns the cache the resolver reads and fills.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns the location of the coordinate pair, or [UnknownLocation].
//
// A cache hit returns immediately. Otherwise the request is queued and
// Resolve waits for its batch. Cancelling ctx only stops the wait: the
// lookup still runs to completion and its result is cached.
func (r *Resolver) Resolve(ctx context.Context, lat, lon string) string {
	p, err := newPoint(lat, lon)
	if err != nil {
		r.logger.Debug().Str("func", "*Resolver.Resolve").
			Str("lat", lat).Str("lon", lon).
			Msg("coordinates cannot be resolved")
		return UnknownLocation
	}

	if v, ok := r.cache.Get(p.key()); ok {
		return v
	}

	req := &request{
		ctx:   context.WithoutCancel(ctx),
		point: p,
		done:  make(chan string, 1),
	}
	r.enqueue(req)

	select {
	case v := <-req.done:
		return v
	case <-ctx.Done():
		return UnknownLocation
	}
}

func (r *Resolver) enqueue(req *request) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queue = append(r.queue, req)
	if !r.processing {
		r.processing = true
		go r.run()
	}
}

func (r *Resolver) run() {
	for {
		batch := r.next()
		if batch == nil {
			return
		}

		r.process(batch)

		if r.pending() && r.batchDelay > 0 {
			time.Sleep(r.batchDelay)
		}
	}
}

// next dequeues up to batchSize requests. With an empty queue it clears the
// processing flag and returns nil, ending the loop.
func (r *Resolver) next() []*request {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		r.processing = false
		return nil
	}

	n := min(r.batchSize, len(r.queue))
	batch := make([]*request, n)
	copy(batch, r.queue[:n])
	r.queue = r.queue[n:]

	return batch
}

func (r *Resolver) pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.queue) > 0
}

func (r *Resolver) process(batch []*request) {
	waiters := make(map[string][]*request, len(batch))
	order := make([]string, 0, len(batch))
	for _, req := range batch {
		key := req.point.key()
		if _, ok := waiters[key]; !ok {
			order = append(order, key)
		}
		waiters[key] = append(waiters[key], req)
	}

	var g errgroup.Group
	for _, key := range order {
		reqs := waiters[key]
		g.Go(func() error {
			value := r.resolveKey(reqs[0], key)
			for _, req := range reqs {
				req.done <- value
			}
			return nil
		})
	}
	// lookups never return errors; failures are cached as UnknownLocation
	_ = g.Wait()
}

func (r *Resolver) resolveKey(req *request, key string) string {
	// an earlier batch may have filled the key while this one waited
	if v, ok := r.cache.Get(key); ok {
		return v
	}

	value, err := r.lookuper.Lookup(req.ctx, req.point.lat, req.point.lon)
	value = strings.TrimSpace(value)
	if err != nil || value == "" {
		r.logger.Warn().Err(err).Str("func", "*Resolver.resolveKey").
			Str("key", key).
			Msg("reverse geocoding failed")
		r.cache.SetFailure(key)
		return UnknownLocation
	}

	r.cache.SetSuccess(key, value)
	return value
}
