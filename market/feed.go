package market

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Feed polls a SnapshotSource on a fixed cadence, keeps the latest valid
// snapshot per symbol in a store, and fans fresh snapshots out to
// subscribers (the websocket push path).
//
// A fetch failure or an invalid snapshot leaves the previous snapshot in
// place: worst case the dashboard renders slightly stale data, never
// garbage.
type Feed struct {
	source   SnapshotSource
	store    *SnapshotStore
	symbols  []string
	interval time.Duration
	ttl      time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	subs    map[int]chan Snapshot
	nextSub int

	now func() time.Time // test hook
}

func NewFeed(source SnapshotSource, store *SnapshotStore, symbols []string,
	interval, ttl time.Duration, log zerolog.Logger) *Feed {

	return &Feed{
		source:   source,
		store:    store,
		symbols:  symbols,
		interval: interval,
		ttl:      ttl,
		log:      log,
		subs:     make(map[int]chan Snapshot),
		now:      time.Now,
	}
}

// Run polls until ctx is cancelled. The first poll happens immediately so
// the dashboard has data before the first tick.
func (f *Feed) Run(ctx context.Context) error {
	f.pollOnce(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f.pollOnce(ctx)
		}
	}
}

func (f *Feed) pollOnce(ctx context.Context) {
	for _, sym := range f.symbols {
		snap, err := f.source.GetSnapshot(ctx, sym)
		if err != nil {
			f.log.Warn().Err(err).Str("symbol", sym).Msg("snapshot fetch failed")
			continue
		}
		if !snap.Valid() {
			f.log.Warn().Str("symbol", sym).Msg("snapshot missing high/low, dropped")
			continue
		}

		f.store.Set(snap)
		f.publish(snap)

		f.log.Debug().
			Str("symbol", sym).
			Float64("price", snap.Current).
			Msg("snapshot updated")
	}
}

// Get returns the symbol's snapshot, serving from the store while it is
// younger than the TTL and refetching otherwise. Mirrors the poll path's
// validity rules.
func (f *Feed) Get(ctx context.Context, symbol string) (Snapshot, error) {
	if snap, err := f.store.Get(symbol); err == nil {
		if f.now().Sub(snap.Time) < f.ttl {
			return snap, nil
		}
	}

	snap, err := f.source.GetSnapshot(ctx, symbol)
	if err != nil {
		// Fall back to whatever we have, stale or not.
		if cached, cerr := f.store.Get(symbol); cerr == nil {
			return cached, nil
		}
		return Snapshot{}, err
	}
	if !snap.Valid() {
		return Snapshot{}, ErrNoSnapshot
	}

	f.store.Set(snap)
	return snap, nil
}

// Subscribe returns a channel of fresh snapshots and a cancel func. Slow
// subscribers miss updates rather than stalling the poll loop.
func (f *Feed) Subscribe() (<-chan Snapshot, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextSub
	f.nextSub++

	ch := make(chan Snapshot, 8)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if c, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (f *Feed) publish(snap Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
