// Package market holds the live price snapshot the engine is driven by,
// and the polling feed that keeps it fresh.
package market

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rustyeddy/chartlab/chart"
)

var ErrNoSnapshot = errors.New("snapshot not found")

// Snapshot is one poll cycle's view of a symbol. Immutable per render:
// consumers copy it, never mutate it.
type Snapshot struct {
	Symbol       string    `json:"symbol"`
	Current      float64   `json:"current"`
	High24h      float64   `json:"high_24h"`
	Low24h       float64   `json:"low_24h"`
	Change24hPct float64   `json:"change_24h_pct"`
	Volume24h    float64   `json:"volume_24h"`
	Time         time.Time `json:"time"`
}

// Valid reports whether the snapshot carries a usable price and 24h range.
// Price-dependent overlay generation is skipped for invalid snapshots.
func (s Snapshot) Valid() bool {
	return s.Current > 0 && s.High24h > 0 && s.Low24h > 0 && s.High24h >= s.Low24h
}

// Range returns the 24h price range for projection.
func (s Snapshot) Range() chart.PriceRange {
	return chart.PriceRange{High: s.High24h, Low: s.Low24h}
}

// SnapshotSource produces the latest snapshot for a symbol.
type SnapshotSource interface {
	GetSnapshot(ctx context.Context, symbol string) (Snapshot, error)
}

// SnapshotStore keeps the latest snapshot per symbol.
type SnapshotStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snaps: make(map[string]Snapshot)}
}

func (ss *SnapshotStore) Set(s Snapshot) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.snaps[s.Symbol] = s
}

func (ss *SnapshotStore) Get(symbol string) (Snapshot, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	s, ok := ss.snaps[symbol]
	if !ok {
		return Snapshot{}, ErrNoSnapshot
	}
	return s, nil
}
