package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/chartlab/config"
	"github.com/rustyeddy/chartlab/journal"
	"github.com/rustyeddy/chartlab/market"
)

type fakeSource struct {
	snap market.Snapshot
	err  error
}

func (f *fakeSource) GetSnapshot(ctx context.Context, symbol string) (market.Snapshot, error) {
	if f.err != nil {
		return market.Snapshot{}, f.err
	}
	s := f.snap
	s.Symbol = symbol
	return s, nil
}

func newTestServer(t *testing.T, src market.SnapshotSource, jnl journal.Journal) *Server {
	t.Helper()

	cfg := config.Default()
	store := market.NewSnapshotStore()
	feed := market.NewFeed(src, store, cfg.Feed.Symbols, time.Minute, time.Minute, zerolog.Nop())

	if jnl == nil {
		jnl = journal.Noop{}
	}
	return NewServer(cfg, zerolog.Nop(), feed, jnl)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func liveSnap() market.Snapshot {
	return market.Snapshot{
		Current:      100,
		High24h:      110,
		Low24h:       90,
		Change24hPct: 3.5,
		Volume24h:    1e6,
		Time:         time.Now().UTC(),
	}
}

func TestGetMarket(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodGet, "/api/market/bitcoin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap market.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "bitcoin", snap.Symbol)
	assert.InDelta(t, 100.0, snap.Current, 1e-9)
}

func TestGetMarket_Unavailable(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{err: errors.New("down")}, nil).Router()

	w := doJSON(t, r, http.MethodGet, "/api/market/bitcoin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMarket_BadSymbol(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodGet, "/api/market/NOT%20OK!!", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOverlays(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodGet,
		"/api/overlays/bitcoin?width=800&height=500&pdhl=true&fvg=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Primitives []json.RawMessage `json:"primitives"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// pdhl contributes 6 primitives, fvg 2 (change 3.5 > 2).
	assert.Len(t, resp.Primitives, 8)
}

func TestGetOverlays_MissingExtent(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodGet, "/api/overlays/bitcoin?pdhl=true", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoxLifecycle(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	// Create.
	w := doJSON(t, r, http.MethodPost, "/api/boxes", map[string]float64{"x_px": 200, "y_px": 300})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Created bool `json:"created"`
		Box     struct {
			ID string `json:"id"`
		} `json:"box"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.Created)
	require.NotEmpty(t, created.Box.ID)

	// Click inside the same box: no second box.
	w = doJSON(t, r, http.MethodPost, "/api/boxes", map[string]float64{"x_px": 250, "y_px": 310})
	require.Equal(t, http.StatusOK, w.Code)

	// Duplicate.
	w = doJSON(t, r, http.MethodPost, "/api/boxes/"+created.Box.ID+"/duplicate", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// List shows two.
	w = doJSON(t, r, http.MethodGet, "/api/boxes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Boxes []json.RawMessage `json:"boxes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Boxes, 2)

	// Delete one, clear the rest.
	w = doJSON(t, r, http.MethodDelete, "/api/boxes/"+created.Box.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/boxes", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/boxes", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Boxes)
}

func TestDragFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &fakeSource{snap: liveSnap()}, nil)
	r := srv.Router()

	w := doJSON(t, r, http.MethodPost, "/api/boxes", map[string]float64{"x_px": 200, "y_px": 300})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Box struct {
			ID string `json:"id"`
		} `json:"box"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/api/boxes/"+created.Box.ID+"/drag/start",
		map[string]any{"mode": "move", "pointer_y": 300})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/drag/move",
		map[string]any{"pointer_y": 340, "canvas_height_px": 600})
	require.Equal(t, http.StatusOK, w.Code)

	var moved struct {
		Boxes []struct {
			EntryYPx float64 `json:"entry_y_px"`
		} `json:"boxes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moved))
	require.Len(t, moved.Boxes, 1)
	assert.InDelta(t, 340.0, moved.Boxes[0].EntryYPx, 1e-9)

	w = doJSON(t, r, http.MethodPost, "/api/drag/end", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDragStart_UnknownBox(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/boxes/nope/drag/start",
		map[string]any{"mode": "move", "pointer_y": 300})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRiskCalcAndPlans(t *testing.T) {
	t.Parallel()

	jnl, err := journal.NewSQLite(filepath.Join(t.TempDir(), "plans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = jnl.Close() })

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, jnl).Router()

	w := doJSON(t, r, http.MethodPost, "/api/risk/calc", map[string]any{
		"symbol":       "bitcoin",
		"entry_price":  100,
		"stop_loss":    98,
		"take_profit":  104,
		"account_size": 10000,
		"risk_percent": 2,
		"leverage":     10,
		"side":         "long",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PlanID  string `json:"plan_id"`
		Metrics struct {
			RiskRewardRatio float64 `json:"RiskRewardRatio"`
			RiskAmount      float64 `json:"RiskAmount"`
		} `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.PlanID)
	assert.InDelta(t, 2.0, resp.Metrics.RiskRewardRatio, 1e-9)
	assert.InDelta(t, 200.0, resp.Metrics.RiskAmount, 1e-9)

	w = doJSON(t, r, http.MethodGet, "/api/plans?symbol=bitcoin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plans struct {
		Plans []struct {
			PlanID string `json:"PlanID"`
		} `json:"plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans.Plans, 1)
	assert.Equal(t, resp.PlanID, plans.Plans[0].PlanID)
}

func TestRiskCalc_Violations(t *testing.T) {
	t.Parallel()

	r := newTestServer(t, &fakeSource{snap: liveSnap()}, nil).Router()

	w := doJSON(t, r, http.MethodPost, "/api/risk/calc", map[string]any{
		"entry_price": 100,
		"stop_loss":   100,
		"side":        "long",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ZERO_STOP_DISTANCE")
}
