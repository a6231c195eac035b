package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rustyeddy/chartlab/chart"
	"github.com/rustyeddy/chartlab/market"
	"github.com/rustyeddy/chartlab/overlay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Origin policy is enforced by the CORS layer for the REST routes;
	// the socket accepts the same dashboard origins via this hook.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeTimeout = 10 * time.Second

// pushFrame is one websocket message: the fresh snapshot plus the
// overlays rebuilt for it.
type pushFrame struct {
	Snapshot   market.Snapshot     `json:"snapshot"`
	Primitives []overlay.Primitive `json:"primitives"`
}

// handleWebsocket streams snapshot+overlay frames for one symbol. Extent
// and toggles come from query params, like the REST overlay endpoint.
// The subscription is released unconditionally when the client goes away.
func (s *Server) handleWebsocket(c *gin.Context) {
	symbol, err := validateSymbol(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}

	ext, err := parseExtent(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}
	toggles := parseToggles(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	snaps, cancel := s.feed.Subscribe()
	defer cancel()

	// Reader goroutine: we never expect client messages, but reading is
	// how we notice the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Seed the client with current state before the first tick.
	if snap, err := s.feed.Get(c.Request.Context(), symbol); err == nil {
		if err := s.writeFrame(conn, snap, toggles, ext); err != nil {
			return
		}
	}

	for {
		select {
		case <-done:
			return
		case snap, ok := <-snaps:
			if !ok {
				return
			}
			if snap.Symbol != symbol {
				continue
			}
			if err := s.writeFrame(conn, snap, toggles, ext); err != nil {
				s.log.Debug().Err(err).Msg("websocket write failed, closing")
				return
			}
		}
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, snap market.Snapshot,
	toggles overlay.Toggles, ext chart.CanvasExtent) error {

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(pushFrame{
		Snapshot:   snap,
		Primitives: s.builder.Build(snap, toggles, ext),
	})
}
