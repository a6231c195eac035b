// Package web exposes the annotation engine to the dashboard frontend:
// REST for snapshots, overlays, boxes and risk calcs, and a websocket
// that pushes fresh snapshots with rebuilt overlays.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rustyeddy/chartlab/config"
	"github.com/rustyeddy/chartlab/journal"
	"github.com/rustyeddy/chartlab/market"
	"github.com/rustyeddy/chartlab/overlay"
)

type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	feed    *market.Feed
	session *Session
	builder overlay.Builder
	journal journal.Journal

	httpSrv *http.Server
}

func NewServer(cfg *config.Config, log zerolog.Logger, feed *market.Feed, jnl journal.Journal) *Server {
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cfg:     cfg,
		log:     log,
		feed:    feed,
		session: NewSession(cfg.Canvas),
		builder: overlay.Builder{Padding: cfg.Canvas.PaddingFraction},
		journal: jnl,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.Server.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = s.cfg.Server.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		api.GET("/market/:symbol", s.handleGetMarket)
		api.GET("/overlays/:symbol", s.handleGetOverlays)

		api.POST("/boxes", s.handleCreateBox)
		api.GET("/boxes", s.handleListBoxes)
		api.DELETE("/boxes", s.handleClearBoxes)
		api.DELETE("/boxes/:id", s.handleDeleteBox)
		api.POST("/boxes/:id/duplicate", s.handleDuplicateBox)

		api.POST("/boxes/:id/drag/start", s.handleDragStart)
		api.POST("/drag/move", s.handleDragMove)
		api.POST("/drag/end", s.handleDragEnd)

		api.POST("/risk/calc", s.handleRiskCalc)
		api.GET("/plans", s.handleListPlans)
	}

	r.GET("/ws/:symbol", s.handleWebsocket)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. Any
// in-flight drag is cancelled on the way out.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Router(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.httpSrv.ListenAndServe()
	}()

	s.log.Info().Str("addr", s.cfg.Server.Addr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.session.CancelDrag()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
