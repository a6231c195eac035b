package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetMarket(c *gin.Context) {
	symbol, err := validateSymbol(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, err)
		return
	}

	snap, err := s.feed.Get(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot for " + symbol})
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleGetOverlays(c *gin.Context) {
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

	snap, err := s.feed.Get(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot for " + symbol})
		return
	}

	primitives := s.builder.Build(snap, parseToggles(c), ext)

	c.JSON(http.StatusOK, gin.H{
		"symbol":     symbol,
		"snapshot":   snap,
		"primitives": primitives,
	})
}
