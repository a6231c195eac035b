package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/chartlab/annotation"
)

type createBoxRequest struct {
	XPx float64 `json:"x_px"`
	YPx float64 `json:"y_px"`
}

func (s *Server) handleCreateBox(c *gin.Context) {
	var req createBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	box := s.session.CreateAt(req.XPx, req.YPx)
	if box == nil {
		// Click landed inside an existing box: that annotation keeps
		// priority, nothing was created.
		c.JSON(http.StatusOK, gin.H{"created": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": true, "box": box})
}

func (s *Server) handleListBoxes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boxes": s.session.Layouts()})
}

func (s *Server) handleClearBoxes(c *gin.Context) {
	s.session.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteBox(c *gin.Context) {
	// Deleting an unknown id is a no-op, same as the store.
	s.session.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDuplicateBox(c *gin.Context) {
	box, err := s.session.Duplicate(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"box": box})
}

type dragStartRequest struct {
	Mode     string  `json:"mode" binding:"required"`
	PointerY float64 `json:"pointer_y"`
}

func (s *Server) handleDragStart(c *gin.Context) {
	var req dragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := annotation.ParseDragMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.session.DragStart(c.Param("id"), mode, req.PointerY); err != nil {
		if errors.Is(err, annotation.ErrBoxNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type dragMoveRequest struct {
	PointerY       float64 `json:"pointer_y"`
	CanvasHeightPx float64 `json:"canvas_height_px"`
}

func (s *Server) handleDragMove(c *gin.Context) {
	var req dragMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CanvasHeightPx <= 0 {
		c.JSON(http.StatusBadRequest, &ValidationError{
			Field: "canvas_height_px", Message: "must be a positive number"})
		return
	}

	// A move with no active drag is a silent no-op: pointer events race
	// their own start/end, that's normal.
	s.session.DragMove(req.PointerY, req.CanvasHeightPx)
	c.JSON(http.StatusOK, gin.H{"boxes": s.session.Layouts()})
}

func (s *Server) handleDragEnd(c *gin.Context) {
	s.session.DragEnd()
	c.Status(http.StatusNoContent)
}
