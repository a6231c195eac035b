package web

import (
	"sync"

	"github.com/rustyeddy/chartlab/annotation"
	"github.com/rustyeddy/chartlab/config"
)

// Session owns the in-memory annotation state for this process: the box
// collection and the single in-flight drag. The annotation package itself
// assumes one logical thread, so the session serializes every HTTP
// handler's access behind one mutex.
type Session struct {
	mu    sync.Mutex
	store *annotation.Store
	drag  *annotation.Drag
}

func NewSession(canvas config.CanvasConfig) *Session {
	store := annotation.NewStore(annotation.Defaults{
		WidthPx:           canvas.BoxWidthPx,
		MinWidthPx:        canvas.MinBoxWidthPx,
		TPOffsetPx:        canvas.TPOffsetPx,
		SLOffsetPx:        canvas.SLOffsetPx,
		DuplicateOffsetPx: canvas.DuplicateOffsetPx,
	})

	return &Session{
		store: store,
		drag: annotation.NewDrag(store, annotation.Limits{
			MinSeparationPx: canvas.MinSeparationPx,
			MoveMarginPx:    canvas.MoveMarginPx,
		}),
	}
}

func (s *Session) CreateAt(x, y float64) *annotation.Box {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.CreateAt(x, y)
}

func (s *Session) Layouts() []annotation.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()

	boxes := s.store.List()
	out := make([]annotation.Layout, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.ComputeLayout())
	}
	return out
}

func (s *Session) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(id)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
	s.store.Clear()
}

func (s *Session) Duplicate(id string) (*annotation.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Duplicate(id)
}

func (s *Session) DragStart(id string, mode annotation.DragMode, pointerY float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Start(id, mode, pointerY)
}

func (s *Session) DragMove(pointerY, canvasHeightPx float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Move(pointerY, canvasHeightPx)
}

func (s *Session) DragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.End()
}

func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
}
