package annotation

import (
	"errors"
	"sort"

	"github.com/rustyeddy/chartlab/id"
)

var ErrBoxNotFound = errors.New("box not found")

// Defaults are the creation-time parameters of new boxes. All values are
// pixels.
type Defaults struct {
	WidthPx           float64
	MinWidthPx        float64
	TPOffsetPx        float64
	SLOffsetPx        float64
	DuplicateOffsetPx float64
}

// StandardDefaults matches the dashboard's stock configuration.
func StandardDefaults() Defaults {
	return Defaults{
		WidthPx:           120,
		MinWidthPx:        80,
		TPOffsetPx:        50,
		SLOffsetPx:        30,
		DuplicateOffsetPx: 50,
	}
}

// Store owns the session's boxes. Boxes live only in memory and only for
// the session; there is deliberately no persistence behind this.
type Store struct {
	defaults Defaults
	boxes    map[string]*Box
}

func NewStore(d Defaults) *Store {
	if d.WidthPx < d.MinWidthPx {
		d.WidthPx = d.MinWidthPx
	}
	return &Store{
		defaults: d,
		boxes:    make(map[string]*Box),
	}
}

// CreateAt makes a new box at a drawing-mode click point, target above and
// stop below at the default offsets (a long by default; dragging flips it).
// A click inside an existing box creates nothing — the existing annotation
// keeps priority — and returns nil.
func (s *Store) CreateAt(x, y float64) *Box {
	for _, b := range s.boxes {
		if b.Contains(x, y) {
			return nil
		}
	}

	b := &Box{
		ID:        id.New(),
		XPx:       x,
		WidthPx:   s.defaults.WidthPx,
		EntryYPx:  y,
		TargetYPx: y - s.defaults.TPOffsetPx,
		StopYPx:   y + s.defaults.SLOffsetPx,
	}
	s.boxes[b.ID] = b
	return b
}

// Get returns the box with the given id.
func (s *Store) Get(boxID string) (*Box, error) {
	b, ok := s.boxes[boxID]
	if !ok {
		return nil, ErrBoxNotFound
	}
	return b, nil
}

// Delete removes a box. Deleting an unknown id is a no-op: a delete racing
// a clear is normal UI input, not an error.
func (s *Store) Delete(boxID string) {
	delete(s.boxes, boxID)
}

// Clear removes every box.
func (s *Store) Clear() {
	s.boxes = make(map[string]*Box)
}

// Duplicate clones a box with a fixed horizontal offset and a fresh id.
func (s *Store) Duplicate(boxID string) (*Box, error) {
	src, ok := s.boxes[boxID]
	if !ok {
		return nil, ErrBoxNotFound
	}

	clone := *src
	clone.ID = id.New()
	clone.XPx += s.defaults.DuplicateOffsetPx

	s.boxes[clone.ID] = &clone
	return &clone, nil
}

// List returns the boxes in creation order (ULIDs sort by creation time).
func (s *Store) List() []*Box {
	out := make([]*Box, 0, len(s.boxes))
	for _, b := range s.boxes {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of boxes.
func (s *Store) Len() int {
	return len(s.boxes)
}
