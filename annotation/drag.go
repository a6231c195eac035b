package annotation

import "fmt"

// DragMode selects which part of a box a drag manipulates.
type DragMode int

const (
	// DragMove translates the whole box.
	DragMove DragMode = iota
	// DragResizeTop moves only the target edge.
	DragResizeTop
	// DragResizeBottom moves only the stop edge.
	DragResizeBottom
)

func (m DragMode) String() string {
	switch m {
	case DragResizeTop:
		return "resize-top"
	case DragResizeBottom:
		return "resize-bottom"
	default:
		return "move"
	}
}

// ParseDragMode parses "move", "resize-top" or "resize-bottom".
func ParseDragMode(s string) (DragMode, error) {
	switch s {
	case "move":
		return DragMove, nil
	case "resize-top":
		return DragResizeTop, nil
	case "resize-bottom":
		return DragResizeBottom, nil
	default:
		return DragMove, fmt.Errorf("unknown drag mode %q", s)
	}
}

// Limits are the pixel constraints a drag enforces.
type Limits struct {
	// MinSeparationPx keeps the target/stop edges from collapsing onto
	// the entry line, which would make the ratio undefined.
	MinSeparationPx float64
	// MoveMarginPx keeps the entry line from being dragged fully
	// off-canvas.
	MoveMarginPx float64
}

func StandardLimits() Limits {
	return Limits{MinSeparationPx: 10, MoveMarginPx: 20}
}

// Drag is the pointer-drag state machine: Idle until Start, Dragging until
// End or Cancel. The box state is snapshotted at Start and every Move is
// applied as a delta against that snapshot, so rapid successive moves
// can't compound rounding or clamping error.
//
// Malformed sequencing — Move without Start, Start on a deleted box, a
// second End — is silently ignored. Input races like these are normal
// pointer-event behavior, not errors.
type Drag struct {
	store  *Store
	limits Limits

	active  bool
	mode    DragMode
	boxID   string
	anchorY float64
	start   Box
}

func NewDrag(store *Store, limits Limits) *Drag {
	return &Drag{store: store, limits: limits}
}

// Active reports whether a drag is in flight.
func (d *Drag) Active() bool {
	return d.active
}

// Start begins a drag on the given box, capturing the full box state —
// not just the touched edge — as the delta baseline.
func (d *Drag) Start(boxID string, mode DragMode, pointerY float64) error {
	b, err := d.store.Get(boxID)
	if err != nil {
		return err
	}

	d.active = true
	d.mode = mode
	d.boxID = boxID
	d.anchorY = pointerY
	d.start = *b
	return nil
}

// Move applies the pointer position to the dragged box. No-op when idle or
// when the box has been deleted mid-drag.
func (d *Drag) Move(pointerY, canvasHeightPx float64) {
	if !d.active {
		return
	}

	b, err := d.store.Get(d.boxID)
	if err != nil {
		return
	}

	deltaY := pointerY - d.anchorY

	switch d.mode {
	case DragMove:
		// Clamp via the entry edge, then translate all three edges by
		// the same effective delta so the ratio is unchanged.
		entry := clamp(d.start.EntryYPx+deltaY,
			d.limits.MoveMarginPx, canvasHeightPx-d.limits.MoveMarginPx)
		applied := entry - d.start.EntryYPx

		b.EntryYPx = entry
		b.TargetYPx = d.start.TargetYPx + applied
		b.StopYPx = d.start.StopYPx + applied

	case DragResizeTop:
		// Target edge only, kept at least MinSeparationPx above entry.
		target := d.start.TargetYPx + deltaY
		limit := d.start.EntryYPx - d.limits.MinSeparationPx
		if target > limit {
			target = limit
		}
		b.TargetYPx = target

	case DragResizeBottom:
		// Stop edge only, kept at least MinSeparationPx below entry.
		stop := d.start.StopYPx + deltaY
		limit := d.start.EntryYPx + d.limits.MinSeparationPx
		if stop < limit {
			stop = limit
		}
		b.StopYPx = stop
	}
}

// End terminates the drag. Safe to call when idle (global pointer-up fires
// wherever the pointer happens to be).
func (d *Drag) End() {
	d.reset()
}

// Cancel aborts any in-flight drag; called on leaving drawing mode or
// canvas teardown.
func (d *Drag) Cancel() {
	d.reset()
}

func (d *Drag) reset() {
	d.active = false
	d.boxID = ""
	d.anchorY = 0
	d.start = Box{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
