// Package annotation is the risk/reward box engine: the box model, the
// session collection that owns the boxes, and the drag controller that
// mutates them under edge constraints.
//
// Everything in this package assumes a single logical thread of execution
// (one UI event loop). Callers that dispatch from multiple goroutines must
// serialize access themselves; the hosting web session does exactly that.
package annotation

import "math"

// ratioEpsilon is the pixel distance below which the stop edge counts as
// collapsed onto the entry, making the ratio undefined.
const ratioEpsilon = 1e-6

// Box is a single risk/reward annotation in pixel space. The three Y
// edges are entry, take-profit target, and stop-loss; target and stop may
// sit on either side of entry. Direction is never stored — see IsLong.
type Box struct {
	ID        string  `json:"id"`
	XPx       float64 `json:"x_px"`
	WidthPx   float64 `json:"width_px"`
	EntryYPx  float64 `json:"entry_y_px"`
	TargetYPx float64 `json:"target_y_px"`
	StopYPx   float64 `json:"stop_y_px"`
}

// IsLong derives direction from geometry: the target sitting above entry
// (smaller pixel Y) means a long. Deriving instead of storing rules out
// the stored-flag-disagrees-with-edges bug class after drags.
func (b *Box) IsLong() bool {
	return b.TargetYPx < b.EntryYPx
}

// Ratio is the displayed risk/reward: target distance over stop distance
// in pixels. A collapsed stop edge yields 0, never Inf or NaN.
func (b *Box) Ratio() float64 {
	slDist := math.Abs(b.StopYPx - b.EntryYPx)
	if slDist < ratioEpsilon {
		return 0
	}
	return math.Abs(b.EntryYPx-b.TargetYPx) / slDist
}

// Top returns the upper Y of the bounding rectangle.
func (b *Box) Top() float64 {
	return math.Min(b.TargetYPx, b.StopYPx)
}

// Bottom returns the lower Y of the bounding rectangle.
func (b *Box) Bottom() float64 {
	return math.Max(b.TargetYPx, b.StopYPx)
}

// Contains reports whether the point lies inside the bounding rectangle.
func (b *Box) Contains(x, y float64) bool {
	return x >= b.XPx && x <= b.XPx+b.WidthPx &&
		y >= b.Top() && y <= b.Bottom()
}
