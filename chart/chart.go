// Package chart converts between price space and pixel space on a
// rectangular canvas. Everything here is a pure function: same inputs,
// same output, so projections can be recomputed on every frame or resize
// without drift.
package chart

// DefaultPadding is the fraction of canvas height reserved above the high
// and below the low of the visible range.
const DefaultPadding = 0.1

// PriceRange is the visible price interval. High >= Low; High == Low is a
// legal degenerate range (e.g. a freshly listed symbol with one print).
type PriceRange struct {
	High float64
	Low  float64
}

// Degenerate reports whether the range has zero height in price space.
func (r PriceRange) Degenerate() bool {
	return r.High == r.Low
}

// Span returns High - Low.
func (r PriceRange) Span() float64 {
	return r.High - r.Low
}

// CanvasExtent is the drawable area in pixels. Any fixed header offset is
// the caller's business; HeightPx is the usable chart height.
type CanvasExtent struct {
	WidthPx  float64
	HeightPx float64
}

// PriceToY maps a price to a vertical pixel coordinate. The high of the
// range lands at padding*height from the top, the low at padding*height
// from the bottom; higher price means smaller Y.
//
// A degenerate range maps every price to the vertical midpoint instead of
// dividing by zero.
func PriceToY(price float64, r PriceRange, ext CanvasExtent, padding float64) float64 {
	if r.Degenerate() {
		return ext.HeightPx / 2
	}

	offset := ext.HeightPx * padding
	usable := ext.HeightPx * (1 - 2*padding)

	frac := (r.High - price) / r.Span()
	return offset + frac*usable
}

// YToPrice is the inverse of PriceToY for the same range, extent and
// padding. For a degenerate range every Y maps back to the single price.
func YToPrice(y float64, r PriceRange, ext CanvasExtent, padding float64) float64 {
	if r.Degenerate() {
		return r.High
	}

	offset := ext.HeightPx * padding
	usable := ext.HeightPx * (1 - 2*padding)
	if usable == 0 {
		return r.Low
	}

	frac := (y - offset) / usable
	return r.High - frac*r.Span()
}
