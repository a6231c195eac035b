package annotation

import "fmt"

// Zone is one shaded half of a rendered box.
type Zone struct {
	TopPx    float64 `json:"top_px"`
	HeightPx float64 `json:"height_px"`
	Label    string  `json:"label"`
}

// Layout is the render-ready geometry of a box for one frame.
type Layout struct {
	BoxID      string  `json:"box_id"`
	XPx        float64 `json:"x_px"`
	WidthPx    float64 `json:"width_px"`
	EntryYPx   float64 `json:"entry_y_px"`
	Upper      Zone    `json:"upper"`
	Lower      Zone    `json:"lower"`
	IsLong     bool    `json:"is_long"`
	RatioLabel string  `json:"ratio_label"`
}

// ComputeLayout resolves the box into its on-screen zones. The upper zone
// always spans from the upper of the two outer edges down to entry, and
// the lower zone from entry down to the lower edge — but which one is the
// TP zone depends on direction, so the labels are computed from IsLong,
// not from top/bottom position.
func (b *Box) ComputeLayout() Layout {
	upperEdge := b.Top()
	lowerEdge := b.Bottom()

	upperLabel, lowerLabel := "SL", "TP"
	if b.IsLong() {
		upperLabel, lowerLabel = "TP", "SL"
	}

	return Layout{
		BoxID:    b.ID,
		XPx:      b.XPx,
		WidthPx:  b.WidthPx,
		EntryYPx: b.EntryYPx,
		Upper: Zone{
			TopPx:    upperEdge,
			HeightPx: b.EntryYPx - upperEdge,
			Label:    upperLabel,
		},
		Lower: Zone{
			TopPx:    b.EntryYPx,
			HeightPx: lowerEdge - b.EntryYPx,
			Label:    lowerLabel,
		},
		IsLong:     b.IsLong(),
		RatioLabel: b.ratioLabel(),
	}
}

// ratioLabel formats the ratio to one decimal, with a flat "0" when the
// stop edge is collapsed.
func (b *Box) ratioLabel() string {
	r := b.Ratio()
	if r == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", r)
}
