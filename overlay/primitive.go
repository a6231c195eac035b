// Package overlay turns a market snapshot into positioned, labeled chart
// primitives for the enabled "smart money concept" toggles.
//
// The generation rules are presentation heuristics keyed off simple 24h
// price statistics — deliberately not real market-structure detection.
// They live behind this package so a genuine analysis engine could
// replace them without touching the drag/geometry core.
package overlay

// Kind is the geometric shape of a primitive.
type Kind string

const (
	KindBand   Kind = "band"
	KindLine   Kind = "line"
	KindMarker Kind = "marker"
	KindLabel  Kind = "label"
)

// Tag is the semantic meaning of a primitive.
type Tag string

const (
	TagPDH            Tag = "pdh"
	TagPDL            Tag = "pdl"
	TagSessionOpen    Tag = "session-open"
	TagSessionClose   Tag = "session-close"
	TagLiquidityHigh  Tag = "liquidity-high"
	TagLiquidityLow   Tag = "liquidity-low"
	TagEquilibrium    Tag = "equilibrium"
	TagFVG            Tag = "fvg"
	TagBreaker        Tag = "breaker"
	TagSwingHigh      Tag = "swing-high"
	TagSwingLow       Tag = "swing-low"
	TagStructureLabel Tag = "structure"
)

// Primitive is one positioned overlay element in pixel space.
//
// Bands use XPx/YPx as the top-left corner with WidthPx/HeightPx.
// Horizontal lines use YPx and WidthPx; vertical lines XPx and HeightPx.
// Markers and labels are anchored at XPx/YPx, labels carry Text.
// Direction is "bullish" or "bearish" where the heuristic has one.
type Primitive struct {
	Kind      Kind    `json:"kind"`
	Tag       Tag     `json:"tag"`
	XPx       float64 `json:"x_px"`
	YPx       float64 `json:"y_px"`
	WidthPx   float64 `json:"width_px,omitempty"`
	HeightPx  float64 `json:"height_px,omitempty"`
	Text      string  `json:"text,omitempty"`
	Direction string  `json:"direction,omitempty"`
}

// Toggles selects which overlay families to generate.
type Toggles struct {
	PDHL      bool `json:"pdhl"`
	Liquidity bool `json:"liquidity"`
	FVG       bool `json:"fvg"`
	Breakers  bool `json:"breakers"`
	Swings    bool `json:"swings"`
}

// AllToggles enables every overlay family.
func AllToggles() Toggles {
	return Toggles{PDHL: true, Liquidity: true, FVG: true, Breakers: true, Swings: true}
}
