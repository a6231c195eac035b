package overlay

import (
	"fmt"
	"math"

	"github.com/rustyeddy/chartlab/chart"
	"github.com/rustyeddy/chartlab/market"
)

const (
	// fvgThresholdPct gates fair-value-gap bands: quiet days have none.
	fvgThresholdPct = 2.0
	fvgMaxHeightPx  = 35.0

	breakerOffsetPct = 0.03
	breakerHeightPx  = 40.0

	liquidityBandPx   = 18.0
	equilibriumBandPx = 12.0
)

// Builder generates overlay primitives from a snapshot. It is stateless:
// two Build calls with identical inputs yield structurally identical
// lists, which lets the caller skip re-renders by comparison.
type Builder struct {
	// Padding overrides chart.DefaultPadding when non-zero.
	Padding float64
}

// Build produces the ordered primitive list for the enabled toggles. A
// snapshot without a usable 24h range produces nothing: no overlay is
// better than a guessed one.
func (bl Builder) Build(snap market.Snapshot, tg Toggles, ext chart.CanvasExtent) []Primitive {
	if !snap.Valid() {
		return nil
	}

	padding := bl.Padding
	if padding == 0 {
		padding = chart.DefaultPadding
	}
	r := snap.Range()

	toY := func(price float64) float64 {
		return chart.PriceToY(price, r, ext, padding)
	}

	var out []Primitive

	if tg.PDHL {
		out = append(out, buildPDHL(snap, ext, toY)...)
	}
	if tg.Liquidity {
		out = append(out, buildLiquidity(snap, ext, toY)...)
	}
	if tg.FVG {
		out = append(out, buildFVG(snap, ext, toY)...)
	}
	if tg.Breakers {
		out = append(out, buildBreakers(snap, ext, toY)...)
	}
	if tg.Swings {
		out = append(out, buildSwings(snap, ext, toY)...)
	}

	return out
}

// buildPDHL marks the previous-day high/low with price labels, plus two
// fixed vertical session reference marks at 15% and 85% of the width.
func buildPDHL(snap market.Snapshot, ext chart.CanvasExtent, toY func(float64) float64) []Primitive {
	highY := toY(snap.High24h)
	lowY := toY(snap.Low24h)

	return []Primitive{
		{Kind: KindLine, Tag: TagPDH, YPx: highY, WidthPx: ext.WidthPx},
		{Kind: KindLabel, Tag: TagPDH, XPx: ext.WidthPx - 8, YPx: highY,
			Text: fmt.Sprintf("PDH %.2f", snap.High24h)},
		{Kind: KindLine, Tag: TagPDL, YPx: lowY, WidthPx: ext.WidthPx},
		{Kind: KindLabel, Tag: TagPDL, XPx: ext.WidthPx - 8, YPx: lowY,
			Text: fmt.Sprintf("PDL %.2f", snap.Low24h)},
		{Kind: KindLine, Tag: TagSessionOpen, XPx: ext.WidthPx * 0.15, HeightPx: ext.HeightPx},
		{Kind: KindLine, Tag: TagSessionClose, XPx: ext.WidthPx * 0.85, HeightPx: ext.HeightPx},
	}
}

// buildLiquidity shades resting-liquidity bands just outside the 24h
// extremes and an equilibrium band at the range midpoint.
func buildLiquidity(snap market.Snapshot, ext chart.CanvasExtent, toY func(float64) float64) []Primitive {
	mid := (snap.High24h + snap.Low24h) / 2

	return []Primitive{
		band(TagLiquidityHigh, toY(snap.High24h*1.005), liquidityBandPx, ext),
		band(TagLiquidityLow, toY(snap.Low24h*0.995), liquidityBandPx, ext),
		band(TagEquilibrium, toY(mid), equilibriumBandPx, ext),
	}
}

// buildFVG draws fair-value-gap bands only after an outsized 24h move.
func buildFVG(snap market.Snapshot, ext chart.CanvasExtent, toY func(float64) float64) []Primitive {
	chg := snap.Change24hPct
	if math.Abs(chg) <= fvgThresholdPct {
		return nil
	}

	dir := "bullish"
	if chg < 0 {
		dir = "bearish"
	}

	primaryH := math.Min(math.Abs(chg)*2, fvgMaxHeightPx)

	primary := band(TagFVG, toY(snap.Current*(1-chg/200)), primaryH, ext)
	primary.Direction = dir

	secondary := band(TagFVG, toY(snap.Current*(1-chg/400)), primaryH/2, ext)
	secondary.Direction = dir

	return []Primitive{primary, secondary}
}

// buildBreakers places one breaker block offset 3% from the current price
// on the side opposite the day's move.
func buildBreakers(snap market.Snapshot, ext chart.CanvasExtent, toY func(float64) float64) []Primitive {
	offset := -breakerOffsetPct
	dir := "bullish"
	if snap.Change24hPct < 0 {
		offset = breakerOffsetPct
		dir = "bearish"
	}

	b := band(TagBreaker, toY(snap.Current*(1+offset)), breakerHeightPx, ext)
	b.Direction = dir
	return []Primitive{b}
}

// buildSwings drops HH/HL/LL markers near the extremes and a structure
// summary label keyed off the sign of the 24h change.
func buildSwings(snap market.Snapshot, ext chart.CanvasExtent, toY func(float64) float64) []Primitive {
	structure := "bullish"
	if snap.Change24hPct < 0 {
		structure = "bearish"
	}

	return []Primitive{
		{Kind: KindMarker, Tag: TagSwingHigh, XPx: ext.WidthPx * 0.35,
			YPx: toY(snap.High24h * 0.998), Text: "HH"},
		{Kind: KindMarker, Tag: TagSwingLow, XPx: ext.WidthPx * 0.55,
			YPx: toY(snap.Current), Text: "HL"},
		{Kind: KindMarker, Tag: TagSwingLow, XPx: ext.WidthPx * 0.75,
			YPx: toY(snap.Low24h * 1.002), Text: "LL"},
		{Kind: KindLabel, Tag: TagStructureLabel, XPx: ext.WidthPx * 0.5, YPx: 16,
			Text: "Structure: " + structure, Direction: structure},
	}
}

// band centers a full-width band of the given height on y.
func band(tag Tag, y, heightPx float64, ext chart.CanvasExtent) Primitive {
	return Primitive{
		Kind:     KindBand,
		Tag:      tag,
		YPx:      y - heightPx/2,
		WidthPx:  ext.WidthPx,
		HeightPx: heightPx,
	}
}
