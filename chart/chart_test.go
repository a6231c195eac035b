package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testRange  = PriceRange{High: 120, Low: 80}
	testExtent = CanvasExtent{WidthPx: 800, HeightPx: 500}
)

func TestPriceToY_Endpoints(t *testing.T) {
	t.Parallel()

	// padding 0.1 on a 500px canvas: 50px offset, 400px usable.
	top := PriceToY(testRange.High, testRange, testExtent, DefaultPadding)
	bottom := PriceToY(testRange.Low, testRange, testExtent, DefaultPadding)

	assert.InDelta(t, 50.0, top, 1e-9)
	assert.InDelta(t, 450.0, bottom, 1e-9)
}

func TestPriceToY_Midpoint(t *testing.T) {
	t.Parallel()

	y := PriceToY(100, testRange, testExtent, DefaultPadding)
	assert.InDelta(t, 250.0, y, 1e-9)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	prices := []float64{80, 83.25, 99.999, 100, 110.5, 120, 75, 130}
	for _, p := range prices {
		y := PriceToY(p, testRange, testExtent, DefaultPadding)
		got := YToPrice(y, testRange, testExtent, DefaultPadding)
		assert.InDelta(t, p, got, 1e-9, "price %v", p)
	}
}

func TestPriceToY_Monotonic(t *testing.T) {
	t.Parallel()

	prices := []float64{80, 85, 90, 95, 100, 105, 110, 115, 120}
	prev := PriceToY(prices[0], testRange, testExtent, DefaultPadding)
	for _, p := range prices[1:] {
		y := PriceToY(p, testRange, testExtent, DefaultPadding)
		assert.LessOrEqual(t, y, prev, "price %v", p)
		prev = y
	}
}

func TestDegenerateRange(t *testing.T) {
	t.Parallel()

	r := PriceRange{High: 100, Low: 100}
	assert.True(t, r.Degenerate())

	for _, p := range []float64{0, 50, 100, 1e9} {
		y := PriceToY(p, r, testExtent, DefaultPadding)
		assert.InDelta(t, testExtent.HeightPx/2, y, 1e-9, "price %v", p)
	}

	assert.InDelta(t, 100.0, YToPrice(123, r, testExtent, DefaultPadding), 1e-9)
}

func TestZeroPadding(t *testing.T) {
	t.Parallel()

	top := PriceToY(testRange.High, testRange, testExtent, 0)
	bottom := PriceToY(testRange.Low, testRange, testExtent, 0)

	assert.InDelta(t, 0.0, top, 1e-9)
	assert.InDelta(t, testExtent.HeightPx, bottom, 1e-9)
}
