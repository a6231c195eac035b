package web

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/chartlab/chart"
	"github.com/rustyeddy/chartlab/overlay"
)

// symbolRegex validates CoinGecko-style coin ids (lowercase, hyphenated).
var symbolRegex = regexp.MustCompile(`^[a-z0-9-]{2,50}$`)

// ValidationError is returned as the JSON body of 400 responses.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validateSymbol(symbol string) (string, error) {
	symbol = strings.ToLower(strings.TrimSpace(symbol))
	if !symbolRegex.MatchString(symbol) {
		return "", &ValidationError{Field: "symbol", Message: "invalid symbol format"}
	}
	return symbol, nil
}

// parseExtent reads width/height query params into a canvas extent.
func parseExtent(c *gin.Context) (chart.CanvasExtent, error) {
	width, err := strconv.ParseFloat(c.Query("width"), 64)
	if err != nil || width <= 0 {
		return chart.CanvasExtent{}, &ValidationError{Field: "width", Message: "must be a positive number"}
	}
	height, err := strconv.ParseFloat(c.Query("height"), 64)
	if err != nil || height <= 0 {
		return chart.CanvasExtent{}, &ValidationError{Field: "height", Message: "must be a positive number"}
	}
	return chart.CanvasExtent{WidthPx: width, HeightPx: height}, nil
}

// parseToggles reads the overlay toggle query params; absent means off.
func parseToggles(c *gin.Context) overlay.Toggles {
	return overlay.Toggles{
		PDHL:      queryBool(c, "pdhl"),
		Liquidity: queryBool(c, "liquidity"),
		FVG:       queryBool(c, "fvg"),
		Breakers:  queryBool(c, "breakers"),
		Swings:    queryBool(c, "swings"),
	}
}

func queryBool(c *gin.Context, name string) bool {
	switch strings.ToLower(c.Query(name)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
