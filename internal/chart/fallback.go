package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

// Fallback image geometry, in pixels.
const (
	FallbackWidth  = 640
	FallbackHeight = 320

	marginLeft   = 48.0
	marginRight  = 16.0
	marginTop    = 40.0
	marginBottom = 32.0

	barFill   = 0.6
	tickCount = 4
)

var (
	textColor = color.NRGBA{R: 55, G: 65, B: 81, A: 255}
	gridColor = color.NRGBA{R: 229, G: 231, B: 235, A: 255}
)

// RenderPNG draws the series as a static bar chart with the value axis
// anchored at zero. It is embedded for browsers that do not run scripts.
func RenderPNG(s Series, style Style) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	fill, err := ParseColor(style.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("background colour: %w", err)
	}
	border, err := ParseColor(style.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("border colour: %w", err)
	}

	dc := gg.NewContext(FallbackWidth, FallbackHeight)
	dc.SetColor(color.White)
	dc.Clear()

	plotLeft := marginLeft
	plotRight := float64(FallbackWidth) - marginRight
	plotTop := marginTop
	plotBottom := float64(FallbackHeight) - marginBottom
	plotHeight := plotBottom - plotTop

	lo, hi, step, err := valueAxis(s.Values)
	if err != nil {
		return nil, err
	}
	yOf := func(v float64) float64 {
		return plotBottom - (v-lo)/(hi-lo)*plotHeight
	}

	// grid and tick labels
	dc.SetLineWidth(1)
	ticks := int(math.Round((hi - lo) / step))
	decimals := int(math.Max(0, -math.Floor(math.Log10(step))))
	for i := 0; i <= ticks; i++ {
		v := lo + float64(i)*step
		y := yOf(v)
		dc.SetColor(gridColor)
		dc.DrawLine(plotLeft, y, plotRight, y)
		dc.Stroke()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'f', decimals, 64), plotLeft-6, y, 1, 0.5)
	}

	slot := (plotRight - plotLeft) / float64(s.Len())
	barWidth := slot * barFill
	zeroY := yOf(0)

	for i, v := range s.Values {
		x := plotLeft + float64(i)*slot + (slot-barWidth)/2
		top := math.Min(yOf(v), zeroY)
		height := math.Abs(zeroY - yOf(v))

		dc.DrawRectangle(x, top, barWidth, height)
		dc.SetColor(fill)
		if style.BorderWidth > 0 {
			dc.FillPreserve()
			dc.SetColor(border)
			dc.SetLineWidth(style.BorderWidth)
			dc.Stroke()
		} else {
			dc.Fill()
		}

		dc.SetColor(textColor)
		dc.DrawStringAnchored(s.Labels[i], x+barWidth/2, plotBottom+marginBottom/2, 0.5, 0.5)
	}

	if style.Title != "" {
		dc.SetColor(textColor)
		dc.DrawStringAnchored(style.Title, float64(FallbackWidth)/2, marginTop/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// PNGDataURI wraps PNG bytes in a data: URL.
func PNGDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// valueAxis returns the axis bounds and tick step. Zero is always inside
// the range so bars grow from a zero baseline.
func valueAxis(values []float64) (lo, hi, step float64, err error) {
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	if math.IsInf(hi-lo, 0) {
		return 0, 0, 0, fmt.Errorf("%w: value range too wide to draw", ErrInvalidValue)
	}

	step = niceStep((hi - lo) / tickCount)
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsInf(hi-lo, 0) {
		return 0, 0, 0, fmt.Errorf("%w: value range too wide to draw", ErrInvalidValue)
	}
	return lo, hi, step, nil
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}
