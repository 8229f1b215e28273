package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor converts any CSS colour Chart.js understands: named colours,
// hex with or without alpha, rgb(), rgba(), hsl(), hwb() and the
// space-separated forms.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty colour")
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}

	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
