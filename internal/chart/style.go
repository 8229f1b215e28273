package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStyle is returned when a style fails validation.
var ErrInvalidStyle = errors.New("chart: invalid style")

// Style holds the presentation settings for the chart page.
type Style struct {
	Title           string  `yaml:"title"`
	DatasetLabel    string  `yaml:"datasetLabel"`
	BackgroundColor string  `yaml:"backgroundColor"`
	BorderColor     string  `yaml:"borderColor"`
	BorderWidth     float64 `yaml:"borderWidth"`
}

// DefaultStyle returns the built-in presentation settings.
func DefaultStyle() Style {
	return Style{
		Title:           "Bar Chart Example",
		DatasetLabel:    "Monthly Data",
		BackgroundColor: "rgba(54, 162, 235, 0.7)",
		BorderColor:     "rgba(54, 162, 235, 1)",
		BorderWidth:     1,
	}
}

// LoadStyle reads a YAML style file. An empty path yields the defaults.
func LoadStyle(path string) (Style, error) {
	if path == "" {
		return DefaultStyle(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Style{}, fmt.Errorf("open style file: %w", err)
	}
	defer f.Close()

	style, err := DecodeStyle(f)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// DecodeStyle decodes YAML over the defaults and validates the result.
// Keys missing from the document keep their default values.
func DecodeStyle(r io.Reader) (Style, error) {
	style := DefaultStyle()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("decode style: %w", err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// Validate reports the first problem found in the style.
func (s Style) Validate() error {
	if s.DatasetLabel == "" {
		return fmt.Errorf("%w: datasetLabel is empty", ErrInvalidStyle)
	}
	if _, err := ParseColor(s.BackgroundColor); err != nil {
		return fmt.Errorf("%w: backgroundColor: %v", ErrInvalidStyle, err)
	}
	if _, err := ParseColor(s.BorderColor); err != nil {
		return fmt.Errorf("%w: borderColor: %v", ErrInvalidStyle, err)
	}
	if s.BorderWidth < 0 {
		return fmt.Errorf("%w: borderWidth must not be negative", ErrInvalidStyle)
	}
	return nil
}
