// Package chart provides the data and presentation settings behind the bar chart page.
package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch is returned when labels and values are not index-aligned.
	ErrLengthMismatch = errors.New("chart: labels and values differ in length")
	// ErrEmptySeries is returned when a series has no points to draw.
	ErrEmptySeries = errors.New("chart: series is empty")
	// ErrInvalidValue is returned for NaN or infinite values, which have no JSON form.
	ErrInvalidValue = errors.New("chart: value is not a finite number")
)

// Series is a pair of parallel sequences: Values[i] belongs to Labels[i].
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Validate checks that the series can be drawn.
func (s Series) Validate() error {
	if len(s.Labels) != len(s.Values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(s.Labels), len(s.Values))
	}
	if len(s.Labels) == 0 {
		return ErrEmptySeries
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %q", ErrInvalidValue, s.Labels[i])
		}
	}
	return nil
}

// GetChartData returns the monthly sample data shown on the chart page.
// Every call builds new slices, so callers may keep or modify the result.
func GetChartData() ([]string, []float64) {
	labels := []string{"January", "February", "March", "April", "May", "June"}
	values := []float64{12, 19, 3, 5, 2, 8}
	return labels, values
}

// StaticProvider serves the fixed sample data from GetChartData.
type StaticProvider struct{}

// NewStaticProvider creates a provider for the sample data.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// ChartData returns the sample series. It never fails.
func (p *StaticProvider) ChartData(_ context.Context) (Series, error) {
	labels, values := GetChartData()
	return Series{Labels: labels, Values: values}, nil
}
