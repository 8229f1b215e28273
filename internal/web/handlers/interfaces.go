package handlers

import (
	"context"

	"github.com/blockedby/chartpage/internal/chart"
)

// ChartDataProvider defines the source of the chart's labels and values
type ChartDataProvider interface {
	ChartData(ctx context.Context) (chart.Series, error)
}
