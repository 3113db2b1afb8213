// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// MetricSource supplies the daily advertising time series. The report
// pipeline consumes it as an external collaborator; this interface allows the
// pipeline to be tested without the real analytics feed.
type MetricSource interface {
	// FetchDaily returns one aggregated row per day in [from, to].
	FetchDaily(ctx context.Context, from, to time.Time) ([]schema.MetricRow, error)
}

// ChartRenderer turns the weekly table into a trend-chart image artifact.
type ChartRenderer interface {
	RenderTrend(ctx context.Context, weeks []schema.WeekRow) ([]byte, error)
}

// ImageHost uploads a rendered image artifact and returns a stable public URL
// for embedding in outbound messages.
type ImageHost interface {
	Upload(ctx context.Context, image []byte, title string) (string, error)
}

// Notifier delivers report messages to one chat destination. Every send
// reports server acceptance as a boolean; errors are reserved for transport
// failures and local contract violations.
type Notifier interface {
	SendText(ctx context.Context, title, content string) (bool, error)
	SendMarkdown(ctx context.Context, title, text string) (bool, error)
}

// NotifierFactory builds a fresh Notifier for a destination. Construction
// computes the signed webhook URL, so a fresh instance per run keeps the
// signature inside its validity window.
type NotifierFactory func(dest Destination) Notifier
