// Package chart renders the weekly ROI trend as a PNG via a chart service.
package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

const renderPath = "/chart"

// Renderer draws line charts through a QuickChart-compatible endpoint.
type Renderer struct {
	baseURL    string
	httpClient *http.Client
	roiFloor   *float64
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithROIFloor adds a dashed horizontal reference line at the given ratio,
// marking the monthly 7d ROI target on the trend chart.
func WithROIFloor(floor decimal.Decimal) Option {
	return func(r *Renderer) {
		v, _ := floor.Float64()
		r.roiFloor = &v
	}
}

// NewRenderer creates a renderer against the given chart service.
func NewRenderer(baseURL string, timeout time.Duration, opts ...Option) *Renderer {
	r := &Renderer{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type dataset struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	BorderColor string     `json:"borderColor"`
	BorderDash  []int      `json:"borderDash,omitempty"`
	Fill        bool       `json:"fill"`
}

type chartConfig struct {
	Type string `json:"type"`
	Data struct {
		Labels   []string  `json:"labels"`
		Datasets []dataset `json:"datasets"`
	} `json:"data"`
}

type renderRequest struct {
	Chart           chartConfig `json:"chart"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Format          string      `json:"format"`
	BackgroundColor string      `json:"backgroundColor"`
}

// RenderTrend draws the 1d and 7d ROI of the weekly rows as two lines.
// Rows without a usable 7d ratio appear as gaps rather than zeros.
func (r *Renderer) RenderTrend(ctx context.Context, weeks []schema.WeekRow) ([]byte, error) {
	var cfg chartConfig
	cfg.Type = "line"

	roi1 := make([]*float64, len(weeks))
	roi7 := make([]*float64, len(weeks))
	for i, w := range weeks {
		cfg.Data.Labels = append(cfg.Data.Labels, schema.DateLabel(w.Date))
		v1, _ := w.ROI1.Float64()
		roi1[i] = &v1
		if w.ROI7.Valid {
			v7, _ := w.ROI7.Value.Float64()
			roi7[i] = &v7
		}
	}
	cfg.Data.Datasets = []dataset{
		{Label: "1d ROI", Data: roi1, BorderColor: "rgb(54, 162, 235)", Fill: false},
		{Label: "7d ROI", Data: roi7, BorderColor: "rgb(255, 99, 132)", Fill: false},
	}
	if r.roiFloor != nil {
		floor := make([]*float64, len(weeks))
		for i := range floor {
			floor[i] = r.roiFloor
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, dataset{
			Label:       "7d ROI target",
			Data:        floor,
			BorderColor: "rgb(150, 150, 150)",
			BorderDash:  []int{6, 4},
			Fill:        false,
		})
	}

	body, err := json.Marshal(renderRequest{
		Chart:           cfg,
		Width:           720,
		Height:          400,
		Format:          "png",
		BackgroundColor: "white",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart config: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+renderPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart request failed with status code: %d", resp.StatusCode)
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart image: %w", err)
	}
	return image, nil
}
