// Package bidata fetches daily ad performance metrics from the BI data feed.
package bidata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

const queryPath = "/bidata/adData/query"

// excludedMedia rows carry device-farm traffic and would skew every ratio.
const excludedMedia = "untrusteddevices"

var queryFields = []string{
	"impressions", "clicks", "install", "register", "login", "register_rate",
	"cost", "cpi", "cpu", "cpm", "cpc", "ctr", "cvr", "ir",
	"pay_sum_1", "pay_sum_3", "pay_sum_7", "roi_1", "roi_3", "roi_7",
}

// Client queries the ad data feed over HTTP.
type Client struct {
	baseURL    string
	appIDs     []string
	gameIDs    []int
	timeZone   int
	revShare   int
	httpClient *http.Client
}

// NewClient creates a feed client from the validated config.
func NewClient(cfg *contract.Config) *Client {
	return &Client{
		baseURL:  cfg.FeedURL,
		appIDs:   cfg.AppIDs,
		gameIDs:  cfg.GameIDs,
		timeZone: cfg.TimeZone,
		revShare: cfg.RevenueSharing,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

type queryCondition struct {
	Field   string `json:"field"`
	Operate string `json:"operate"`
	Value   any    `json:"value"`
}

type queryAggregation struct {
	Field string `json:"field"`
	Unit  string `json:"unit"`
}

type queryRequest struct {
	Fields          []string           `json:"fields"`
	Conditions      []queryCondition   `json:"conditions"`
	Aggregations    []queryAggregation `json:"aggregations"`
	UnifiedCurrency int                `json:"unified_currency"`
}

// feedRow is the per-day record as the feed serves it. The feed sends
// install as a float, and may include fields we never asked for.
type feedRow struct {
	EndDate string          `json:"end_date"`
	Cost    decimal.Decimal `json:"cost"`
	Install float64         `json:"install"`
	PaySum1 decimal.Decimal `json:"pay_sum_1"`
	PaySum3 decimal.Decimal `json:"pay_sum_3"`
	PaySum7 decimal.Decimal `json:"pay_sum_7"`
	ROI1    decimal.Decimal `json:"roi_1"`
	ROI3    decimal.Decimal `json:"roi_3"`
	ROI7    decimal.Decimal `json:"roi_7"`
}

type feedResponse struct {
	Data []feedRow `json:"data"`
}

func (c *Client) buildQuery(from, to time.Time) queryRequest {
	return queryRequest{
		Fields: queryFields,
		Conditions: []queryCondition{
			{Field: "date", Operate: "ge", Value: dateValue(from)},
			{Field: "date", Operate: "le", Value: dateValue(to)},
			{Field: "app_id", Operate: "in", Value: c.appIDs},
			{Field: "game_id", Operate: "in", Value: c.gameIDs},
			{Field: "media", Operate: "ne", Value: excludedMedia},
			{Field: "time_zone", Operate: "eq", Value: c.timeZone},
			{Field: "revenue_sharing", Operate: "eq", Value: c.revShare},
		},
		Aggregations:    []queryAggregation{{Field: "date", Unit: "day"}},
		UnifiedCurrency: 1,
	}
}

// FetchDaily pulls one row per day for the inclusive date range [from, to],
// sorted ascending by date.
func (c *Client) FetchDaily(ctx context.Context, from, to time.Time) ([]schema.MetricRow, error) {
	body, err := json.Marshal(c.buildQuery(from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+queryPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request failed with status code: %d", resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	rows := make([]schema.MetricRow, 0, len(feed.Data))
	for _, r := range feed.Data {
		day, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("feed row has bad end_date %q: %w", r.EndDate, err)
		}
		rows = append(rows, schema.MetricRow{
			Date:    schema.Day(day),
			Cost:    r.Cost,
			Install: int64(r.Install),
			PaySum1: r.PaySum1,
			PaySum3: r.PaySum3,
			PaySum7: r.PaySum7,
			ROI1:    r.ROI1,
			ROI3:    r.ROI3,
			ROI7:    r.ROI7,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	return rows, nil
}

const dateLayout = "2006-01-02"

// dateValue renders a date the way the feed expects its conditions,
// without zero-padding the month or day.
func dateValue(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}
