// Package aodata talks to the Albion Online Data Project API and the
// ao-bin-dumps item dump. All calls retry transient failures and trip a
// circuit breaker on sustained ones.
package aodata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sony/gobreaker"

	"github.com/albie-bot/albie/internal/catalog"
	"github.com/albie-bot/albie/internal/metrics"
)

// Endpoint defaults. Overridable through Config, mainly for tests.
const (
	DefaultItemDumpURL = "https://raw.githubusercontent.com/broderickhyman/ao-bin-dumps/master/formatted/items.json"
	DefaultPricesURL   = "https://www.albion-online-data.com/api/v2/stats/prices/"
	DefaultHistoryURL  = "https://www.albion-online-data.com/api/v2/stats/charts/"
	DefaultIconURL     = "https://render.albiononline.com/v1/item/"
)

// Locations is the fixed city list queried for prices and history.
var Locations = []string{
	"Caerleon", "Lymhurst", "Martlock", "Bridgewatch", "FortSterling",
	"Thetford", "ArthursRest", "MerlynsRest", "MorganasRest", "BlackMarket",
}

// Price cache sizing. Prices move slowly enough that a short TTL saves a
// round trip on repeated lookups of popular items without serving stale data.
const (
	priceCacheSize = 512
	priceCacheTTL  = 3 * time.Minute
)

// Config holds the client configuration. Zero values select the defaults.
type Config struct {
	ItemDumpURL string
	PricesURL   string
	HistoryURL  string
	IconURL     string
}

// Client is the API client. Safe for concurrent use.
type Client struct {
	cfg     Config
	retry   *retryablehttp.Client
	breaker *gobreaker.CircuitBreaker
	prices  *expirable.LRU[string, []CityPrice]
}

// New creates a Client with retries, a circuit breaker and a price cache.
func New(cfg Config) *Client {
	if cfg.ItemDumpURL == "" {
		cfg.ItemDumpURL = DefaultItemDumpURL
	}
	if cfg.PricesURL == "" {
		cfg.PricesURL = DefaultPricesURL
	}
	if cfg.HistoryURL == "" {
		cfg.HistoryURL = DefaultHistoryURL
	}
	if cfg.IconURL == "" {
		cfg.IconURL = DefaultIconURL
	}

	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMin = 200 * time.Millisecond
	retry.RetryWaitMax = 2 * time.Second
	retry.Logger = nil

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "aodata-api",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		cfg:     cfg,
		retry:   retry,
		breaker: breaker,
		prices:  expirable.NewLRU[string, []CityPrice](priceCacheSize, nil, priceCacheTTL),
	}
}

// FetchItemDump downloads the raw item catalog from the ao-bin-dumps mirror.
func (c *Client) FetchItemDump(ctx context.Context) ([]catalog.RawItem, error) {
	var items []catalog.RawItem
	if err := c.getJSON(ctx, "item_dump", c.cfg.ItemDumpURL, &items); err != nil {
		return nil, fmt.Errorf("fetch item dump: %w", err)
	}
	return items, nil
}

// FetchPrices returns the current prices for itemID across all Locations.
// Results are cached briefly; repeated lookups of the same item within the
// TTL do not hit the API.
func (c *Client) FetchPrices(ctx context.Context, itemID string) ([]CityPrice, error) {
	if cached, ok := c.prices.Get(itemID); ok {
		metrics.PriceCacheHits.Inc()
		return cached, nil
	}
	metrics.PriceCacheMisses.Inc()

	url := c.cfg.PricesURL + itemID + "?locations=" + strings.Join(Locations, ",")

	var prices []CityPrice
	if err := c.getJSON(ctx, "prices", url, &prices); err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", itemID, err)
	}

	c.prices.Add(itemID, prices)
	return prices, nil
}

// FetchHistory returns the per-city price timeseries for the past days days.
func (c *Client) FetchHistory(ctx context.Context, itemID string, days int) ([]HistoryEntry, error) {
	// The charts endpoint wants the start date as MM-DD-YYYY.
	date := time.Now().UTC().AddDate(0, 0, -days).Format("01-02-2006")
	url := c.cfg.HistoryURL + itemID +
		"?date=" + date +
		"&locations=" + strings.Join(Locations, ",") +
		"&time-scale=1"

	var entries []HistoryEntry
	if err := c.getJSON(ctx, "history", url, &entries); err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", itemID, err)
	}
	return entries, nil
}

// ItemIconURL returns the render-service thumbnail URL for an item.
func (c *Client) ItemIconURL(itemID string) string {
	return c.cfg.IconURL + itemID + ".png"
}

// getJSON performs a GET through the retry client and circuit breaker and
// decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, url string, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.retry.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return nil, json.NewDecoder(resp.Body).Decode(out)
	})

	if err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "error").Inc()
		return err
	}
	metrics.APIRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
