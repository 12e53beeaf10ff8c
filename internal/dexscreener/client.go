// internal/dexscreener/client.go
package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const searchPath = "/latest/dex/search"

// Client - клиент для публичного API Dexscreener
type Client struct {
	httpClient *http.Client
	baseURL    string
	chainID    string
	log        *zap.Logger
}

// NewClient создает новый клиент Dexscreener. Возвращаются только пары
// на chainID.
func NewClient(baseURL, chainID string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		chainID:    chainID,
		log:        log,
	}
}

// Search queries the pairs-search endpoint for query and returns pairs on
// the configured chain. A null pairs array from the API is an empty result,
// not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Pair, error) {
	apiURL := c.baseURL + searchPath + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dexscreener request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.log.Warn("⚠️ Dexscreener rate limit hit", zap.String("query", query))
		return nil, fmt.Errorf("dexscreener rate limited (429)")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("dexscreener status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode dexscreener response: %w", err)
	}

	pairs := make([]Pair, 0, len(searchResp.Pairs))
	for _, p := range searchResp.Pairs {
		if p.ChainID == c.chainID {
			pairs = append(pairs, p)
		}
	}

	c.log.Debug("dexscreener search done",
		zap.String("query", query),
		zap.Int("total", len(searchResp.Pairs)),
		zap.Int("on_chain", len(pairs)))

	return pairs, nil
}
