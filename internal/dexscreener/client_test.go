package dexscreener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const searchFixture = `{
	"schemaVersion": "1.0.0",
	"pairs": [
		{
			"chainId": "solana",
			"dexId": "raydium",
			"url": "https://dexscreener.com/solana/abc",
			"pairAddress": "abc",
			"baseToken": {"address": "So1...", "name": "Test Token", "symbol": "TEST"},
			"quoteToken": {"address": "So2...", "name": "Wrapped SOL", "symbol": "SOL"},
			"priceUsd": "0.0012",
			"txns": {"m5": {"buys": 5, "sells": 2}, "h1": {"buys": 30, "sells": 10}, "h24": {"buys": 500, "sells": 400}},
			"volume": {"m5": 1200.5, "h1": 15000, "h6": 40000, "h24": 95000},
			"priceChange": {"h1": 3.4, "h24": -12.1},
			"liquidity": {"usd": 25000, "base": 100000, "quote": 50},
			"fdv": 120000,
			"marketCap": 110000,
			"pairCreatedAt": 1756500000000
		},
		{
			"chainId": "ethereum",
			"pairAddress": "eth-pair",
			"baseToken": {"symbol": "ETHTOKEN"},
			"liquidity": {"usd": 999999}
		},
		{
			"chainId": "solana",
			"pairAddress": "no-liq",
			"baseToken": {"symbol": "NOLIQ"},
			"liquidity": null
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "solana", 5*time.Second, zap.NewNop())
}

func TestSearchFiltersChain(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/dex/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(searchFixture))
	})

	pairs, err := client.Search(context.Background(), "SOL pump")
	require.NoError(t, err)
	assert.Equal(t, "SOL pump", gotQuery)

	// Ethereum pair is dropped; both Solana pairs survive.
	require.Len(t, pairs, 2)
	assert.Equal(t, "abc", pairs[0].PairAddress)
	assert.Equal(t, "no-liq", pairs[1].PairAddress)

	p := pairs[0]
	assert.Equal(t, "Test Token", p.BaseToken.Name)
	assert.Equal(t, 25000.0, p.Liquidity.Usd)
	assert.Equal(t, 120000.0, p.FDV)
	assert.Equal(t, 110000.0, p.MarketCap)
	assert.Equal(t, 40, p.Txns.H1.Total())
	assert.Equal(t, 95000.0, p.Volume.H24)
	assert.Equal(t, int64(1756500000000), p.PairCreatedAt)

	// Null liquidity decodes to nil, not a zero struct.
	assert.Nil(t, pairs[1].Liquidity)
}

func TestSearchNullPairs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"schemaVersion":"1.0.0","pairs":null}`))
	})

	pairs, err := client.Search(context.Background(), "SOL")
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestSearchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.Search(context.Background(), "SOL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSearchRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "SOL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": [`))
	})

	_, err := client.Search(context.Background(), "SOL")
	require.Error(t, err)
}

func TestPairHelpers(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	var p Pair
	_, ok := p.LiquidityUSD()
	assert.False(t, ok)
	_, ok = p.AgeHours(now)
	assert.False(t, ok)

	p.Liquidity = &Liquidity{Usd: 123}
	usd, ok := p.LiquidityUSD()
	assert.True(t, ok)
	assert.Equal(t, 123.0, usd)

	p.PairCreatedAt = now.Add(-36 * time.Hour).UnixMilli()
	age, ok := p.AgeHours(now)
	assert.True(t, ok)
	assert.InDelta(t, 36.0, age, 1e-9)
}
