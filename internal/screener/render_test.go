package screener

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solana-pair-screener-bot/internal/dexscreener"
)

func renderPair() dexscreener.Pair {
	p := pairAged(10)
	p.URL = "https://dexscreener.com/solana/PAIRADDR"
	p.Liquidity = &dexscreener.Liquidity{Usd: 12_000}
	p.FDV = 150_000
	p.MarketCap = 140_000
	p.Volume = dexscreener.Volume{H1: 5_000, H6: 20_000, H24: 90_000}
	p.Txns = dexscreener.Txns{
		H1:  dexscreener.TxnWindow{Buys: 25, Sells: 15},
		H6:  dexscreener.TxnWindow{Buys: 80, Sells: 70},
		H24: dexscreener.TxnWindow{Buys: 300, Sells: 250},
	}
	return p
}

func TestRenderIdempotent(t *testing.T) {
	p := renderPair()
	first := Render(p, evalNow)
	second := Render(p, evalNow)
	assert.Equal(t, first, second)
}

func TestRenderFieldOrder(t *testing.T) {
	text := Render(renderPair(), evalNow)

	ordered := []string{
		"Test Token (TEST/SOL)",
		"Liquidity: $12000",
		"FDV: $150000",
		"Market cap: $140000",
		"Volume: 1h $5000 | 6h $20000 | 24h $90000",
		"Txns: 1h 40 | 6h 150 | 24h 550",
		"Age: 10.0h",
		"https://dexscreener.com/solana/PAIRADDR",
	}

	last := -1
	for _, want := range ordered {
		idx := strings.Index(text, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q in:\n%s", want, text)
		assert.Greater(t, idx, last, "%q out of order in:\n%s", want, text)
		last = idx
	}
}

func TestRenderAgeUnits(t *testing.T) {
	tests := []struct {
		name     string
		ageHours float64
		want     string
	}{
		{"fresh pair in hours", 10, "Age: 10.0h"},
		{"just under two days", 47.9, "Age: 47.9h"},
		{"two days switches to days", 48, "Age: 2.0d"},
		{"old pair in days", 3000, "Age: 125.0d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := renderPair()
			p.PairCreatedAt = evalNow.Add(-time.Duration(tt.ageHours * float64(time.Hour))).UnixMilli()
			assert.Contains(t, Render(p, evalNow), tt.want)
		})
	}
}

func TestRenderUnknownAge(t *testing.T) {
	p := renderPair()
	p.PairCreatedAt = 0
	assert.Contains(t, Render(p, evalNow), "Age: unknown")
}

func TestRenderNullLiquidity(t *testing.T) {
	p := renderPair()
	p.Liquidity = nil
	text := Render(p, evalNow)
	assert.Contains(t, text, "Liquidity: $0")
}

func TestRenderNoURL(t *testing.T) {
	p := renderPair()
	p.URL = ""
	text := Render(p, evalNow)
	assert.False(t, strings.HasSuffix(text, "\n"), "no dangling newline without a link")
}
