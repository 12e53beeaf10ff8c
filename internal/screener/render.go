// internal/screener/render.go
package screener

import (
	"fmt"
	"strings"
	"time"

	"solana-pair-screener-bot/internal/dexscreener"
)

// Render formats a passing pair as one Telegram Markdown block. Field order
// is fixed: name/symbol, liquidity, FDV, market cap, volume per window,
// transaction counts per window, age, link. Deterministic for a given pair
// and clock reading.
func Render(pair dexscreener.Pair, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s (%s/%s)*\n",
		pair.BaseToken.Name, pair.BaseToken.Symbol, pair.QuoteToken.Symbol)

	liquidity, _ := pair.LiquidityUSD()
	fmt.Fprintf(&b, "💧 Liquidity: $%.0f\n", liquidity)
	fmt.Fprintf(&b, "💰 FDV: $%.0f\n", pair.FDV)
	fmt.Fprintf(&b, "🏦 Market cap: $%.0f\n", pair.MarketCap)

	fmt.Fprintf(&b, "📊 Volume: 1h $%.0f | 6h $%.0f | 24h $%.0f\n",
		pair.Volume.H1, pair.Volume.H6, pair.Volume.H24)
	fmt.Fprintf(&b, "🔄 Txns: 1h %d | 6h %d | 24h %d\n",
		pair.Txns.H1.Total(), pair.Txns.H6.Total(), pair.Txns.H24.Total())

	fmt.Fprintf(&b, "⏰ Age: %s", formatAge(pair, now))

	if pair.URL != "" {
		fmt.Fprintf(&b, "\n%s", pair.URL)
	}

	return b.String()
}

// formatAge renders the pair age in hours under two days, in days otherwise.
func formatAge(pair dexscreener.Pair, now time.Time) string {
	age, ok := pair.AgeHours(now)
	if !ok {
		return "unknown"
	}
	if age < 48 {
		return fmt.Sprintf("%.1fh", age)
	}
	return fmt.Sprintf("%.1fd", age/24)
}
