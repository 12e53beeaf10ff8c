// internal/screener/evaluator.go
package screener

import (
	"time"

	"solana-pair-screener-bot/internal/dexscreener"
)

// Matches reports whether pair satisfies every bound declared on preset.
// All comparisons are inclusive. A bound whose attribute the API did not
// report fails that bound; a pair is never rejected with an error.
func Matches(pair dexscreener.Pair, preset Preset, now time.Time) bool {
	if preset.Liquidity != nil {
		usd, ok := pair.LiquidityUSD()
		if !ok || !preset.Liquidity.Contains(usd) {
			return false
		}
	}

	if preset.FDV != nil && !preset.FDV.Contains(pair.FDV) {
		return false
	}

	if preset.MarketCap != nil && !preset.MarketCap.Contains(pair.MarketCap) {
		return false
	}

	if preset.AgeHours != nil {
		age, ok := pair.AgeHours(now)
		if !ok || !preset.AgeHours.Contains(age) {
			return false
		}
	}

	if preset.TxnsH1 != nil && !preset.TxnsH1.Contains(float64(pair.Txns.H1.Total())) {
		return false
	}

	if preset.TxnsH24 != nil && !preset.TxnsH24.Contains(float64(pair.Txns.H24.Total())) {
		return false
	}

	if preset.VolumeH6 != nil && !preset.VolumeH6.Contains(pair.Volume.H6) {
		return false
	}

	if preset.VolumeH24 != nil && !preset.VolumeH24.Contains(pair.Volume.H24) {
		return false
	}

	return true
}

// Filter returns the pairs from candidates that match preset, preserving
// their order.
func Filter(candidates []dexscreener.Pair, preset Preset, now time.Time) []dexscreener.Pair {
	var matched []dexscreener.Pair
	for _, pair := range candidates {
		if Matches(pair, preset, now) {
			matched = append(matched, pair)
		}
	}
	return matched
}
