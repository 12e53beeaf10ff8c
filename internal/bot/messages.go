// internal/bot/messages.go
package bot

import (
	"fmt"
	"math"
	"strings"

	"solana-pair-screener-bot/internal/screener"
	"solana-pair-screener-bot/internal/telegram"
)

const (
	msgNoResults   = "🔍 No results: no pairs passed this filter. Try again later."
	msgFetchFailed = "⚠️ Couldn't retrieve data from Dexscreener, try again."
)

// presetKeyboard builds one button per catalog preset, one per row.
func presetKeyboard() *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	for _, preset := range screener.All() {
		rows = append(rows, []telegram.InlineKeyboardButton{{
			Text:         preset.Label,
			CallbackData: callbackPrefix + preset.ID,
		}})
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func welcomeText() string {
	return "🤖 *Solana Pair Screener*\n\n" +
		"Pick a preset below and I'll scan Dexscreener for Solana pairs " +
		"that pass its thresholds.\n\n" +
		"Use /help for the preset thresholds."
}

// helpText lists every preset with its headline bounds.
func helpText() string {
	var b strings.Builder
	b.WriteString("*Presets:*\n\n")

	for _, preset := range screener.All() {
		fmt.Fprintf(&b, "%s (`%s`)\n", preset.Label, preset.ID)
		writeRange(&b, "Liquidity", preset.Liquidity, "$")
		writeRange(&b, "FDV", preset.FDV, "$")
		writeRange(&b, "Market cap", preset.MarketCap, "$")
		writeRange(&b, "Age", preset.AgeHours, "h")
		writeRange(&b, "1h txns", preset.TxnsH1, "")
		writeRange(&b, "24h txns", preset.TxnsH24, "")
		writeRange(&b, "6h volume", preset.VolumeH6, "$")
		writeRange(&b, "24h volume", preset.VolumeH24, "$")
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRange(b *strings.Builder, name string, r *screener.Range, unit string) {
	if r == nil {
		return
	}
	switch {
	case math.IsInf(r.Max, 1):
		fmt.Fprintf(b, "  • %s ≥ %s\n", name, formatBound(r.Min, unit))
	default:
		fmt.Fprintf(b, "  • %s %s–%s\n", name, formatBound(r.Min, unit), formatBound(r.Max, unit))
	}
}

func formatBound(v float64, unit string) string {
	if unit == "$" {
		return fmt.Sprintf("$%.0f", v)
	}
	return fmt.Sprintf("%.0f%s", v, unit)
}
