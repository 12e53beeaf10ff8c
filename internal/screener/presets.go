// internal/screener/presets.go
package screener

import "math"

// Range is an inclusive numeric interval. A nil *Range on a preset means
// the attribute is not constrained.
type Range struct {
	Min float64
	Max float64
}

// AtLeast constrains an attribute from below only.
func AtLeast(min float64) *Range {
	return &Range{Min: min, Max: math.Inf(1)}
}

// Between constrains an attribute to [min, max]. A range with min > max
// matches nothing.
func Between(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

// Contains reports whether v falls inside the range, endpoints included.
func (r *Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Preset - именованный набор порогов фильтрации
type Preset struct {
	ID    string
	Label string

	Liquidity *Range // USD
	FDV       *Range // USD
	MarketCap *Range // USD
	AgeHours  *Range
	TxnsH1    *Range
	TxnsH24   *Range
	VolumeH6  *Range // USD
	VolumeH24 *Range // USD
}

// Preset IDs. They double as callback data on the Telegram keyboard.
const (
	PresetVeryDegen     = "very_degen"
	PresetDegen         = "degen"
	PresetMidCaps       = "mid_caps"
	PresetOldMidCaps    = "old_mid_caps"
	PresetLargerMidCaps = "larger_mid_caps"
)

// Order fixes the keyboard and /help layout.
var Order = []string{
	PresetVeryDegen,
	PresetDegen,
	PresetMidCaps,
	PresetOldMidCaps,
	PresetLargerMidCaps,
}

// presets is the static catalog. Threshold values are literal; the age
// windows are intentionally uneven across presets.
var presets = map[string]Preset{
	PresetVeryDegen: {
		ID:        PresetVeryDegen,
		Label:     "🔥 Very Degen",
		Liquidity: AtLeast(10_000),
		FDV:       AtLeast(100_000),
		AgeHours:  Between(0, 48),
		TxnsH1:    AtLeast(30),
	},
	PresetDegen: {
		ID:        PresetDegen,
		Label:     "🎲 Degen",
		Liquidity: AtLeast(15_000),
		FDV:       AtLeast(100_000),
		AgeHours:  Between(1, 72),
		TxnsH1:    AtLeast(100),
	},
	PresetMidCaps: {
		ID:        PresetMidCaps,
		Label:     "📊 Mid Caps",
		Liquidity: AtLeast(100_000),
		FDV:       AtLeast(1_000_000),
		VolumeH24: AtLeast(1_200_000),
		TxnsH24:   AtLeast(30),
	},
	PresetOldMidCaps: {
		ID:        PresetOldMidCaps,
		Label:     "🏛 Old Mid Caps",
		Liquidity: AtLeast(100_000),
		FDV:       Between(200_000, 100_000_000),
		AgeHours:  Between(720, 2_800),
		VolumeH24: AtLeast(200_000),
		TxnsH24:   AtLeast(2_000),
	},
	PresetLargerMidCaps: {
		ID:        PresetLargerMidCaps,
		Label:     "🏦 Larger Mid Caps",
		Liquidity: AtLeast(200_000),
		MarketCap: AtLeast(1_000_000),
		VolumeH6:  AtLeast(150_000),
	},
}

// Lookup returns the preset registered under id.
func Lookup(id string) (Preset, bool) {
	p, ok := presets[id]
	return p, ok
}

// All returns the catalog in display order.
func All() []Preset {
	out := make([]Preset, 0, len(Order))
	for _, id := range Order {
		out = append(out, presets[id])
	}
	return out
}
