// internal/dexscreener/types.go
package dexscreener

import "time"

// SearchResponse - ответ /latest/dex/search
type SearchResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

// Pair is one trading pair as returned by the Dexscreener search endpoint.
// Numeric attributes the API may omit decode to their zero value; liquidity
// is null for some pairs, hence the pointer.
type Pair struct {
	ChainID       string      `json:"chainId"`
	DexID         string      `json:"dexId"`
	URL           string      `json:"url"`
	PairAddress   string      `json:"pairAddress"`
	BaseToken     Token       `json:"baseToken"`
	QuoteToken    Token       `json:"quoteToken"`
	PriceUsd      string      `json:"priceUsd"`
	Txns          Txns        `json:"txns"`
	Volume        Volume      `json:"volume"`
	PriceChange   PriceChange `json:"priceChange"`
	Liquidity     *Liquidity  `json:"liquidity"`
	FDV           float64     `json:"fdv"`
	MarketCap     float64     `json:"marketCap"`
	PairCreatedAt int64       `json:"pairCreatedAt"` // unix ms, 0 when unknown
}

// Token - токен в торговой паре
type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// TxnWindow contains buy and sell counts for one time window.
type TxnWindow struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Total returns buys plus sells.
func (w TxnWindow) Total() int {
	return w.Buys + w.Sells
}

// Txns - счетчики транзакций по окнам
type Txns struct {
	M5  TxnWindow `json:"m5"`
	H1  TxnWindow `json:"h1"`
	H6  TxnWindow `json:"h6"`
	H24 TxnWindow `json:"h24"`
}

// Volume - объем торгов в USD по окнам
type Volume struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// PriceChange - изменение цены в процентах по окнам
type PriceChange struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// Liquidity - ликвидность пары
type Liquidity struct {
	Usd   float64 `json:"usd"`
	Base  float64 `json:"base"`
	Quote float64 `json:"quote"`
}

// LiquidityUSD returns the pooled USD liquidity and whether the API
// reported it at all.
func (p Pair) LiquidityUSD() (float64, bool) {
	if p.Liquidity == nil {
		return 0, false
	}
	return p.Liquidity.Usd, true
}

// AgeHours returns the pair age relative to now and whether the creation
// timestamp is known.
func (p Pair) AgeHours(now time.Time) (float64, bool) {
	if p.PairCreatedAt == 0 {
		return 0, false
	}
	return now.Sub(time.UnixMilli(p.PairCreatedAt)).Hours(), true
}
