package analytics

import "github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"

// Stats is a pure snapshot derived from one book; it holds no reference back.
type Stats struct {
	BestBid   float64 `json:"best_bid"`
	BestAsk   float64 `json:"best_ask"`
	MidPrice  float64 `json:"mid_price"`
	Spread    float64 `json:"spread"`
	SpreadPct float64 `json:"spread_pct"`
	BidDepth  float64 `json:"bid_depth"`
	AskDepth  float64 `json:"ask_depth"`
	VWAPBuy   float64 `json:"vwap_buy"`
	VWAPSell  float64 `json:"vwap_sell"`
}

// Analyze computes the full report from a loaded book. depthPct is the band
// width around mid in percent, targetQty the execution size for both VWAP
// sweeps. If either sweep fails the whole analysis fails; no partial Stats.
func Analyze(book *orderbook.Book, depthPct, targetQty float64) (Stats, error) {
	var s Stats
	s.BestBid = book.BestBid()
	s.BestAsk = book.BestAsk()
	s.MidPrice = (s.BestBid + s.BestAsk) / 2
	s.Spread = s.BestAsk - s.BestBid
	s.SpreadPct = s.Spread / s.MidPrice * 100

	lower := s.MidPrice * (1 - depthPct/100)
	upper := s.MidPrice * (1 + depthPct/100)
	s.BidDepth = Depth(book.Bids, lower, upper)
	s.AskDepth = Depth(book.Asks, lower, upper)

	buy, err := Sweep(orderbook.SideAsk, book.Asks, targetQty)
	if err != nil {
		return Stats{}, err
	}
	sell, err := Sweep(orderbook.SideBid, book.Bids, targetQty)
	if err != nil {
		return Stats{}, err
	}
	s.VWAPBuy = buy
	s.VWAPSell = sell
	return s, nil
}
