package report

import (
	"fmt"
	"strings"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/analytics"
)

const rule = "============================================"

// Render formats the stats block for the console.
func Render(s analytics.Stats, depthPct, targetQty float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "         ORDERBOOK ANALYSIS\n")
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "  Best Bid    : %.4f\n", s.BestBid)
	fmt.Fprintf(&b, "  Best Ask    : %.4f\n", s.BestAsk)
	fmt.Fprintf(&b, "  Mid Price   : %.4f\n", s.MidPrice)
	fmt.Fprintf(&b, "  Spread      : %.4f  (%.4f%%)\n", s.Spread, s.SpreadPct)
	fmt.Fprintf(&b, "--------------------------------------------\n")
	fmt.Fprintf(&b, "  Depth (±%.4f%% from mid):\n", depthPct)
	fmt.Fprintf(&b, "    Bids : %.4f units\n", s.BidDepth)
	fmt.Fprintf(&b, "    Asks : %.4f units\n", s.AskDepth)
	fmt.Fprintf(&b, "--------------------------------------------\n")
	fmt.Fprintf(&b, "  VWAP (qty = %.4f units):\n", targetQty)
	fmt.Fprintf(&b, "    Buy  : %.4f\n", s.VWAPBuy)
	fmt.Fprintf(&b, "    Sell : %.4f\n", s.VWAPSell)
	fmt.Fprintf(&b, "%s\n\n", rule)
	return b.String()
}
