package analytics

import "github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"

// Depth sums resting size over all orders whose price lies in the closed
// interval [minPrice, maxPrice]. An empty result set yields 0.
func Depth(orders []orderbook.Order, minPrice, maxPrice float64) float64 {
	total := 0.0
	for _, ord := range orders {
		if ord.Price >= minPrice && ord.Price <= maxPrice {
			total += ord.Size
		}
	}
	return total
}
