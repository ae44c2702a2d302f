package analytics

import (
	"testing"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"
)

func bids(levels ...[2]float64) []orderbook.Order {
	out := make([]orderbook.Order, 0, len(levels))
	for _, l := range levels {
		out = append(out, orderbook.Order{Side: orderbook.SideBid, Price: l[0], Size: l[1]})
	}
	return out
}

func asks(levels ...[2]float64) []orderbook.Order {
	out := make([]orderbook.Order, 0, len(levels))
	for _, l := range levels {
		out = append(out, orderbook.Order{Side: orderbook.SideAsk, Price: l[0], Size: l[1]})
	}
	return out
}

func TestDepthClosedInterval(t *testing.T) {
	orders := bids([2]float64{100, 10}, [2]float64{99, 5}, [2]float64{98, 7})
	if got := Depth(orders, 99, 100); got != 15 {
		t.Fatalf("Depth[99,100] = %v, want 15 (band endpoints inclusive)", got)
	}
	if got := Depth(orders, 98, 100); got != 22 {
		t.Fatalf("Depth[98,100] = %v, want 22", got)
	}
	if got := Depth(orders, 100.5, 101); got != 0 {
		t.Fatalf("empty band should yield 0, got %v", got)
	}
	if got := Depth(nil, 0, 1000); got != 0 {
		t.Fatalf("no orders should yield 0, got %v", got)
	}
}

func TestDepthMonotonicWidening(t *testing.T) {
	orders := asks([2]float64{100.1, 3}, [2]float64{100.2, 6}, [2]float64{100.5, 2}, [2]float64{101, 9})
	prev := 0.0
	for widen := 0.0; widen <= 1.0; widen += 0.05 {
		got := Depth(orders, 100.2-widen, 100.4+widen)
		if got < prev {
			t.Fatalf("widening the band decreased depth: %v -> %v", prev, got)
		}
		prev = got
	}
}
