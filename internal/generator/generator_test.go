package generator

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"
)

func TestGenerateRoundTrip(t *testing.T) {
	cfg := Config{
		Output:   filepath.Join(t.TempDir(), "book.csv"),
		Levels:   10,
		MidPrice: 100.0,
		TickSize: 0.10,
		MinSize:  1.0,
		MaxSize:  50.0,
	}
	if err := Generate(cfg); err != nil {
		t.Fatalf("generate: %v", err)
	}

	book, err := orderbook.Load(cfg.Output)
	if err != nil {
		t.Fatalf("generated file must load cleanly: %v", err)
	}
	if len(book.Bids) != cfg.Levels || len(book.Asks) != cfg.Levels {
		t.Fatalf("expected %d levels per side, got %d/%d", cfg.Levels, len(book.Bids), len(book.Asks))
	}
	// best bid one tick below mid, best ask one tick above (2-decimal rendering)
	if math.Abs(book.BestBid()-(cfg.MidPrice-cfg.TickSize)) > 0.005 {
		t.Fatalf("best bid = %v, want ~%v", book.BestBid(), cfg.MidPrice-cfg.TickSize)
	}
	if math.Abs(book.BestAsk()-(cfg.MidPrice+cfg.TickSize)) > 0.005 {
		t.Fatalf("best ask = %v, want ~%v", book.BestAsk(), cfg.MidPrice+cfg.TickSize)
	}
	for _, ord := range append(append([]orderbook.Order{}, book.Bids...), book.Asks...) {
		if ord.Size < cfg.MinSize-0.005 || ord.Size > cfg.MaxSize+0.005 {
			t.Fatalf("size %v outside [%v, %v]", ord.Size, cfg.MinSize, cfg.MaxSize)
		}
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "book.csv")
	cases := []Config{
		{Output: out, Levels: 0, MidPrice: 100, TickSize: 0.1, MinSize: 1, MaxSize: 50},
		{Output: out, Levels: 10, MidPrice: 100, TickSize: 0, MinSize: 1, MaxSize: 50},
		{Output: out, Levels: 10, MidPrice: 100, TickSize: 0.1, MinSize: 0, MaxSize: 50},
		{Output: out, Levels: 10, MidPrice: 100, TickSize: 0.1, MinSize: 5, MaxSize: 1},
		{Output: out, Levels: 10, MidPrice: 0.5, TickSize: 0.1, MinSize: 1, MaxSize: 50},
	}
	for i, cfg := range cases {
		if err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}
