package main

import (
	"flag"
	"os"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/config"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/generator"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/log"
)

func main() {
	cfg := config.Load()
	logger := log.NewLogger(cfg)

	output := flag.String("output", cfg.Generator.Output, "output CSV path")
	levels := flag.Int("levels", cfg.Generator.Levels, "price levels per side")
	mid := flag.Float64("mid", cfg.Generator.MidPrice, "mid price")
	tick := flag.Float64("tick", cfg.Generator.TickSize, "price step between levels")
	minSize := flag.Float64("min-size", cfg.Generator.MinSize, "minimum order size")
	maxSize := flag.Float64("max-size", cfg.Generator.MaxSize, "maximum order size")
	flag.Parse()
	if flag.NArg() > 0 {
		*output = flag.Arg(0)
	}

	gen := generator.Config{
		Output:   *output,
		Levels:   *levels,
		MidPrice: *mid,
		TickSize: *tick,
		MinSize:  *minSize,
		MaxSize:  *maxSize,
	}
	if err := generator.Generate(gen); err != nil {
		logger.Error().Err(err).Str("output", *output).Msg("generation failed")
		os.Exit(1)
	}
	logger.Info().
		Str("output", *output).
		Int("levels", *levels).
		Float64("mid", *mid).
		Msg("orderbook generated")
}
