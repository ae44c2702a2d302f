package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/analytics"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/config"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/log"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/report"
)

func main() {
	cfg := config.Load()
	logger := log.NewLogger(cfg)

	file := flag.String("file", "orderbook.csv", "path to the orderbook CSV")
	depthPct := flag.Float64("depth-pct", cfg.Analysis.DepthPct, "depth band around mid, in percent")
	targetQty := flag.Float64("target-qty", cfg.Analysis.TargetQty, "target quantity for VWAP sweeps")
	flag.Parse()
	if flag.NArg() > 0 {
		*file = flag.Arg(0)
	}
	if math.IsNaN(*depthPct) || math.IsInf(*depthPct, 0) || *depthPct < 0 {
		logger.Error().Float64("depth_pct", *depthPct).Msg("depth-pct must be a finite number >= 0")
		os.Exit(1)
	}
	if math.IsNaN(*targetQty) || math.IsInf(*targetQty, 0) || *targetQty <= 0 {
		logger.Error().Float64("target_qty", *targetQty).Msg("target-qty must be a finite number > 0")
		os.Exit(1)
	}

	book, err := orderbook.Load(*file)
	if err != nil {
		logger.Error().Err(err).Str("file", *file).Msg("failed to load orderbook")
		os.Exit(1)
	}

	stats, err := analytics.Analyze(book, *depthPct, *targetQty)
	if err != nil {
		logger.Error().Err(err).Str("file", *file).Msg("analysis failed")
		os.Exit(1)
	}

	fmt.Print(report.Render(stats, *depthPct, *targetQty))
}
