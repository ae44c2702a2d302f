package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	BooksLoadedTotal     = prometheus.NewCounter(prometheus.CounterOpts{Name: "books_loaded_total", Help: "Orderbook files loaded successfully"})
	BookLoadErrorsTotal  = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "book_load_errors_total", Help: "Load failures by kind"}, []string{"kind"})
	RowsParsedTotal      = prometheus.NewCounter(prometheus.CounterOpts{Name: "rows_parsed_total", Help: "Data rows parsed into orders"})
	BookLevels           = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "book_levels", Help: "Price levels in the last loaded book by side"}, []string{"side"})
	AnalysesTotal        = prometheus.NewCounter(prometheus.CounterOpts{Name: "analyses_total", Help: "Completed analyses"})
	AnalysisErrorsTotal  = prometheus.NewCounter(prometheus.CounterOpts{Name: "analysis_errors_total", Help: "Failed analyses"})
	AnalysisLatencyMs    = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "analysis_latency_ms", Help: "Load+analyze latency", Buckets: prometheus.LinearBuckets(1, 5, 20)})
	InsufficientLiqTotal = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "insufficient_liquidity_total", Help: "VWAP sweeps rejected for insufficient liquidity, by side"}, []string{"side"})
)

func Init(logger zerolog.Logger) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	toRegister := []prometheus.Collector{
		BooksLoadedTotal, BookLoadErrorsTotal, RowsParsedTotal, BookLevels,
		AnalysesTotal, AnalysisErrorsTotal, AnalysisLatencyMs, InsufficientLiqTotal,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		_ = reg.Register(c)
	}
	logger.Info().Msg("Prometheus metrics initialized")
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
