package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/analytics"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/config"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/infra/metrics"
	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"
)

type Server struct {
	cfg    config.Config
	logger zerolog.Logger
	mux    *http.ServeMux
}

func New(cfg config.Config, logger zerolog.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

type analyzeResponse struct {
	File      string          `json:"file"`
	DepthPct  float64         `json:"depth_pct"`
	TargetQty float64         `json:"target_qty"`
	Stats     analytics.Stats `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze runs the full load+analyze pipeline against a CSV under the
// configured data dir. Each request loads its own book; nothing is shared or
// cached across calls.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	file := r.URL.Query().Get("file")
	if file == "" {
		writeError(w, http.StatusBadRequest, "missing file parameter")
		return
	}
	if filepath.IsAbs(file) || strings.Contains(file, "..") {
		writeError(w, http.StatusBadRequest, "file must be a plain relative path")
		return
	}

	depthPct, err := queryFloat(r, "depth_pct", s.cfg.Analysis.DepthPct)
	if err != nil || depthPct < 0 {
		writeError(w, http.StatusBadRequest, "depth_pct must be a number >= 0")
		return
	}
	targetQty, err := queryFloat(r, "target_qty", s.cfg.Analysis.TargetQty)
	if err != nil || targetQty <= 0 {
		writeError(w, http.StatusBadRequest, "target_qty must be a number > 0")
		return
	}

	path := filepath.Join(s.cfg.Server.DataDir, file)
	start := time.Now()

	book, err := orderbook.Load(path)
	if err != nil {
		metrics.BookLoadErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		s.logger.Warn().Err(err).Str("file", file).Msg("book load failed")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	metrics.BooksLoadedTotal.Inc()
	metrics.RowsParsedTotal.Add(float64(len(book.Bids) + len(book.Asks)))
	metrics.BookLevels.WithLabelValues(string(orderbook.SideBid)).Set(float64(len(book.Bids)))
	metrics.BookLevels.WithLabelValues(string(orderbook.SideAsk)).Set(float64(len(book.Asks)))

	stats, err := analytics.Analyze(book, depthPct, targetQty)
	if err != nil {
		metrics.AnalysisErrorsTotal.Inc()
		var liqErr *analytics.InsufficientLiquidityError
		if errors.As(err, &liqErr) {
			metrics.InsufficientLiqTotal.WithLabelValues(string(liqErr.Side)).Inc()
		}
		s.logger.Warn().Err(err).Str("file", file).Msg("analysis failed")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	metrics.AnalysesTotal.Inc()
	metrics.AnalysisLatencyMs.Observe(float64(time.Since(start).Milliseconds()))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(analyzeResponse{
		File:      file,
		DepthPct:  depthPct,
		TargetQty: targetQty,
		Stats:     stats,
	})
}

func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts NaN/Inf tokens; neither is a usable parameter
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s is not finite", key)
	}
	return v, nil
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, orderbook.ErrFileOpen):
		return "file_open"
	case errors.Is(err, orderbook.ErrMalformedRow):
		return "malformed_row"
	case errors.Is(err, orderbook.ErrInvalidSide):
		return "invalid_side"
	case errors.Is(err, orderbook.ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, orderbook.ErrEmptySide):
		return "empty_side"
	case errors.Is(err, orderbook.ErrCrossedBook):
		return "crossed_book"
	}
	return "other"
}
