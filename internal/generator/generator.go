package generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
)

var ErrInvalidConfig = errors.New("invalid generator config")

// Config describes one synthetic book: Levels price levels per side around
// MidPrice, spaced by TickSize, with sizes drawn uniformly from
// [MinSize, MaxSize].
type Config struct {
	Output   string
	Levels   int
	MidPrice float64
	TickSize float64
	MinSize  float64
	MaxSize  float64
}

func (c Config) validate() error {
	if c.Levels < 1 {
		return fmt.Errorf("%w: levels must be >= 1, got %d", ErrInvalidConfig, c.Levels)
	}
	if c.TickSize <= 0 {
		return fmt.Errorf("%w: tick size must be > 0, got %v", ErrInvalidConfig, c.TickSize)
	}
	if c.MinSize <= 0 || c.MaxSize < c.MinSize {
		return fmt.Errorf("%w: need 0 < min size <= max size, got [%v, %v]", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	// deepest bid must stay positive
	if c.MidPrice <= float64(c.Levels)*c.TickSize {
		return fmt.Errorf("%w: mid price %v too low for %d levels at tick %v", ErrInvalidConfig, c.MidPrice, c.Levels, c.TickSize)
	}
	return nil
}

// Generate writes a synthetic book CSV to cfg.Output. Best bid sits one tick
// below mid, best ask one tick above, so the result is never crossed.
func Generate(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot open file for writing: %w", err)
	}
	if err := writeBook(f, cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeBook(w io.Writer, cfg Config) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"side", "price", "size"}); err != nil {
		return err
	}
	for i := 1; i <= cfg.Levels; i++ {
		price := cfg.MidPrice - float64(i)*cfg.TickSize
		if err := cw.Write(row("bid", price, randSize(cfg))); err != nil {
			return err
		}
	}
	for i := 1; i <= cfg.Levels; i++ {
		price := cfg.MidPrice + float64(i)*cfg.TickSize
		if err := cw.Write(row("ask", price, randSize(cfg))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(side string, price, size float64) []string {
	return []string{
		side,
		strconv.FormatFloat(price, 'f', 2, 64),
		strconv.FormatFloat(size, 'f', 2, 64),
	}
}

func randSize(cfg Config) float64 {
	return cfg.MinSize + rand.Float64()*(cfg.MaxSize-cfg.MinSize)
}
