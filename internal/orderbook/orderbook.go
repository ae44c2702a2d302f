package orderbook

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrFileOpen      = errors.New("cannot open orderbook file")
	ErrMalformedRow  = errors.New("malformed row")
	ErrInvalidSide   = errors.New("unknown order side")
	ErrInvalidNumber = errors.New("value must be a finite number > 0")
	ErrEmptySide     = errors.New("no orders on side")
	ErrCrossedBook   = errors.New("crossed book")
)

// Side of a resting order.
type Side string

const (
	SideBid Side = "bid"
	SideAsk Side = "ask"
)

// Order is one resting level parsed from a CSV row. Never mutated after parse.
type Order struct {
	Side  Side    `json:"side"`
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// Book holds one side-partitioned snapshot.
// Invariant after Load: Bids sorted strictly descending by price, Asks strictly
// ascending, both non-empty, and Bids[0].Price < Asks[0].Price. Index 0 is
// always the best price on each side.
type Book struct {
	Bids []Order `json:"bids"`
	Asks []Order `json:"asks"`
}

func (b *Book) BestBid() float64 { return b.Bids[0].Price }
func (b *Book) BestAsk() float64 { return b.Asks[0].Price }

// ParseSide matches the side token case-insensitively against bid/ask.
func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(raw) {
	case "bid":
		return SideBid, nil
	case "ask":
		return SideAsk, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSide, raw)
}

// ParseRow converts the comma-split fields of one data line into an Order.
// line is the 1-based physical line number, used only for error context.
func ParseRow(record []string, line int) (Order, error) {
	if len(record) != 3 {
		return Order{}, fmt.Errorf("%w: line %d has %d fields, want 3", ErrMalformedRow, line, len(record))
	}
	sideStr := strings.TrimSpace(record[0])
	priceStr := strings.TrimSpace(record[1])
	sizeStr := strings.TrimSpace(record[2])
	if sideStr == "" || priceStr == "" || sizeStr == "" {
		return Order{}, fmt.Errorf("%w: line %d has empty fields", ErrMalformedRow, line)
	}

	side, err := ParseSide(sideStr)
	if err != nil {
		return Order{}, fmt.Errorf("line %d: %w", line, err)
	}
	price, err := parsePositive(priceStr, "price")
	if err != nil {
		return Order{}, fmt.Errorf("line %d: %w", line, err)
	}
	size, err := parsePositive(sizeStr, "size")
	if err != nil {
		return Order{}, fmt.Errorf("line %d: %w", line, err)
	}
	return Order{Side: side, Price: price, Size: size}, nil
}

func parsePositive(raw, field string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: field %s: %q", ErrInvalidNumber, field, raw)
	}
	return v, nil
}
