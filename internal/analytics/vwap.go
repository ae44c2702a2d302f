package analytics

import (
	"errors"
	"fmt"
	"math"

	"github.com/sqdFriskies/CEX-Orderbook-Spread-Analyzer/internal/orderbook"
)

var (
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	ErrInvalidTarget         = errors.New("target quantity must be > 0")
)

// InsufficientLiquidityError reports a sweep that could not fill its target.
// It matches ErrInsufficientLiquidity under errors.Is; errors.As exposes the
// failing side and target to callers that need them (metrics, diagnostics).
type InsufficientLiquidityError struct {
	Side   orderbook.Side
	Target float64
}

func (e *InsufficientLiquidityError) Error() string {
	return fmt.Sprintf("%v: cannot fill %v units from %s side", ErrInsufficientLiquidity, e.Target, e.Side)
}

func (e *InsufficientLiquidityError) Is(target error) bool {
	return target == ErrInsufficientLiquidity
}

// Sweep walks price levels in best-first order, consuming size from each level
// until target is filled, and returns the volume-weighted average price.
// The caller supplies levels already sorted best-first: ascending asks when
// buying, descending bids when selling. side is only used for error context.
func Sweep(side orderbook.Side, levelsBestFirst []orderbook.Order, target float64) (float64, error) {
	if target <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTarget, target)
	}
	remaining := target
	total := 0.0
	for _, lvl := range levelsBestFirst {
		if remaining <= 0 {
			break
		}
		filled := math.Min(remaining, lvl.Size)
		total += filled * lvl.Price
		remaining -= filled
	}
	if remaining > 0 {
		return 0, &InsufficientLiquidityError{Side: side, Target: target}
	}
	return total / target, nil
}
