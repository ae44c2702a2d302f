package orderbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Load reads a book snapshot from a CSV file on disk.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a complete CSV snapshot: one header line (skipped, never
// validated) followed by data rows. Blank lines are ignored. The returned
// book satisfies the sortedness and non-crossed invariants documented on Book.
func Read(rd io.Reader) (*Book, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1 // field count validated in ParseRow
	r.LazyQuotes = true

	book := &Book{}

	// header is line 1
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s", ErrEmptySide, SideBid)
		}
		return nil, readErr(err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readErr(err)
		}
		// csv.Reader drops fully empty lines itself; whitespace-only
		// lines come through as a single blank field
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		line, _ := r.FieldPos(0)
		ord, err := ParseRow(rec, line)
		if err != nil {
			return nil, err
		}
		if ord.Side == SideBid {
			book.Bids = append(book.Bids, ord)
		} else {
			book.Asks = append(book.Asks, ord)
		}
	}

	if len(book.Bids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySide, SideBid)
	}
	if len(book.Asks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySide, SideAsk)
	}

	// best-first order; rows at an equal price keep file order
	sort.SliceStable(book.Bids, func(i, j int) bool { return book.Bids[i].Price > book.Bids[j].Price })
	sort.SliceStable(book.Asks, func(i, j int) bool { return book.Asks[i].Price < book.Asks[j].Price })

	if book.BestBid() >= book.BestAsk() {
		return nil, fmt.Errorf("%w: best bid %.4f >= best ask %.4f", ErrCrossedBook, book.BestBid(), book.BestAsk())
	}
	return book, nil
}

func readErr(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: line %d: %v", ErrMalformedRow, pe.Line, pe.Err)
	}
	return fmt.Errorf("%w: %v", ErrMalformedRow, err)
}
