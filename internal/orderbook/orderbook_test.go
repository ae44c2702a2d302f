package orderbook

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSide(t *testing.T) {
	for _, raw := range []string{"bid", "BID", "Bid"} {
		s, err := ParseSide(raw)
		if err != nil || s != SideBid {
			t.Fatalf("ParseSide(%q) = %v, %v; want bid", raw, s, err)
		}
	}
	for _, raw := range []string{"ask", "ASK", "aSk"} {
		s, err := ParseSide(raw)
		if err != nil || s != SideAsk {
			t.Fatalf("ParseSide(%q) = %v, %v; want ask", raw, s, err)
		}
	}
	if _, err := ParseSide("buy"); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide for buy, got %v", err)
	}
}

func TestParseRowValid(t *testing.T) {
	ord, err := ParseRow([]string{" bid ", " 99.90 ", "23.41"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ord.Side != SideBid || ord.Price != 99.90 || ord.Size != 23.41 {
		t.Fatalf("unexpected order: %+v", ord)
	}
}

func TestParseRowEmptyField(t *testing.T) {
	_, err := ParseRow(strings.Split(",100.0,5", ","), 7)
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Fatalf("error should carry the line number: %v", err)
	}
}

func TestParseRowFieldCount(t *testing.T) {
	if _, err := ParseRow([]string{"bid", "100.0"}, 3); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow for 2 fields, got %v", err)
	}
	if _, err := ParseRow([]string{"bid", "100.0", "5", "x"}, 3); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("expected ErrMalformedRow for 4 fields, got %v", err)
	}
}

func TestParseRowInvalidSide(t *testing.T) {
	_, err := ParseRow(strings.Split("buy,100.0,5", ","), 4)
	if !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("error should carry the line number: %v", err)
	}
}

func TestParseRowInvalidNumbers(t *testing.T) {
	cases := []struct {
		row   string
		field string
	}{
		{"bid,-1.0,5", "price"},
		{"bid,0,5", "price"},
		{"bid,abc,5", "price"},
		{"bid,NaN,5", "price"},
		{"bid,+Inf,5", "price"},
		{"ask,100.0,-2", "size"},
		{"ask,100.0,0", "size"},
		{"ask,100.0,huge", "size"},
	}
	for _, tc := range cases {
		_, err := ParseRow(strings.Split(tc.row, ","), 2)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("row %q: expected ErrInvalidNumber, got %v", tc.row, err)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Fatalf("row %q: error should name field %s: %v", tc.row, tc.field, err)
		}
	}
}
