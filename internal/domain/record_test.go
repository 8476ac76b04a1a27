package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateRangeLabel(t *testing.T) {
	tests := []struct {
		name string
		r    DateRange
		want string
	}{
		{
			name: "single day renders as one date",
			r:    DateRange{From: date(2025, 12, 10), To: date(2025, 12, 10)},
			want: "2025-12-10",
		},
		{
			name: "multi day renders with separator",
			r:    DateRange{From: date(2025, 12, 1), To: date(2025, 12, 10)},
			want: "2025-12-01..2025-12-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	r := DateRange{From: date(2025, 12, 1), To: date(2025, 12, 10)}
	if got := r.Days(); got != 10 {
		t.Errorf("Days() = %d, want 10", got)
	}

	single := DateRange{From: date(2025, 12, 10), To: date(2025, 12, 10)}
	if got := single.Days(); got != 1 {
		t.Errorf("Days() = %d, want 1", got)
	}
}

func TestNewSyncRecord(t *testing.T) {
	r := DateRange{From: date(2025, 12, 10), To: date(2025, 12, 10)}
	rec := NewSyncRecord(r, decimal.RequireFromString("150.00"), decimal.RequireFromString("275.50"))

	if rec.RangeLabel != "2025-12-10" {
		t.Errorf("RangeLabel = %q, want %q", rec.RangeLabel, "2025-12-10")
	}
	if rec.AmountA.StringFixed(2) != "150.00" {
		t.Errorf("AmountA = %s, want 150.00", rec.AmountA)
	}
	if rec.AmountB.StringFixed(2) != "275.50" {
		t.Errorf("AmountB = %s, want 275.50", rec.AmountB)
	}
}

func TestSyncRecordCells(t *testing.T) {
	r := DateRange{From: date(2025, 12, 10), To: date(2025, 12, 10)}
	rec := NewSyncRecord(r, decimal.RequireFromString("150.00"), decimal.RequireFromString("275.50"))

	cells := rec.Cells()
	if len(cells) != 3 {
		t.Fatalf("len(Cells()) = %d, want 3", len(cells))
	}
	if cells[0] != "2025-12-10" {
		t.Errorf("cells[0] = %v, want 2025-12-10", cells[0])
	}
	if cells[1] != 150.00 {
		t.Errorf("cells[1] = %v, want 150.00", cells[1])
	}
	if cells[2] != 275.50 {
		t.Errorf("cells[2] = %v, want 275.50", cells[2])
	}
}
