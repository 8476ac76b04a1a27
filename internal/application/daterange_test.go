package application

import (
	"errors"
	"testing"
	"time"
)

func TestResolveRange(t *testing.T) {
	today := time.Date(2025, 12, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		fromDate string
		toDate   string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{
			name:     "no arguments defaults to today",
			wantFrom: "2025-12-15",
			wantTo:   "2025-12-15",
		},
		{
			name:     "only from gives single day range",
			fromDate: "2025-12-10",
			wantFrom: "2025-12-10",
			wantTo:   "2025-12-10",
		},
		{
			name:     "both dates kept unchanged",
			fromDate: "2025-12-01",
			toDate:   "2025-12-10",
			wantFrom: "2025-12-01",
			wantTo:   "2025-12-10",
		},
		{
			name:     "from equals to",
			fromDate: "2025-12-10",
			toDate:   "2025-12-10",
			wantFrom: "2025-12-10",
			wantTo:   "2025-12-10",
		},
		{
			name:    "only to is rejected",
			toDate:  "2025-12-10",
			wantErr: true,
		},
		{
			name:     "inverted range is rejected",
			fromDate: "2025-12-10",
			toDate:   "2025-12-01",
			wantErr:  true,
		},
		{
			name:     "unparseable from date",
			fromDate: "10/12/2025",
			wantErr:  true,
		},
		{
			name:     "unparseable to date",
			fromDate: "2025-12-01",
			toDate:   "not-a-date",
			wantErr:  true,
		},
		{
			name:     "impossible calendar date",
			fromDate: "2025-02-30",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolveRange(tt.fromDate, tt.toDate, today)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolveRange(%q, %q) = %v, want error", tt.fromDate, tt.toDate, r)
				}
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("got %T, want *ValidationError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("resolveRange(%q, %q) error: %v", tt.fromDate, tt.toDate, err)
			}
			if got := r.From.Format(time.DateOnly); got != tt.wantFrom {
				t.Errorf("From = %s, want %s", got, tt.wantFrom)
			}
			if got := r.To.Format(time.DateOnly); got != tt.wantTo {
				t.Errorf("To = %s, want %s", got, tt.wantTo)
			}
		})
	}
}

func TestResolveRangeUsesWallClockToday(t *testing.T) {
	r, err := ResolveRange("", "")
	if err != nil {
		t.Fatalf("ResolveRange error: %v", err)
	}

	want := time.Now().Format(time.DateOnly)
	if got := r.From.Format(time.DateOnly); got != want {
		t.Errorf("From = %s, want %s", got, want)
	}
	if !r.From.Equal(r.To) {
		t.Errorf("default range is not a single day: %v..%v", r.From, r.To)
	}
}
