package domain

import "github.com/shopspring/decimal"

// SourceID identifies one of the two order data sources.
type SourceID string

const (
	SourceA SourceID = "A"
	SourceB SourceID = "B"
)

// SourceTotal is the aggregated order total one source reported for a range.
// Amount is zero (never absent) when no orders match the range.
type SourceTotal struct {
	Source SourceID
	Range  DateRange
	Amount decimal.Decimal
}

// SyncRecord is the single row appended to the spreadsheet. Column order is
// fixed: range label, source A amount, source B amount.
type SyncRecord struct {
	RangeLabel string
	AmountA    decimal.Decimal
	AmountB    decimal.Decimal
}

// NewSyncRecord builds the row from both totals. Amounts land in their
// columns by source identity, not by the order the queries finished.
func NewSyncRecord(r DateRange, amountA, amountB decimal.Decimal) SyncRecord {
	return SyncRecord{
		RangeLabel: r.Label(),
		AmountA:    amountA,
		AmountB:    amountB,
	}
}

// Cells returns the ordered cell values for the appended row. Amounts are
// numeric so spreadsheet formulas can sum the columns.
func (rec SyncRecord) Cells() []any {
	return []any{
		rec.RangeLabel,
		rec.AmountA.InexactFloat64(),
		rec.AmountB.InexactFloat64(),
	}
}
