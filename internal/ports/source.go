package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"ordersync/internal/domain"
)

// OrderSource provides the aggregated order total for a date range from one
// external relational store.
type OrderSource interface {
	// FetchTotal opens one connection, runs the aggregation over
	// [From, To] inclusive and closes. A range with no matching orders
	// yields zero, never an absent value.
	FetchTotal(ctx context.Context, r domain.DateRange) (decimal.Decimal, error)
}
