package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"ordersync/internal/application"
	"ordersync/internal/domain"
	"ordersync/internal/ports"
)

// SyncResult contains the outcome of a completed sync run
type SyncResult struct {
	Range   domain.DateRange
	Totals  []domain.SourceTotal // A first, then B
	Record  domain.SyncRecord
	RowRef  string
	Elapsed time.Duration
	DryRun  bool
	Message string
}

// SyncCommand resolves the date range, queries both sources and appends one
// summary row to the spreadsheet. Linear flow; any failure aborts the run
// before the terminal append, so nothing is ever partially written.
type SyncCommand struct {
	sourceA  ports.OrderSource
	sourceB  ports.OrderSource
	appender ports.RowAppender
	logger   *slog.Logger

	FromDate string
	ToDate   string
	DryRun   bool
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(sourceA, sourceB ports.OrderSource, appender ports.RowAppender, logger *slog.Logger, fromDate, toDate string, dryRun bool) *SyncCommand {
	return &SyncCommand{
		sourceA:  sourceA,
		sourceB:  sourceB,
		appender: appender,
		logger:   logger,
		FromDate: fromDate,
		ToDate:   toDate,
		DryRun:   dryRun,
	}
}

// Validate checks the date arguments without touching any external system
func (c *SyncCommand) Validate() error {
	_, err := application.ResolveRange(c.FromDate, c.ToDate)
	return err
}

// Execute runs the sync. The two source queries run as independent tasks
// joined before the row is built, so the columns are deterministic
// regardless of which query finishes first. Running twice with the same
// range appends two rows; there is deliberately no dedup key.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	start := time.Now()

	r, err := application.ResolveRange(c.FromDate, c.ToDate)
	if err != nil {
		return nil, err
	}
	c.logger.Info("range resolved",
		"from", r.From.Format(time.DateOnly),
		"to", r.To.Format(time.DateOnly),
		"days", r.Days())

	var amountA, amountB decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		amount, err := c.sourceA.FetchTotal(gctx, r)
		if err != nil {
			return err
		}
		amountA = amount
		c.logger.Info("source queried", "source", domain.SourceA, "total", amount.StringFixed(2))
		return nil
	})
	g.Go(func() error {
		amount, err := c.sourceB.FetchTotal(gctx, r)
		if err != nil {
			return err
		}
		amountB = amount
		c.logger.Info("source queried", "source", domain.SourceB, "total", amount.StringFixed(2))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rec := domain.NewSyncRecord(r, amountA, amountB)
	totals := []domain.SourceTotal{
		{Source: domain.SourceA, Range: r, Amount: amountA},
		{Source: domain.SourceB, Range: r, Amount: amountB},
	}

	if c.DryRun {
		return &SyncResult{
			Range:   r,
			Totals:  totals,
			Record:  rec,
			Elapsed: time.Since(start),
			DryRun:  true,
			Message: fmt.Sprintf("Dry run: would append %s  A=%s  B=%s", rec.RangeLabel, rec.AmountA.StringFixed(2), rec.AmountB.StringFixed(2)),
		}, nil
	}

	rowRef, err := c.appender.AppendRow(ctx, rec)
	if err != nil {
		return nil, err
	}
	c.logger.Info("row appended", "range", rec.RangeLabel, "row", rowRef)

	return &SyncResult{
		Range:   r,
		Totals:  totals,
		Record:  rec,
		RowRef:  rowRef,
		Elapsed: time.Since(start),
		Message: fmt.Sprintf("Appended %s  A=%s  B=%s", rec.RangeLabel, rec.AmountA.StringFixed(2), rec.AmountB.StringFixed(2)),
	}, nil
}
