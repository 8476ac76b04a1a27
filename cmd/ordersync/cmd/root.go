package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ordersync/internal/adapters/gsheet"
	"ordersync/internal/adapters/sqlsource"
	"ordersync/internal/adapters/xlsx"
	"ordersync/internal/application"
	"ordersync/internal/application/commands"
	"ordersync/internal/config"
	"ordersync/internal/domain"
	"ordersync/internal/metrics"
	"ordersync/internal/ports"
)

// Exit codes per failure category
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitConfig     = 3
	exitSource     = 4
	exitSheet      = 5
)

var (
	fromDate string
	toDate   string
	dryRun   bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "ordersync",
	Short: "Append order totals from two databases to a shared spreadsheet",
	Long: `ordersync queries two order databases for the total order amount over a
date range and appends one summary row (range, total A, total B) to a
shared spreadsheet for manual reconciliation.

Runs once per invocation and exits. Running twice with the same range
appends two rows; the sheet is an append-only ledger with no dedup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

// Execute runs the root command, mapping each error category to its exit code
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:")+" "+err.Error())
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.Flags().StringVar(&fromDate, "from-date", "", "start date in YYYY-MM-DD format (default: today)")
	rootCmd.Flags().StringVar(&toDate, "to-date", "", "end date in YYYY-MM-DD format (default: from-date)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "query both sources but append nothing")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runSync(cobraCmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString()[:8])

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cobraCmd.Context()

	sourceA, err := sqlsource.New(domain.SourceA, cfg.SourceA, cfg.Timeout)
	if err != nil {
		return err
	}
	sourceB, err := sqlsource.New(domain.SourceB, cfg.SourceB, cfg.Timeout)
	if err != nil {
		return err
	}
	appender, err := newAppender(ctx, cfg)
	if err != nil {
		return err
	}

	sync := commands.NewSyncCommand(sourceA, sourceB, appender, logger, fromDate, toDate, dryRun)
	if err := sync.Validate(); err != nil {
		return err
	}

	result, err := sync.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Println(renderResult(result))

	if cfg.PushgatewayURL != "" && !result.DryRun {
		pusher := metrics.NewPusher(cfg.PushgatewayURL, cfg.PushgatewayJob)
		if err := pusher.PushSuccess(result); err != nil {
			logger.Warn("metrics push failed", "gateway", cfg.PushgatewayURL, "error", err)
		}
	}

	return nil
}

func newAppender(ctx context.Context, cfg *config.Config) (ports.RowAppender, error) {
	if cfg.Sheet.Backend == "xlsx" {
		return xlsx.New(cfg.Sheet.XLSXPath, cfg.Sheet.SheetName), nil
	}
	return gsheet.New(ctx, cfg.Sheet.SpreadsheetID, cfg.Sheet.CredentialsFile, cfg.Sheet.SheetName)
}

func exitCode(err error) int {
	var (
		validationErr *application.ValidationError
		configErr     *application.ConfigError
		sourceErr     *application.SourceError
		sheetErr      *application.SheetError
	)
	switch {
	case errors.As(err, &validationErr):
		return exitValidation
	case errors.As(err, &configErr):
		return exitConfig
	case errors.As(err, &sourceErr):
		return exitSource
	case errors.As(err, &sheetErr):
		return exitSheet
	}
	return exitFailure
}
