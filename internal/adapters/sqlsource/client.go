package sqlsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"ordersync/internal/application"
	"ordersync/internal/config"
	"ordersync/internal/domain"
	"ordersync/internal/ports"
)

// Per-driver aggregation queries. COALESCE keeps an empty range at zero
// instead of NULL, so the caller never sees an absent total.
const (
	postgresQuery = `SELECT COALESCE(SUM(order_total), 0) FROM orders WHERE order_date BETWEEN $1 AND $2`
	sqliteQuery   = `SELECT COALESCE(SUM(order_total), 0) FROM orders WHERE order_date BETWEEN ? AND ?`
)

// Client implements ports.OrderSource over database/sql. Each FetchTotal
// opens exactly one connection, runs the aggregation and closes.
type Client struct {
	source  domain.SourceID
	label   string
	driver  string
	dsn     string
	query   string
	timeout time.Duration
}

// Ensure Client implements OrderSource
var _ ports.OrderSource = (*Client)(nil)

// New builds a client for one configured source. Supported drivers are
// postgres (keyword DSN from host/port/database/credentials) and sqlite
// (DSN is the database file path).
func New(source domain.SourceID, cfg config.SourceConfig, timeout time.Duration) (*Client, error) {
	c := &Client{
		source:  source,
		label:   cfg.Label,
		driver:  cfg.Driver,
		timeout: timeout,
	}

	switch cfg.Driver {
	case "postgres":
		c.driver = "pgx"
		c.dsn = fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s",
			cfg.Host, cfg.Port, cfg.Database, cfg.Username, cfg.Password)
		c.query = postgresQuery
	case "sqlite":
		c.dsn = cfg.Path
		c.query = sqliteQuery
	default:
		return nil, fmt.Errorf("unsupported source driver: %q", cfg.Driver)
	}

	return c, nil
}

// FetchTotal returns the summed order total for orders whose order date
// falls within [From, To] inclusive. Read-only; no transaction needed.
func (c *Client) FetchTotal(ctx context.Context, r domain.DateRange) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	db, err := sql.Open(c.driver, c.dsn)
	if err != nil {
		return decimal.Zero, c.wrap(ctx, application.ErrConnection, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return decimal.Zero, c.wrap(ctx, application.ErrConnection, err)
	}

	var total decimal.Decimal
	from := r.From.Format(time.DateOnly)
	to := r.To.Format(time.DateOnly)
	if err := db.QueryRowContext(ctx, c.query, from, to).Scan(&total); err != nil {
		return decimal.Zero, c.wrap(ctx, application.ErrQuery, err)
	}

	return total, nil
}

// wrap classifies a failure, preferring the timeout kind when the call
// deadline expired mid-operation.
func (c *Client) wrap(ctx context.Context, kind error, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		kind = application.ErrTimeout
	}
	return &application.SourceError{Source: c.source, Label: c.label, Kind: kind, Err: err}
}
