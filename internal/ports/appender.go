package ports

import (
	"context"

	"ordersync/internal/domain"
)

// RowAppender appends one row to the external tabular store. Rows are only
// ever added after the last populated row; nothing is overwritten.
type RowAppender interface {
	// AppendRow returns a reference to where the row landed (e.g. the
	// updated cell range) when the backend reports one.
	AppendRow(ctx context.Context, rec domain.SyncRecord) (rowRef string, err error)
}
