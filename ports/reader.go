package ports

import (
	"context"

	"groupstat/domain/grouped"
)

// RowSource supplies raw midpoint/frequency rows, e.g. from a spreadsheet.
type RowSource interface {
	ReadRows(ctx context.Context) ([]grouped.RawRow, error)
	// Name describes the source for logs, e.g. a file path.
	Name() string
}
