package repositories

import "context"

// TableSource fetches the raw cell text of an HTML table.
type TableSource interface {
	// FetchRows returns every row of the first matching table, header included.
	// Each row holds the trimmed text of its data cells.
	FetchRows(ctx context.Context, url string) ([][]string, error)
}
