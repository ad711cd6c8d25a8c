package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/SscSPs/banks_etl/internal/apperrors"
	portsrepo "github.com/SscSPs/banks_etl/internal/core/ports/repositories"
)

// DefaultUserAgent identifies the scraper to the source site.
const DefaultUserAgent = "banks-etl/1.0 (+https://github.com/SscSPs/banks_etl)"

// HTMLTableSource fetches a page and reads the cells of the first table with a given class.
type HTMLTableSource struct {
	// client for HTTP requests
	client *http.Client

	// tableClass the CSS class selecting the table, e.g. "wikitable"
	tableClass string

	userAgent string
}

// NewHTMLTableSource creates an HTMLTableSource that gives up on requests after timeout.
func NewHTMLTableSource(tableClass string, timeout time.Duration) *HTMLTableSource {
	return &HTMLTableSource{
		client:     &http.Client{Timeout: timeout},
		tableClass: tableClass,
		userAgent:  DefaultUserAgent,
	}
}

var _ portsrepo.TableSource = (*HTMLTableSource)(nil)

// FetchRows downloads url and returns the td texts of every tr in the first matching table.
// Rows made only of th cells, such as the header, come back empty.
func (s *HTMLTableSource) FetchRows(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return TableRows(doc, s.tableClass)
}

// TableRows extracts the rows of the first table.<class> in doc.
func TableRows(doc *goquery.Document, class string) ([][]string, error) {
	table := doc.Find("table." + class).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: table.%s", apperrors.ErrTableNotFound, class)
	}

	// Nested tables would otherwise contribute their rows too.
	rows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})

	out := make([][]string, 0, rows.Length())
	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(td.Text()))
		})
		out = append(out, texts)
	})
	return out, nil
}
