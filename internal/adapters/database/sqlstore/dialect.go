package sqlstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/banks_etl/internal/apperrors"
	"github.com/SscSPs/banks_etl/pkg/config"
	"github.com/SscSPs/banks_etl/pkg/database"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	Driver string
}

// NewDialect returns the dialect for a DB_DRIVER value.
func NewDialect(driver string) (Dialect, error) {
	if _, err := database.SQLDriverName(driver); err != nil {
		return Dialect{}, err
	}
	return Dialect{Driver: driver}, nil
}

// Placeholder returns the bind parameter for the n-th argument, starting at 1.
func (d Dialect) Placeholder(n int) string {
	if d.Driver == database.Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Placeholders returns a comma separated list of count bind parameters.
func (d Dialect) Placeholders(count int) string {
	ph := make([]string, count)
	for i := range ph {
		ph[i] = d.Placeholder(i + 1)
	}
	return strings.Join(ph, ", ")
}

func checkIdentifier(name string) error {
	if !config.IsSQLIdentifier(name) {
		return fmt.Errorf("%w: %q is not a valid SQL identifier", apperrors.ErrValidation, name)
	}
	return nil
}
