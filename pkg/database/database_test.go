package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLDriverName(t *testing.T) {
	tests := map[string]string{SQLite: "sqlite", Postgres: "pgx", MySQL: "mysql"}
	for driver, want := range tests {
		got, err := SQLDriverName(driver)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SQLDriverName("oracle")
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(context.Background(), SQLite, filepath.Join(t.TempDir(), "Banks.db"))
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), SQLite, "")
	assert.Error(t, err)
}
