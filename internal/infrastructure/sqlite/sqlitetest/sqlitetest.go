// Package sqlitetest abre bases SQLite temporarias para tests.
package sqlitetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sales-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/sales-ledger/pkg/config"
)

// Open crea un archivo SQLite nuevo dentro de t.TempDir() con el esquema aplicado.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	return OpenPath(t, filepath.Join(t.TempDir(), "ledger.db"))
}

// OpenPath abre (o reabre) el archivo indicado y lo cierra al terminar el test.
func OpenPath(t testing.TB, path string) *sqlx.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), config.DBConfig{Path: path})
	require.NoError(t, err, "debe abrirse la base SQLite de prueba")
	t.Cleanup(func() { _ = db.Close() })
	return db
}
