package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/sales-ledger/internal/domain"
)

// Querier abstrae *sqlx.DB y *sqlx.Tx para que los repositorios funcionen dentro o fuera de una transacción.
type Querier interface {
	sqlx.ExecerContext
	sqlx.QueryerContext
}

// storageErr envuelve un error del driver para que errors.Is(err, domain.ErrStorage) sea true.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (SQLITE_CONSTRAINT_FOREIGNKEY).
func isForeignKeyViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr(op, err)
	}
	return n, nil
}

