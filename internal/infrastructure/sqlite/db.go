package sqlite

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/sales-ledger/pkg/config"
)

// driverName nombre con el que modernc.org/sqlite se registra en database/sql.
const driverName = "sqlite"

// schema crea las tablas de forma idempotente. sale_date se guarda como texto ISO-8601 (YYYY-MM-DD).
const schema = `
CREATE TABLE IF NOT EXISTS Products (
	product_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	product_name TEXT    NOT NULL,
	price        REAL    NOT NULL,
	quantity     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS Sales (
	sale_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id    INTEGER NOT NULL,
	quantity_sold INTEGER NOT NULL,
	sale_date     TEXT    NOT NULL,
	total_amount  REAL    NOT NULL,
	FOREIGN KEY (product_id) REFERENCES Products (product_id)
);`

// Open abre el archivo SQLite indicado en la configuración, activa las claves foráneas
// y crea el esquema si no existe. Se usa una única conexión durante toda la vida del proceso.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate aplica el esquema sobre una conexión ya abierta.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}
