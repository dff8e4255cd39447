package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/sales-ledger/internal/application/ports"
	"github.com/jhoicas/sales-ledger/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sqlx.DB
}

// NewTxRunner construye el runner con la conexión.
func NewTxRunner(db *sqlx.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}
