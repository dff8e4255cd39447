package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
	"github.com/jhoicas/sales-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre SQLite (usable con db o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar db o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// saleLineRow fila del JOIN Sales/Products; sale_date llega como texto.
type saleLineRow struct {
	ID           int64           `db:"sale_id"`
	ProductID    int64           `db:"product_id"`
	QuantitySold int             `db:"quantity_sold"`
	SaleDate     string          `db:"sale_date"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	ProductName  string          `db:"product_name"`
}

// Create persiste una venta y devuelve el ID asignado. Si el producto no existe devuelve domain.ErrNotFound.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO Sales (product_id, quantity_sold, sale_date, total_amount) VALUES (?, ?, ?, ?)`,
		sale.ProductID, sale.QuantitySold, sale.SaleDate.Format(entity.SaleDateLayout), sale.TotalAmount.InexactFloat64(),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, storageErr("insert sale", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert sale", err)
	}
	sale.ID = id
	return id, nil
}

// ListWithProduct lista las ventas con el nombre del producto, ordenadas por ID de venta.
func (r *SaleRepo) ListWithProduct(ctx context.Context) ([]*entity.SaleLine, error) {
	var rows []saleLineRow
	err := sqlx.SelectContext(ctx, r.q, &rows, `
		SELECT s.sale_id, s.product_id, s.quantity_sold, s.sale_date, s.total_amount, p.product_name
		FROM Sales s
		JOIN Products p ON p.product_id = s.product_id
		ORDER BY s.sale_id`)
	if err != nil {
		return nil, storageErr("list sales", err)
	}
	list := make([]*entity.SaleLine, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(entity.SaleDateLayout, row.SaleDate)
		if err != nil {
			return nil, storageErr("parse sale_date", err)
		}
		list = append(list, &entity.SaleLine{
			Sale: entity.Sale{
				ID:           row.ID,
				ProductID:    row.ProductID,
				QuantitySold: row.QuantitySold,
				SaleDate:     date,
				TotalAmount:  row.TotalAmount,
			},
			ProductName: row.ProductName,
		})
	}
	return list, nil
}

// DeleteByProduct elimina todas las ventas de un producto y devuelve cuántas se borraron.
func (r *SaleRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM Sales WHERE product_id = ?`, productID)
	if err != nil {
		return 0, storageErr("delete sales", err)
	}
	return rowsAffected(res, "delete sales")
}
