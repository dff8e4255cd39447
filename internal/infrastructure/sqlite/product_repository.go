package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/sales-ledger/internal/domain/entity"
	"github.com/jhoicas/sales-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `product_id, product_name, price, quantity`

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con db o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar db o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y devuelve el ID asignado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO Products (product_name, price, quantity) VALUES (?, ?, ?)`,
		product.Name, product.Price.InexactFloat64(), product.Quantity,
	)
	if err != nil {
		return 0, storageErr("insert product", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert product", err)
	}
	product.ID = id
	return id, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := sqlx.GetContext(ctx, r.q, &p,
		`SELECT `+productColumns+` FROM Products WHERE product_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product", err)
	}
	return &p, nil
}

// List devuelve todos los productos ordenados por ID ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	if err := sqlx.SelectContext(ctx, r.q, &list,
		`SELECT `+productColumns+` FROM Products ORDER BY product_id`); err != nil {
		return nil, storageErr("list products", err)
	}
	return list, nil
}

// Update sobrescribe nombre, precio y cantidad en una sola sentencia.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE Products SET product_name = ?, price = ?, quantity = ? WHERE product_id = ?`,
		product.Name, product.Price.InexactFloat64(), product.Quantity, product.ID,
	)
	if err != nil {
		return false, storageErr("update product", err)
	}
	n, err := rowsAffected(res, "update product")
	return n > 0, err
}

// DecrementStock resta qty de las existencias; la condición quantity >= qty impide dejar stock negativo.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE Products SET quantity = quantity - ? WHERE product_id = ? AND quantity >= ?`,
		qty, id, qty,
	)
	if err != nil {
		return false, storageErr("decrement stock", err)
	}
	n, err := rowsAffected(res, "decrement stock")
	return n > 0, err
}

// Delete elimina un producto por ID. Las ventas asociadas deben borrarse antes (misma tx).
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM Products WHERE product_id = ?`, id)
	if err != nil {
		return false, storageErr("delete product", err)
	}
	n, err := rowsAffected(res, "delete product")
	return n > 0, err
}
