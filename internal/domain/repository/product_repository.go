package repository

import (
	"context"

	"github.com/jhoicas/sales-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update sobrescribe nombre, precio y cantidad. Devuelve false si el ID no existe.
	Update(ctx context.Context, product *entity.Product) (bool, error)
	// DecrementStock resta qty solo si hay existencias suficientes. Devuelve false en caso contrario.
	DecrementStock(ctx context.Context, id int64, qty int) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
