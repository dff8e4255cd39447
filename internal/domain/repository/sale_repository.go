package repository

import (
	"context"

	"github.com/jhoicas/sales-ledger/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas. Las ventas no se actualizan;
// solo se eliminan en cascada junto con su producto.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	ListWithProduct(ctx context.Context) ([]*entity.SaleLine, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
}
