package entity

import (
	"math"
	"strings"

	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario con su precio unitario y existencias.
// ID lo asigna el almacenamiento (autoincremental, nunca se reutiliza).
type Product struct {
	ID       int64           `db:"product_id"`
	Name     string          `db:"product_name"`
	Price    decimal.Decimal `db:"price"`
	Quantity int             `db:"quantity"`
}

// Validate aplica las restricciones de creación y actualización:
// nombre no vacío, precio > 0 y cantidad >= 0.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "Product name cannot be empty.")
	}
	if !p.Price.GreaterThan(decimal.Zero) {
		return domain.NewValidationError("price", "Price must be positive.")
	}
	if !AmountFitsStorage(p.Price) {
		return domain.NewValidationError("price", "Price is out of range.")
	}
	if p.Quantity < 0 {
		return domain.NewValidationError("quantity", "Quantity cannot be negative.")
	}
	return nil
}

// AmountFitsStorage indica si d sigue siendo positivo y finito al guardarse como REAL (float64).
func AmountFitsStorage(d decimal.Decimal) bool {
	f := d.InexactFloat64()
	return f > 0 && !math.IsInf(f, 0)
}

// CanSell indica si hay existencias suficientes para vender qty unidades.
func (p *Product) CanSell(qty int) bool {
	return qty > 0 && qty <= p.Quantity
}
