package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDateLayout formato ISO-8601 (solo fecha) con el que se persiste sale_date.
const SaleDateLayout = time.DateOnly

// Sale registro inmutable de una venta. TotalAmount se calcula una sola vez
// (precio vigente × cantidad) y no se recalcula aunque cambie el precio del producto.
type Sale struct {
	ID           int64
	ProductID    int64
	QuantitySold int
	SaleDate     time.Time
	TotalAmount  decimal.Decimal
}

// SaleLine venta junto con el nombre del producto, para listados.
type SaleLine struct {
	Sale
	ProductName string
}
