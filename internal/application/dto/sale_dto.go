package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	ProductID    int64
	QuantitySold int
}

// SaleResponse salida de una venta. ProductName solo se llena en listados.
type SaleResponse struct {
	ID           int64
	ProductID    int64
	ProductName  string
	QuantitySold int
	SaleDate     time.Time
	TotalAmount  decimal.Decimal
	// RemainingStock existencias del producto tras la venta (solo en RecordSale).
	RemainingStock int
}
