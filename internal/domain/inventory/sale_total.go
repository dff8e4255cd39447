package inventory

import "github.com/shopspring/decimal"

// SaleTotal implementa el importe de una venta (servicio de dominio).
// Total = PrecioUnitario * CantidadVendida, sin redondeo: se persiste tal cual.
func SaleTotal(unitPrice decimal.Decimal, quantitySold int) decimal.Decimal {
	if quantitySold <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantitySold)))
}
