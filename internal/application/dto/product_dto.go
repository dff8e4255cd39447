package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// UpdateProductRequest entrada para actualizar un producto. Un campo nil conserva el valor actual.
type UpdateProductRequest struct {
	Name     *string
	Price    *decimal.Decimal
	Quantity *int
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// DeleteProductResponse resultado del borrado en cascada.
type DeleteProductResponse struct {
	ProductID    int64
	SalesDeleted int64
}
