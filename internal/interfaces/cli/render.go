package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
)

func renderProducts(w io.Writer, products []dto.ProductResponse) {
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Price", "Quantity"})
	for _, p := range products {
		t.AppendRow(table.Row{p.ID, p.Name, money(p.Price), p.Quantity})
	}
	t.Render()
}

func renderSales(w io.Writer, sales []dto.SaleResponse) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Sale ID", "Product Name", "Quantity Sold", "Date", "Total Amount"})
	for _, s := range sales {
		t.AppendRow(table.Row{
			s.ID, s.ProductName, s.QuantitySold,
			s.SaleDate.Format(entity.SaleDateLayout), money(s.TotalAmount),
		})
	}
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// money muestra al menos dos decimales sin truncar precios con más precisión.
func money(d decimal.Decimal) string {
	places := int32(2)
	if -d.Exponent() > places {
		places = -d.Exponent()
	}
	return d.StringFixed(places)
}
