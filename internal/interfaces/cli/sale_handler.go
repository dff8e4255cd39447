package cli

import (
	"context"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/application/inventory"
	"github.com/jhoicas/sales-ledger/internal/domain"
)

const msgNumeric = "Invalid input. Please enter numeric values."

// SaleHandler atiende las opciones 5 y 6 del menú.
type SaleHandler struct {
	uc *inventory.RecordSaleUseCase
	p  *prompter
}

// newSaleHandler construye el handler.
func newSaleHandler(uc *inventory.RecordSaleUseCase, p *prompter) *SaleHandler {
	return &SaleHandler{uc: uc, p: p}
}

// Record pide producto y cantidad y registra la venta.
func (h *SaleHandler) Record(ctx context.Context) error {
	in, err := h.p.ask("Enter product ID: ")
	if err != nil {
		return err
	}
	id, err := parseID(in, msgNumeric)
	if err != nil {
		return err
	}
	in, err = h.p.ask("Enter quantity sold: ")
	if err != nil {
		return err
	}
	qty, err := parseInt(in, "quantity_sold", msgNumeric)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return domain.NewValidationError("quantity_sold", "Quantity sold must be positive.")
	}

	sale, err := h.uc.RecordSale(ctx, dto.RecordSaleRequest{ProductID: id, QuantitySold: qty})
	if err != nil {
		return err
	}
	h.p.say("Sale recorded successfully. Total amount: %s", money(sale.TotalAmount))
	return nil
}

// List imprime todas las ventas con el nombre del producto.
func (h *SaleHandler) List(ctx context.Context) error {
	sales, err := h.uc.ListSales(ctx)
	if err != nil {
		return err
	}
	if len(sales) == 0 {
		h.p.say("No sales records found.")
		return nil
	}
	h.p.say("\nSales Records:")
	renderSales(h.p.out, sales)
	return nil
}
