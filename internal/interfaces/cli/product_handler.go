package cli

import (
	"context"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/application/usecase"
	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	msgNumericPriceQty = "Invalid input. Please enter numeric values for price and quantity."
	msgNumericRequired = "Invalid input. Please enter numeric values where required."
)

// ProductHandler atiende las opciones 1-4 del menú.
type ProductHandler struct {
	uc *usecase.ProductUseCase
	p  *prompter
}

// newProductHandler construye el handler.
func newProductHandler(uc *usecase.ProductUseCase, p *prompter) *ProductHandler {
	return &ProductHandler{uc: uc, p: p}
}

// Add pide nombre, precio y cantidad inicial y crea el producto.
func (h *ProductHandler) Add(ctx context.Context) error {
	name, err := h.p.ask("Enter product name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return domain.NewValidationError("name", "Product name cannot be empty.")
	}

	in, err := h.p.ask("Enter product price: ")
	if err != nil {
		return err
	}
	price, err := parsePrice(in, msgNumericPriceQty)
	if err != nil {
		return err
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.NewValidationError("price", "Price must be positive.")
	}

	in, err = h.p.ask("Enter initial quantity: ")
	if err != nil {
		return err
	}
	qty, err := parseInt(in, "quantity", msgNumericPriceQty)
	if err != nil {
		return err
	}
	if qty < 0 {
		return domain.NewValidationError("quantity", "Quantity cannot be negative.")
	}

	out, err := h.uc.Create(ctx, dto.CreateProductRequest{Name: name, Price: price, Quantity: qty})
	if err != nil {
		return err
	}
	h.p.say("Product added successfully (ID %d).", out.ID)
	return nil
}

// Update muestra los datos actuales y pide los nuevos; dejar un campo en blanco lo conserva.
func (h *ProductHandler) Update(ctx context.Context) error {
	in, err := h.p.ask("Enter product ID to update: ")
	if err != nil {
		return err
	}
	id, err := parseID(in, msgNumericRequired)
	if err != nil {
		return err
	}
	current, err := h.uc.GetByID(ctx, id)
	if err != nil {
		return err
	}
	h.p.say("Current details: Name: %s, Price: %s, Quantity: %d", current.Name, money(current.Price), current.Quantity)

	var req dto.UpdateProductRequest

	name, err := h.p.ask("Enter new name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if name != "" {
		req.Name = &name
	}

	in, err = h.p.ask("Enter new price (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if in != "" {
		price, err := parsePrice(in, msgNumericRequired)
		if err != nil {
			return err
		}
		if !price.GreaterThan(decimal.Zero) {
			return domain.NewValidationError("price", "Price must be positive.")
		}
		req.Price = &price
	}

	in, err = h.p.ask("Enter new quantity (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if in != "" {
		qty, err := parseInt(in, "quantity", msgNumericRequired)
		if err != nil {
			return err
		}
		if qty < 0 {
			return domain.NewValidationError("quantity", "Quantity cannot be negative.")
		}
		req.Quantity = &qty
	}

	if _, err := h.uc.Update(ctx, id, req); err != nil {
		return err
	}
	h.p.say("Product updated successfully.")
	return nil
}

// Delete elimina el producto y sus ventas.
func (h *ProductHandler) Delete(ctx context.Context) error {
	in, err := h.p.ask("Enter product ID to delete: ")
	if err != nil {
		return err
	}
	id, err := parseID(in, "Invalid product ID.")
	if err != nil {
		return err
	}
	out, err := h.uc.Delete(ctx, id)
	if err != nil {
		return err
	}
	h.p.say("Product and %d related sales record(s) deleted successfully.", out.SalesDeleted)
	return nil
}

// List imprime todos los productos.
func (h *ProductHandler) List(ctx context.Context) error {
	products, err := h.uc.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		h.p.say("No products found.")
		return nil
	}
	h.p.say("\nProducts:")
	renderProducts(h.p.out, products)
	return nil
}
