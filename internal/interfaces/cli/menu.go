package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/sales-ledger/internal/application/inventory"
	"github.com/jhoicas/sales-ledger/internal/application/usecase"
	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/pkg/logger"
)

const menuText = `
Sales and Products Management System
1. Add Product
2. Update Product
3. Delete Product
4. View Products
5. Record Sale
6. View Sales
7. Exit
`

// MenuDeps dependencias para el menú.
type MenuDeps struct {
	ProductUC  *usecase.ProductUseCase
	RecordSale *inventory.RecordSaleUseCase
	In         LineReader
	Out        io.Writer
	Log        *logger.Logger
}

// Menu bucle interactivo bloqueante: lee una opción, ejecuta la operación e imprime el resultado.
type Menu struct {
	products *ProductHandler
	sales    *SaleHandler
	in       LineReader
	out      io.Writer
	log      *logger.Logger
}

// action operación de una entrada del menú.
type action struct {
	name string
	run  func(ctx context.Context) error
}

// NewMenu construye el menú.
func NewMenu(deps MenuDeps) *Menu {
	p := &prompter{in: deps.In, out: deps.Out}
	return &Menu{
		products: newProductHandler(deps.ProductUC, p),
		sales:    newSaleHandler(deps.RecordSale, p),
		in:       deps.In,
		out:      deps.Out,
		log:      deps.Log,
	}
}

// Run ejecuta el bucle hasta la opción 7 o fin de entrada. Los errores de cada operación
// se imprimen y el bucle continúa; solo un error de lectura de la entrada lo interrumpe.
func (m *Menu) Run(ctx context.Context) error {
	actions := map[string]action{
		"1": {"add product", m.products.Add},
		"2": {"update product", m.products.Update},
		"3": {"delete product", m.products.Delete},
		"4": {"view products", m.products.List},
		"5": {"record sale", m.sales.Record},
		"6": {"view sales", m.sales.List},
	}

	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.in.ReadLine("Enter your choice (1-7): ")
		if err != nil {
			return m.stop(err)
		}
		choice = strings.TrimSpace(choice)
		if choice == "7" {
			fmt.Fprintln(m.out, "Exiting the system.")
			return nil
		}
		act, ok := actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if err := act.run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return m.stop(err)
			}
			m.report(act.name, err)
		}
	}
}

// stop termina el bucle: fin de entrada equivale a salir; cualquier otro error se propaga.
func (m *Menu) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out, "\nExiting the system.")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (m *Menu) report(name string, err error) {
	if errors.Is(err, domain.ErrStorage) {
		m.log.Error().Err(err).Str("action", name).Msg("operación fallida")
	} else {
		m.log.Debug().Err(err).Str("action", name).Msg("operación rechazada")
	}
	fmt.Fprintln(m.out, messageFor(err))
}

// prompter compartido por los handlers.
type prompter struct {
	in  LineReader
	out io.Writer
}

func (p *prompter) ask(prompt string) (string, error) {
	line, err := p.in.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
