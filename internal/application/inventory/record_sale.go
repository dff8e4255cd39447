package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/application/ports"
	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/sales-ledger/internal/domain/inventory"
	"github.com/jhoicas/sales-ledger/internal/domain/repository"
	"github.com/jhoicas/sales-ledger/pkg/logger"
)

// RecordSaleUseCase registra ventas de forma transaccional: valida existencias,
// inserta la venta y descuenta el stock con Commit/Rollback.
type RecordSaleUseCase struct {
	txRunner ports.TxRunner
	saleRepo repository.SaleRepository
	now      func() time.Time
	log      *logger.Logger
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(
	txRunner ports.TxRunner,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		now:      time.Now,
		log:      log,
	}
}

// WithClock reemplaza el reloj usado para fechar las ventas.
func (uc *RecordSaleUseCase) WithClock(now func() time.Time) *RecordSaleUseCase {
	uc.now = now
	return uc
}

// RecordSale lee el producto, verifica StockActual >= CantidadVendida, calcula el total,
// inserta la venta fechada hoy y resta la cantidad, todo dentro de una misma transacción.
// Cualquier error deja stock y ventas como estaban.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.QuantitySold <= 0 {
		return nil, domain.NewValidationError("quantity_sold", "Quantity sold must be positive.")
	}

	txID := uuid.New().String()
	saleDate := dateOf(uc.now())

	var (
		sale      *entity.Sale
		remaining int
	)
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.CanSell(in.QuantitySold) {
			return domain.ErrInsufficientStock
		}

		total := domaininv.SaleTotal(product.Price, in.QuantitySold)
		if !entity.AmountFitsStorage(total) {
			return domain.NewValidationError("total_amount", "Sale total is out of range.")
		}

		s := &entity.Sale{
			ProductID:    product.ID,
			QuantitySold: in.QuantitySold,
			SaleDate:     saleDate,
			TotalAmount:  total,
		}
		if _, err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		ok, err := productRepo.DecrementStock(ctx, product.ID, in.QuantitySold)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		sale = s
		remaining = product.Quantity - in.QuantitySold
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("tx_id", txID).Int64("product_id", in.ProductID).
			Int("quantity", in.QuantitySold).Msg("venta rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("tx_id", txID).
		Int64("sale_id", sale.ID).
		Int64("product_id", sale.ProductID).
		Int("quantity", sale.QuantitySold).
		Str("total", sale.TotalAmount.String()).
		Msg("venta registrada")

	resp := toSaleResponse(sale, "")
	resp.RemainingStock = remaining
	return resp, nil
}

// ListSales lista las ventas con el nombre del producto, por ID de venta ascendente.
func (uc *RecordSaleUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	lines, err := uc.saleRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, *toSaleResponse(&l.Sale, l.ProductName))
	}
	return items, nil
}

// dateOf trunca t a la fecha de calendario local, expresada a medianoche UTC
// (mismo valor que se obtiene al leer sale_date de la base).
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toSaleResponse(s *entity.Sale, productName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  productName,
		QuantitySold: s.QuantitySold,
		SaleDate:     s.SaleDate,
		TotalAmount:  s.TotalAmount,
	}
}
