package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/sales-ledger/internal/application/dto"
	"github.com/jhoicas/sales-ledger/internal/application/ports"
	"github.com/jhoicas/sales-ledger/internal/domain"
	"github.com/jhoicas/sales-ledger/internal/domain/entity"
	"github.com/jhoicas/sales-ledger/internal/domain/repository"
	"github.com/jhoicas/sales-ledger/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. Las existencias solo bajan vía ventas o Update.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner ports.TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, log: log}
}

// Create valida y crea un nuevo producto. El ID lo asigna el almacenamiento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Price:    in.Price,
		Quantity: in.Quantity,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista todos los productos por ID ascendente.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update sobrescribe nombre, precio y cantidad en una transacción (todo o nada).
// Los campos nil conservan el valor actual; el resultado se valida igual que en Create.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.SaleRepository) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
		}
		if err := product.Validate(); err != nil {
			return err
		}
		ok, err := productRepo.Update(ctx, product)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", id).Msg("producto actualizado")
	return toProductResponse(updated), nil
}

// Delete elimina el producto y todas sus ventas en una sola transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteProductResponse, error) {
	var salesDeleted int64
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Primero las ventas: la clave foránea impide borrar un producto referenciado.
		n, err := saleRepo.DeleteByProduct(ctx, id)
		if err != nil {
			return err
		}
		ok, err := productRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		salesDeleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("product_id", id).Int64("sales_deleted", salesDeleted).Msg("producto eliminado")
	return &dto.DeleteProductResponse{ProductID: id, SalesDeleted: salesDeleted}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
