package usecase

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// PriceUseCase casos de uso para precios por moneda con ventana de vigencia.
type PriceUseCase struct {
	repo        repository.PriceRepository
	productRepo repository.ProductRepository
}

// NewPriceUseCase construye el caso de uso.
func NewPriceUseCase(repo repository.PriceRepository, productRepo repository.ProductRepository) *PriceUseCase {
	return &PriceUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un precio vigente para un producto existente. No expira precios
// anteriores: eso es decisión explícita del caller vía Expire.
func (uc *PriceUseCase) Create(in dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	price, err := entity.NewProductPrice(in.ProductID, in.Currency, in.Amount, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// GetByID obtiene un precio por ID. (nil, nil) si no existe.
func (uc *PriceUseCase) GetByID(id string) (*dto.PriceResponse, error) {
	price, err := uc.repo.GetByID(id)
	if err != nil || price == nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// ChangeAmount cambia el monto de un precio.
func (uc *PriceUseCase) ChangeAmount(id string, in dto.ChangePriceRequest) (*dto.PriceResponse, error) {
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	if err := price.ChangeAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// Expire cierra la vigencia de un precio. Idempotente.
func (uc *PriceUseCase) Expire(id string) (*dto.PriceResponse, error) {
	price, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}
	price.Expire(time.Now())
	if err := uc.repo.Update(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// ListActiveByProduct lista los precios vigentes de un producto.
func (uc *PriceUseCase) ListActiveByProduct(productID string) ([]dto.PriceResponse, error) {
	list, err := uc.repo.ListActiveByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPriceResponse(p))
	}
	return items, nil
}

func toPriceResponse(p *entity.ProductPrice) *dto.PriceResponse {
	if p == nil {
		return nil
	}
	return &dto.PriceResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Currency:  p.Currency,
		Amount:    p.Amount,
		ValidFrom: p.ValidFrom,
		ValidTo:   p.ValidTo,
	}
}
