package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// defaultGatewayTimeout cota de la llamada authorize si no se configura otra.
const defaultGatewayTimeout = 10 * time.Second

// PurchaseUseCase flujo de compra: validar → autorizar pago → persistir.
// El decremento de stock y el insert de la compra van en una sola transacción
// y el decremento es condicional (stock >= cantidad), lo que cierra la carrera
// entre el chequeo de stock y la escritura. Sin reintentos: una denegación o
// un fallo de la pasarela se devuelve de inmediato al caller.
type PurchaseUseCase struct {
	tx           PurchaseTxRunner
	itemRepo     repository.ItemRepository
	purchaseRepo repository.PurchaseRepository
	gateway      ports.PaymentGateway
	cache        ports.FeaturedCache
	gwTimeout    time.Duration
}

// NewPurchaseUseCase construye el caso de uso. gwTimeout <= 0 usa el default.
func NewPurchaseUseCase(
	tx PurchaseTxRunner,
	itemRepo repository.ItemRepository,
	purchaseRepo repository.PurchaseRepository,
	gateway ports.PaymentGateway,
	cache ports.FeaturedCache,
	gwTimeout time.Duration,
) *PurchaseUseCase {
	if gwTimeout <= 0 {
		gwTimeout = defaultGatewayTimeout
	}
	return &PurchaseUseCase{
		tx:           tx,
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		cache:        cache,
		gwTimeout:    gwTimeout,
	}
}

// Purchase efectúa la compra de un item.
//
// Orden de efectos: validar (item existe, cantidad, stock, método, envío) →
// autorizar el pago → tx(decrementar stock condicional + insertar Purchase).
// Una denegación no crea Purchase ni toca stock. total_price = price × quantity
// en decimal; la pasarela recibe float64 por conversión explícita en la
// frontera.
func (uc *PurchaseUseCase) Purchase(ctx context.Context, userID string, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.Quantity < 1 || !entity.ValidPaymentMethod(in.PaymentMethod) || !shippingComplete(in) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	// Pre-chequeo para fallar antes de tocar la pasarela; la tx revalida.
	if item.Stock < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	total := item.Price.Mul(decimal.NewFromInt(in.Quantity))

	gwCtx, cancel := context.WithTimeout(ctx, uc.gwTimeout)
	defer cancel()
	authorized, err := uc.gateway.Authorize(gwCtx, in.PaymentMethod, total.InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("autorizar pago: %w", err)
	}
	if !authorized {
		return nil, domain.ErrPaymentDenied
	}

	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		UserID:        userID,
		ItemID:        item.ID,
		Quantity:      in.Quantity,
		TotalPrice:    total,
		PaymentMethod: in.PaymentMethod,
		PaymentProof:  in.PaymentProof,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		City:          in.City,
		Country:       in.Country,
		StreetAddress: in.StreetAddress,
		HouseNumber:   in.HouseNumber,
		Phone:         in.Phone,
		Email:         in.Email,
		CreatedAt:     time.Now(),
	}

	err = uc.tx.Run(ctx, func(items repository.ItemRepository, purchases repository.PurchaseRepository) error {
		decremented, err := items.DecrementStock(item.ID, in.Quantity)
		if err != nil {
			return err
		}
		if !decremented {
			// Otra compra ganó el stock entre el pre-chequeo y acá.
			return domain.ErrInsufficientStock
		}
		return purchases.Create(purchase)
	})
	if err != nil {
		return nil, err
	}

	// El stock del item cambió: el snapshot de destacados queda obsoleto.
	_ = uc.cache.Invalidate(ctx)

	return toPurchaseResponse(purchase), nil
}

// GetByID obtiene una compra del usuario.
func (uc *PurchaseUseCase) GetByID(userID, purchaseID string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(purchase), nil
}

// ListByUser lista las compras del usuario, más reciente primero.
func (uc *PurchaseUseCase) ListByUser(userID string) ([]dto.PurchaseResponse, error) {
	purchases, err := uc.purchaseRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

func shippingComplete(in dto.PurchaseRequest) bool {
	return in.FirstName != "" && in.LastName != "" && in.City != "" && in.Country != "" &&
		in.StreetAddress != "" && in.HouseNumber != "" && in.Phone != "" && in.Email != ""
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		ItemID:        p.ItemID,
		Quantity:      p.Quantity,
		TotalPrice:    p.TotalPrice,
		PaymentMethod: p.PaymentMethod,
		PaymentProof:  p.PaymentProof,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		City:          p.City,
		Country:       p.Country,
		StreetAddress: p.StreetAddress,
		HouseNumber:   p.HouseNumber,
		Phone:         p.Phone,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
	}
}
