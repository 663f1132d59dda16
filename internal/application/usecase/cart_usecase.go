package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// CartUseCase carrito de compras: upsert por (user, item), remove idempotente
// y listado con detalle.
type CartUseCase struct {
	repo     repository.CartRepository
	itemRepo repository.ItemRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository, itemRepo repository.ItemRepository) *CartUseCase {
	return &CartUseCase{repo: repo, itemRepo: itemRepo}
}

// AddToCart agrega un item al carrito. Si ya existe la línea (user, item),
// incrementa la cantidad, la persiste y devuelve la fila actualizada; si no,
// crea la línea con la cantidad pedida.
func (uc *CartUseCase) AddToCart(userID, itemID string, quantity int64) (*dto.CartItemResponse, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if item.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}
	existing, err := uc.repo.GetByUserAndItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := uc.repo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		existing.Item = item
		return toCartItemResponse(existing), nil
	}
	cartItem := &entity.CartItem{
		ID:       uuid.New().String(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
		AddedAt:  time.Now(),
		Item:     item,
	}
	if err := uc.repo.Create(cartItem); err != nil {
		return nil, err
	}
	return toCartItemResponse(cartItem), nil
}

// RemoveFromCart elimina la línea (user, item). Idempotente: devuelve si
// existía una fila y fue borrada.
func (uc *CartUseCase) RemoveFromCart(userID, itemID string) (bool, error) {
	return uc.repo.Delete(userID, itemID)
}

// ListCart lista el carrito del usuario con el detalle de cada item,
// ordenado por fecha de agregado.
func (uc *CartUseCase) ListCart(userID string) ([]dto.CartItemResponse, error) {
	lines, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, *toCartItemResponse(l))
	}
	return out, nil
}

func toCartItemResponse(c *entity.CartItem) *dto.CartItemResponse {
	resp := &dto.CartItemResponse{
		ID:       c.ID,
		Quantity: c.Quantity,
		AddedAt:  c.AddedAt,
	}
	if c.Item != nil {
		resp.Item = *toItemResponse(c.Item)
	}
	return resp
}
