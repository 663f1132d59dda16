package repository

import "github.com/jhoicas/trendify-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para CartItem (DIP).
type CartRepository interface {
	GetByUserAndItem(userID, itemID string) (*entity.CartItem, error)
	Create(cartItem *entity.CartItem) error
	// UpdateQuantity persiste la cantidad ya incrementada por el caso de uso.
	UpdateQuantity(id string, quantity int64) error
	// Delete es idempotente: devuelve si existía una fila y fue borrada.
	Delete(userID, itemID string) (bool, error)
	// ListByUser devuelve las líneas con el Item adjunto, ordenadas por added_at.
	ListByUser(userID string) ([]*entity.CartItem, error)
}
