package repository

import "github.com/jhoicas/trendify-api/internal/domain/entity"

// FavoriteRepository define el puerto de persistencia para Favorite (DIP).
// La unicidad por (user, item) la garantiza el constraint de la tabla.
type FavoriteRepository interface {
	GetByUserAndItem(userID, itemID string) (*entity.Favorite, error)
	Create(favorite *entity.Favorite) error
	// Delete es idempotente: devuelve si existía una fila y fue borrada.
	Delete(userID, itemID string) (bool, error)
	// ListByUser devuelve los favoritos con el Item adjunto.
	ListByUser(userID string) ([]*entity.Favorite, error)
}
