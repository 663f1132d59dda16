package repository

import "github.com/jhoicas/trendify-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase (DIP).
// Las compras son inmutables: no hay Update ni Delete.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	ListByUser(userID string) ([]*entity.Purchase, error)
}
