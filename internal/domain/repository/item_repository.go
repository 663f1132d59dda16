package repository

import "github.com/jhoicas/trendify-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las consultas devuelven (nil, nil) cuando no hay fila.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	SearchByName(name string) ([]*entity.Item, error)
	ListByCategory(categoryID string) ([]*entity.Item, error)
	Update(item *entity.Item) error
	// DecrementStock resta quantity solo si stock >= quantity, en un único
	// UPDATE condicional. Devuelve false (cero filas) si no alcanza.
	DecrementStock(id string, quantity int64) (bool, error)
	Delete(id string) (bool, error)
}
