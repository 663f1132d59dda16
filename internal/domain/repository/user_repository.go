package repository

import "github.com/jhoicas/trendify-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Es el único escritor de la tabla users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
