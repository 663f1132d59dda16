package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// UserUseCase gestión de perfil y credenciales una vez creada la cuenta.
// El registro y la confirmación viven en el paquete auth.
type UserUseCase struct {
	repo   repository.UserRepository
	mailer ports.Mailer
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, mailer ports.Mailer) *UserUseCase {
	return &UserUseCase{repo: repo, mailer: mailer}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateProfile actualización parcial: los campos omitidos conservan su valor.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina la cuenta. El borrado en cascada de carrito, favoritos y
// compras lo resuelven las FK de la base.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// RecoverPassword flujo "olvidé mi contraseña": rehashea y sobreescribe sin
// verificar la anterior, y notifica por email.
func (uc *UserUseCase) RecoverPassword(email, newPassword string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.rehash(user, newPassword); err != nil {
		return nil, err
	}
	_ = uc.mailer.SendPasswordChanged(user.Name, user.Email)
	return toUserResponse(user), nil
}

// ChangePassword cambio autenticado: exige la contraseña anterior correcta.
func (uc *UserUseCase) ChangePassword(id, oldPassword, newPassword string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.rehash(user, newPassword); err != nil {
		return nil, err
	}
	_ = uc.mailer.SendPasswordChanged(user.Name, user.Email)
	return toUserResponse(user), nil
}

func (uc *UserUseCase) rehash(user *entity.User, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
