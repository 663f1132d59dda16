package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/usecase"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func activeUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &entity.User{
		ID:           testUserID,
		Name:         "Ana",
		LastName:     "Silva",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Caso 1: Actualización parcial conserva los campos omitidos.
func TestUpdateProfile_Parcial(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "vieja-clave"))
	uc := usecase.NewUserUseCase(repo, &fakeMailer{})

	nuevo := "Mariana"
	out, err := uc.UpdateProfile(testUserID, dto.UpdateUserRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Mariana", out.Name)
	assert.Equal(t, "Silva", out.LastName, "los campos no enviados deben conservarse")
	assert.Equal(t, "ana@example.com", out.Email)
}

// Caso 2: Recuperar contraseña invalida la anterior y notifica por email.
func TestRecoverPassword_InvalidaLaAnterior(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "vieja-clave"))
	mailer := &fakeMailer{}
	uc := usecase.NewUserUseCase(repo, mailer)

	_, err := uc.RecoverPassword("ana@example.com", "clave-nueva-segura")
	require.NoError(t, err)

	stored := repo.users[testUserID]
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("vieja-clave")),
		"la contraseña anterior debe dejar de servir")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-nueva-segura")))
	assert.Equal(t, 1, mailer.passwordChangedSent)
}

// Caso 3: Recuperar con email desconocido → ErrUserNotFound.
func TestRecoverPassword_EmailDesconocido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), &fakeMailer{})

	_, err := uc.RecoverPassword("nadie@example.com", "clave-nueva-segura")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Caso 4: Cambiar contraseña exige la anterior correcta.
func TestChangePassword_RechazaClaveActualIncorrecta(t *testing.T) {
	repo := newFakeUserRepo(activeUser(t, "vieja-clave"))
	mailer := &fakeMailer{}
	uc := usecase.NewUserUseCase(repo, mailer)

	_, err := uc.ChangePassword(testUserID, "incorrecta", "clave-nueva-segura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, mailer.passwordChangedSent, "un cambio rechazado no notifica")

	// Con la clave correcta sí cambia.
	_, err = uc.ChangePassword(testUserID, "vieja-clave", "clave-nueva-segura")
	require.NoError(t, err)
	stored := repo.users[testUserID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-nueva-segura")))
	assert.Equal(t, 1, mailer.passwordChangedSent)
}

// Caso 5: Eliminar una cuenta inexistente → ErrUserNotFound.
func TestDeleteUser_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), &fakeMailer{})

	err := uc.Delete(testUserID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
