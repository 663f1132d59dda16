package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/trendify-api/internal/application/auth"
	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

type fakeMailer struct {
	confirmationsSent int
	lastCode          string
	lastEmail         string
}

func (m *fakeMailer) SendConfirmationCode(_, email, code string) error {
	m.confirmationsSent++
	m.lastEmail = email
	m.lastCode = code
	return nil
}

func (m *fakeMailer) SendPasswordChanged(_, _ string) error { return nil }

func buildAuthUC(repo *fakeUserRepo, mailer *fakeMailer) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, mailer, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "trendify-test",
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Ana",
		LastName:        "Silva",
		Email:           "ana@example.com",
		Password:        "contraseña-segura",
		ConfirmPassword: "contraseña-segura",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Registro exitoso crea la cuenta inactiva y despacha el código.
func TestRegister_CreaCuentaPendienteYEnviaCodigo(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)
	assert.False(t, out.IsActive, "la cuenta nueva debe quedar pendiente de confirmación")

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
	assert.Len(t, stored.ConfirmationCode, 6, "el código debe tener 6 dígitos")
	require.NotNil(t, stored.ConfirmationExpires)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *stored.ConfirmationExpires, time.Minute)

	assert.Equal(t, 1, mailer.confirmationsSent)
	assert.Equal(t, stored.ConfirmationCode, mailer.lastCode,
		"el código enviado por email debe ser el persistido")

	// El hash nunca es el password en claro.
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-segura")))
}

// Caso 2: Email ya registrado → ErrEmailAlreadyExists y no se reenvía código.
func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, mailer.confirmationsSent, "el duplicado no debe enviar otro email")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmEmail
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: Código correcto dentro de la ventana → activa y limpia el código.
func TestConfirmEmail_ActivaLaCuenta(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	out, err := uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	require.NoError(t, err)
	assert.True(t, out.IsActive)

	stored := repo.byEmail["ana@example.com"]
	assert.Empty(t, stored.ConfirmationCode, "el código debe limpiarse al activar")
	assert.Nil(t, stored.ConfirmationExpires)
}

// Caso 4: Código incorrecto → ErrInvalidCode y la cuenta sigue pendiente.
func TestConfirmEmail_CodigoIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: "000000"})
	if mailer.lastCode == "000000" {
		t.Skip("colisión improbable entre el código generado y el de prueba")
	}
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.False(t, repo.byEmail["ana@example.com"].IsActive)
}

// Caso 5: Código vencido → ErrCodeExpired aunque el código coincida.
func TestConfirmEmail_CodigoVencido(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	repo.byEmail["ana@example.com"].ConfirmationExpires = &expired

	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	assert.ErrorIs(t, err, domain.ErrCodeExpired)
	assert.False(t, repo.byEmail["ana@example.com"].IsActive)
}

// Caso 6: Confirmar dos veces → ErrAlreadyActive.
func TestConfirmEmail_CuentaYaActiva(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)
	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	require.NoError(t, err)

	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
}

// Caso 7: Email desconocido → ErrUserNotFound.
func TestConfirmEmail_EmailDesconocido(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo(), &fakeMailer{})

	_, err := uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "nadie@example.com", Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 8: Login de cuenta confirmada devuelve token y perfil.
func TestLogin_CuentaActiva(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)
	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-segura"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)

	// El token decodifica al mismo usuario.
	sub, err := uc.DecodeToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, sub)
}

// Caso 9: Cuenta sin confirmar no puede iniciar sesión.
func TestLogin_CuentaSinConfirmar(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo, &fakeMailer{})

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-segura"})
	assert.ErrorIs(t, err, domain.ErrAccountNotActive)
}

// Caso 10: Email desconocido y password incorrecto fallan igual, sin filtrar cuál.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := buildAuthUC(repo, mailer)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)
	_, err = uc.ConfirmEmail(dto.ConfirmEmailRequest{Email: "ana@example.com", Code: mailer.lastCode})
	require.NoError(t, err)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "contraseña-segura"})
	_, errPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass, "ambos fallos deben ser el mismo error")
}
