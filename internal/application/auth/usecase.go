package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
	"github.com/jhoicas/trendify-api/pkg/jwt"
)

// codeTTL vigencia del código de confirmación enviado al registrarse.
const codeTTL = 10 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase ciclo de vida de la cuenta: registro, confirmación por email,
// login y decodificación de tokens.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.Mailer
	jwtCfg   JWTConfig

	// now es inyectable en tests para controlar la expiración del código.
	now func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ports.Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, now: time.Now}
}

// Register crea una cuenta pendiente: hashea el password con bcrypt, genera un
// código de 6 dígitos con vigencia de 10 minutos y despacha el email de
// confirmación. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, err := generateCode()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	expires := now.Add(codeTTL)
	user := &entity.User{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		LastName:            in.LastName,
		Email:               in.Email,
		PasswordHash:        string(hash),
		IsActive:            false,
		ConfirmationCode:    code,
		ConfirmationExpires: &expires,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	// Fire-and-forget: un fallo del email no revierte el registro.
	_ = uc.mailer.SendConfirmationCode(user.Name, user.Email, code)
	return toUserResponse(user), nil
}

// ConfirmEmail activa la cuenta si el código coincide y no expiró.
// La activación limpia el código y la expiración; no hay vuelta a pendiente.
func (uc *AuthUseCase) ConfirmEmail(in dto.ConfirmEmailRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.IsActive {
		return nil, domain.ErrAlreadyActive
	}
	if user.ConfirmationCode == "" || user.ConfirmationCode != in.Code {
		return nil, domain.ErrInvalidCode
	}
	if user.ConfirmationExpires == nil || uc.now().After(*user.ConfirmationExpires) {
		return nil, domain.ErrCodeExpired
	}
	user.IsActive = true
	user.ConfirmationCode = ""
	user.ConfirmationExpires = nil
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y genera el JWT. Email desconocido y password
// incorrecto devuelven el mismo ErrUnauthorized para no filtrar cuál falló.
// Una cuenta sin confirmar no puede iniciar sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountNotActive
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// DecodeToken valida firma, issuer y expiración, y devuelve el userID.
// jwt.ErrTokenExpired y jwt.ErrTokenInvalid llegan distinguibles al caller.
func (uc *AuthUseCase) DecodeToken(token string) (string, error) {
	return jwt.Parse(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token)
}

// generateCode produce un código numérico de 6 dígitos con crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generar código de confirmación: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
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
