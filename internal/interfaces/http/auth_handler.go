package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trendify-api/internal/application/auth"
	"github.com/jhoicas/trendify-api/internal/application/dto"
)

// AuthHandler maneja registro, confirmación de cuenta y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.LastName == "" || in.Email == "" {
		return badRequest(c, "VALIDATION", "name, last_name y email son requeridos")
	}
	if len(in.Password) < 8 {
		return badRequest(c, "VALIDATION", "la contraseña debe tener al menos 8 caracteres")
	}
	if in.Password != in.ConfirmPassword {
		return badRequest(c, "VALIDATION", "las contraseñas no coinciden")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmEmail godoc
// @Summary      Confirmar cuenta con código de verificación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmEmailRequest  true  "Email y código"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/confirm [post]
func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	var in dto.ConfirmEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Code == "" {
		return badRequest(c, "VALIDATION", "email y code son requeridos")
	}
	out, err := h.uc.ConfirmEmail(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
