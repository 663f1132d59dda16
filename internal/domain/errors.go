package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los mapea a
// status codes en un único punto; todo lo demás se envuelve como error interno.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrItemNotFound       = errors.New("item no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPaymentDenied      = errors.New("pago rechazado por la pasarela")
	ErrAccountNotActive   = errors.New("cuenta pendiente de confirmación")
	ErrAlreadyActive      = errors.New("la cuenta ya está activa")
	ErrInvalidCode        = errors.New("código de confirmación incorrecto")
	ErrCodeExpired        = errors.New("código de confirmación expirado")
)
