package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP en un único punto.
// Todo error no reconocido se responde como 500 genérico sin detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return respond(c, fiber.StatusNotFound, "ITEM_NOT_FOUND", err)
	case errors.Is(err, domain.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, "USER_NOT_FOUND", err)
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusConflict, "EMAIL_EXISTS", err)
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", err)
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyActive):
		return respond(c, fiber.StatusConflict, "CONFLICT", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
	case errors.Is(err, domain.ErrInvalidCode):
		return respond(c, fiber.StatusBadRequest, "INVALID_CODE", err)
	case errors.Is(err, domain.ErrCodeExpired):
		return respond(c, fiber.StatusBadRequest, "CODE_EXPIRED", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", err)
	case errors.Is(err, domain.ErrPaymentDenied):
		return respond(c, fiber.StatusPaymentRequired, "PAYMENT_DENIED", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	case errors.Is(err, domain.ErrAccountNotActive):
		return respond(c, fiber.StatusForbidden, "ACCOUNT_NOT_ACTIVE", err)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: "error interno",
		})
	}
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}
