package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/usecase"
)

// CartHandler maneja el carrito del usuario autenticado (protegido).
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar item al carrito (acumula cantidad si ya existe)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Item y cantidad"
// @Success      200   {object}  dto.CartItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ItemID == "" {
		return badRequest(c, "VALIDATION", "item_id es requerido")
	}
	out, err := h.uc.AddToCart(GetUserID(c), in.ItemID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el carrito del usuario
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CartItemResponse
// @Router       /api/cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCart(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar un item del carrito
// @Tags         cart
// @Security     Bearer
// @Param        itemId  path  string  true  "ID del item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{itemId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return badRequest(c, "MISSING_ID", "itemId es requerido")
	}
	removed, err := h.uc.RemoveFromCart(GetUserID(c), itemID)
	if err != nil {
		return respondError(c, err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el item no está en el carrito"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
