package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/usecase"
)

// FavoriteHandler maneja los favoritos del usuario autenticado (protegido).
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

// NewFavoriteHandler construye el handler.
func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// Add godoc
// @Summary      Marcar item como favorito (idempotente)
// @Tags         favorites
// @Security     Bearer
// @Param        itemId  path  string  true  "ID del item"
// @Produce      json
// @Success      200  {object}  dto.FavoriteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/favorites/{itemId} [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return badRequest(c, "MISSING_ID", "itemId es requerido")
	}
	out, err := h.uc.AddFavorite(GetUserID(c), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar favoritos del usuario
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FavoriteResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListFavorites(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar item de favoritos
// @Tags         favorites
// @Security     Bearer
// @Param        itemId  path  string  true  "ID del item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/favorites/{itemId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return badRequest(c, "MISSING_ID", "itemId es requerido")
	}
	removed, err := h.uc.RemoveFavorite(GetUserID(c), itemID)
	if err != nil {
		return respondError(c, err)
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el item no está en favoritos"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
