package dto

import "time"

// AddToCartRequest entrada para agregar un item al carrito.
type AddToCartRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int64  `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse línea de carrito con el detalle del item.
type CartItemResponse struct {
	ID       string       `json:"id"`
	Item     ItemResponse `json:"item"`
	Quantity int64        `json:"quantity"`
	AddedAt  time.Time    `json:"added_at"`
}
