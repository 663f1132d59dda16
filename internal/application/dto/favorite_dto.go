package dto

import "time"

// FavoriteResponse favorito con el detalle del item.
type FavoriteResponse struct {
	ID        string       `json:"id"`
	Item      ItemResponse `json:"item"`
	CreatedAt time.Time    `json:"created_at"`
}
