package entity

import "time"

// Favorite marca un item como favorito de un usuario. Único por (user, item).
type Favorite struct {
	ID        string
	UserID    string
	ItemID    string
	CreatedAt time.Time

	// Item se adjunta en listados (JOIN); nil en escrituras.
	Item *Item
}
