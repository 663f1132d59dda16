package entity

import "time"

// CartItem es la línea de carrito de un usuario. Única por (user, item);
// agregar el mismo item incrementa Quantity sobre la fila existente.
type CartItem struct {
	ID       string
	UserID   string
	ItemID   string
	Quantity int64 // siempre >= 1
	AddedAt  time.Time

	// Item se adjunta en listados (JOIN); nil en escrituras.
	Item *Item
}
