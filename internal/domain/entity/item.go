package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto del catálogo. El stock vive en la propia fila:
// solo lo decrementa el flujo de compra mediante un update condicional.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, 2 decimales
	CategoryID  string          // vacío si no tiene categoría
	Stock       int64           // nunca negativo
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
