package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados por la pasarela EMIS.
const (
	PaymentMulticaixaExpress = "MULTICAIXA_EXPRESS"
	PaymentATM               = "ATM"
	PaymentReference         = "REFERENCE"
)

// ValidPaymentMethod indica si el método pertenece al enum de la pasarela.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMulticaixaExpress, PaymentATM, PaymentReference:
		return true
	}
	return false
}

// Purchase registra una compra. TotalPrice se captura al momento de la compra
// (price × quantity) y la fila es inmutable: nunca se actualiza ni se borra.
type Purchase struct {
	ID            string
	UserID        string
	ItemID        string
	Quantity      int64 // >= 1
	TotalPrice    decimal.Decimal
	PaymentMethod string
	PaymentProof  string // referencia opaca al comprobante, opcional

	// Datos de envío, todos obligatorios.
	FirstName     string
	LastName      string
	City          string
	Country       string
	StreetAddress string
	HouseNumber   string
	Phone         string
	Email         string

	CreatedAt time.Time
}
