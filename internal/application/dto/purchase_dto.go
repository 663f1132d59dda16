package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest entrada para efectuar una compra.
type PurchaseRequest struct {
	ItemID        string `json:"item_id" validate:"required,uuid"`
	Quantity      int64  `json:"quantity" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=MULTICAIXA_EXPRESS ATM REFERENCE"`
	PaymentProof  string `json:"payment_proof"`

	// Datos de envío, todos obligatorios.
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	City          string `json:"city" validate:"required"`
	Country       string `json:"country" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	HouseNumber   string `json:"house_number" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ItemID        string          `json:"item_id"`
	Quantity      int64           `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
	PaymentProof  string          `json:"payment_proof,omitempty"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	StreetAddress string          `json:"street_address"`
	HouseNumber   string          `json:"house_number"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	CreatedAt     time.Time       `json:"created_at"`
}
