package store

import (
	"context"

	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta el decremento de stock y la creación de la compra
// dentro de una misma transacción; si fn falla, todo se revierte.
type PurchaseTxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}

// ReceiptGenerator genera el recibo de una compra en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, purchase *entity.Purchase, item *entity.Item, user *entity.User) ([]byte, error)
}
