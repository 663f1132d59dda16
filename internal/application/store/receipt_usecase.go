package store

import (
	"context"

	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una compra del usuario.
type ReceiptUseCase struct {
	purchaseRepo repository.PurchaseRepository
	itemRepo     repository.ItemRepository
	userRepo     repository.UserRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	purchaseRepo repository.PurchaseRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		generator:    generator,
	}
}

// Receipt devuelve el PDF del recibo. Solo el dueño de la compra puede pedirlo.
func (uc *ReceiptUseCase) Receipt(ctx context.Context, userID, purchaseID string) ([]byte, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.UserID != userID {
		return nil, domain.ErrNotFound
	}
	item, err := uc.itemRepo.GetByID(purchase.ItemID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.generator.GenerateReceipt(ctx, purchase, item, user)
}
