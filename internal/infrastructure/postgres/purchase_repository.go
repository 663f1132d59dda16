package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, user_id, item_id, quantity, total_price, payment_method, COALESCE(payment_proof, ''),
	first_name, last_name, city, country, street_address, house_number, phone, email, created_at`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL
// (usable con pool o tx). Las compras son inmutables: solo INSERT y SELECT.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra con el total capturado al momento de comprar.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, user_id, item_id, quantity, total_price, payment_method, payment_proof,
			first_name, last_name, city, country, street_address, house_number, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.UserID, purchase.ItemID, purchase.Quantity,
		purchase.TotalPrice, purchase.PaymentMethod, purchase.PaymentProof,
		purchase.FirstName, purchase.LastName, purchase.City, purchase.Country,
		purchase.StreetAddress, purchase.HouseNumber, purchase.Phone, purchase.Email,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.ItemID, &p.Quantity, &p.TotalPrice, &p.PaymentMethod, &p.PaymentProof,
		&p.FirstName, &p.LastName, &p.City, &p.Country, &p.StreetAddress, &p.HouseNumber,
		&p.Phone, &p.Email, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// ListByUser lista las compras del usuario, más reciente primero.
func (r *PurchaseRepo) ListByUser(userID string) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.Quantity, &p.TotalPrice,
			&p.PaymentMethod, &p.PaymentProof, &p.FirstName, &p.LastName, &p.City,
			&p.Country, &p.StreetAddress, &p.HouseNumber, &p.Phone, &p.Email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
