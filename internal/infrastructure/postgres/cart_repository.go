package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByUserAndItem obtiene la línea (user, item) si existe.
func (r *CartRepo) GetByUserAndItem(userID, itemID string) (*entity.CartItem, error) {
	query := `SELECT id, user_id, item_id, quantity, added_at FROM cart_items WHERE user_id = $1 AND item_id = $2`
	var c entity.CartItem
	err := r.q.QueryRow(context.Background(), query, userID, itemID).Scan(
		&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &c, nil
}

// Create persiste una nueva línea de carrito.
func (r *CartRepo) Create(cartItem *entity.CartItem) error {
	query := `INSERT INTO cart_items (id, user_id, item_id, quantity, added_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		cartItem.ID, cartItem.UserID, cartItem.ItemID, cartItem.Quantity, cartItem.AddedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateQuantity persiste la cantidad de una línea existente.
func (r *CartRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// Delete elimina la línea (user, item). Devuelve si existía.
func (r *CartRepo) Delete(userID, itemID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("delete cart item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByUser lista el carrito del usuario con el item adjunto, por fecha de agregado.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT c.id, c.user_id, c.item_id, c.quantity, c.added_at,
			i.id, i.name, i.description, i.price, COALESCE(i.category_id::text, ''), i.stock, i.image_url, i.created_at, i.updated_at
		FROM cart_items c
		JOIN items i ON i.id = c.item_id
		WHERE c.user_id = $1
		ORDER BY c.added_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var c entity.CartItem
		var i entity.Item
		if err := rows.Scan(&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.AddedAt,
			&i.ID, &i.Name, &i.Description, &i.Price, &i.CategoryID, &i.Stock,
			&i.ImageURL, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Item = &i
		list = append(list, &c)
	}
	return list, rows.Err()
}
