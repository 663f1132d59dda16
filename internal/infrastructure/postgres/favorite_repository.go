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

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación del puerto FavoriteRepository sobre PostgreSQL.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador de persistencia para favoritos.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// GetByUserAndItem obtiene el favorito (user, item) si existe.
func (r *FavoriteRepo) GetByUserAndItem(userID, itemID string) (*entity.Favorite, error) {
	query := `SELECT id, user_id, item_id, created_at FROM favorites WHERE user_id = $1 AND item_id = $2`
	var f entity.Favorite
	err := r.q.QueryRow(context.Background(), query, userID, itemID).Scan(
		&f.ID, &f.UserID, &f.ItemID, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &f, nil
}

// Create persiste un favorito. El constraint único (user, item) protege contra duplicados.
func (r *FavoriteRepo) Create(favorite *entity.Favorite) error {
	query := `INSERT INTO favorites (id, user_id, item_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		favorite.ID, favorite.UserID, favorite.ItemID, favorite.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// Delete elimina el favorito (user, item). Devuelve si existía.
func (r *FavoriteRepo) Delete(userID, itemID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM favorites WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListByUser lista los favoritos del usuario con el item adjunto.
func (r *FavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	query := `
		SELECT f.id, f.user_id, f.item_id, f.created_at,
			i.id, i.name, i.description, i.price, COALESCE(i.category_id::text, ''), i.stock, i.image_url, i.created_at, i.updated_at
		FROM favorites f
		JOIN items i ON i.id = f.item_id
		WHERE f.user_id = $1
		ORDER BY f.created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		var i entity.Item
		if err := rows.Scan(&f.ID, &f.UserID, &f.ItemID, &f.CreatedAt,
			&i.ID, &i.Name, &i.Description, &i.Price, &i.CategoryID, &i.Stock,
			&i.ImageURL, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		f.Item = &i
		list = append(list, &f)
	}
	return list, rows.Err()
}
