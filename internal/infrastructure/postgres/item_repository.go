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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, description, price, COALESCE(category_id::text, ''), stock, image_url, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, price, category_id, stock, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Price, item.CategoryID,
		item.Stock, item.ImageURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // categoría inexistente
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.Price, &i.CategoryID, &i.Stock,
		&i.ImageURL, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List lista todos los items ordenados por fecha de creación.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at`
	return r.queryItems(query)
}

// SearchByName busca items cuyo nombre contenga el texto (case-insensitive).
func (r *ItemRepo) SearchByName(name string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at`
	return r.queryItems(query, name)
}

// ListByCategory lista items de una categoría.
func (r *ItemRepo) ListByCategory(categoryID string) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE category_id = $1 ORDER BY created_at`
	return r.queryItems(query, categoryID)
}

// Update actualiza un item existente. El stock solo baja por compra (DecrementStock).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, price = $4, category_id = NULLIF($5, '')::uuid,
			stock = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Price, item.CategoryID,
		item.Stock, item.ImageURL, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DecrementStock resta quantity en un único UPDATE condicional: cero filas
// afectadas significa stock insuficiente (o item inexistente). El stock nunca
// queda negativo.
func (r *ItemRepo) DecrementStock(id string, quantity int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un item por ID. Devuelve si existía.
func (r *ItemRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ItemRepo) queryItems(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.CategoryID,
			&i.Stock, &i.ImageURL, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
