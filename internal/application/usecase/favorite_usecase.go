package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// FavoriteUseCase favoritos por usuario con semántica get-or-create.
type FavoriteUseCase struct {
	repo     repository.FavoriteRepository
	itemRepo repository.ItemRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(repo repository.FavoriteRepository, itemRepo repository.ItemRepository) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo, itemRepo: itemRepo}
}

// AddFavorite asegura que exista el favorito (user, item). Nunca duplica:
// si la fila ya existe (o la crea otro request en paralelo), la devuelve.
func (uc *FavoriteUseCase) AddFavorite(userID, itemID string) (*dto.FavoriteResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	existing, err := uc.repo.GetByUserAndItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Item = item
		return toFavoriteResponse(existing), nil
	}
	favorite := &entity.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		ItemID:    itemID,
		CreatedAt: time.Now(),
		Item:      item,
	}
	if err := uc.repo.Create(favorite); err != nil {
		// Carrera con otro request: el constraint único ganó, devolver la fila existente.
		if errors.Is(err, domain.ErrDuplicate) {
			if existing, getErr := uc.repo.GetByUserAndItem(userID, itemID); getErr == nil && existing != nil {
				existing.Item = item
				return toFavoriteResponse(existing), nil
			}
		}
		return nil, err
	}
	return toFavoriteResponse(favorite), nil
}

// RemoveFavorite elimina el favorito (user, item). Idempotente: devuelve si
// existía una fila y fue borrada.
func (uc *FavoriteUseCase) RemoveFavorite(userID, itemID string) (bool, error) {
	return uc.repo.Delete(userID, itemID)
}

// ListFavorites lista los favoritos del usuario con el detalle de cada item.
func (uc *FavoriteUseCase) ListFavorites(userID string) ([]dto.FavoriteResponse, error) {
	favorites, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, *toFavoriteResponse(f))
	}
	return out, nil
}

func toFavoriteResponse(f *entity.Favorite) *dto.FavoriteResponse {
	resp := &dto.FavoriteResponse{
		ID:        f.ID,
		CreatedAt: f.CreatedAt,
	}
	if f.Item != nil {
		resp.Item = *toItemResponse(f.Item)
	}
	return resp
}
