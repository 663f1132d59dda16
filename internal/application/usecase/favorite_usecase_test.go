package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trendify-api/internal/application/usecase"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
)

type fakeFavoriteRepo struct {
	favorites map[string]*entity.Favorite // key: userID + "/" + itemID
	creates   int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*entity.Favorite)}
}

func (r *fakeFavoriteRepo) GetByUserAndItem(userID, itemID string) (*entity.Favorite, error) {
	return r.favorites[cartKey(userID, itemID)], nil
}

func (r *fakeFavoriteRepo) Create(f *entity.Favorite) error {
	key := cartKey(f.UserID, f.ItemID)
	if _, ok := r.favorites[key]; ok {
		return domain.ErrDuplicate
	}
	r.creates++
	r.favorites[key] = f
	return nil
}

func (r *fakeFavoriteRepo) Delete(userID, itemID string) (bool, error) {
	key := cartKey(userID, itemID)
	if _, ok := r.favorites[key]; !ok {
		return false, nil
	}
	delete(r.favorites, key)
	return true, nil
}

func (r *fakeFavoriteRepo) ListByUser(userID string) ([]*entity.Favorite, error) {
	var out []*entity.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

// Caso 1: Marcar dos veces el mismo favorito no duplica y devuelve la misma fila.
func TestAddFavorite_Idempotente(t *testing.T) {
	repo := newFakeFavoriteRepo()
	uc := usecase.NewFavoriteUseCase(repo, newFakeItemRepo(catalogItem("a", "Remera")))

	first, err := uc.AddFavorite(testUserID, "a")
	require.NoError(t, err)

	second, err := uc.AddFavorite(testUserID, "a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "repetir el favorito debe devolver la misma fila")
	assert.Equal(t, 1, repo.creates, "no debe crearse una segunda fila")

	list, err := uc.ListFavorites(testUserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// Caso 2: Favorito sobre un item inexistente → ErrItemNotFound.
func TestAddFavorite_ItemInexistente(t *testing.T) {
	uc := usecase.NewFavoriteUseCase(newFakeFavoriteRepo(), newFakeItemRepo())

	_, err := uc.AddFavorite(testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// Caso 3: Remove idempotente.
func TestRemoveFavorite_Idempotente(t *testing.T) {
	repo := newFakeFavoriteRepo()
	uc := usecase.NewFavoriteUseCase(repo, newFakeItemRepo(catalogItem("a", "Remera")))

	_, err := uc.AddFavorite(testUserID, "a")
	require.NoError(t, err)

	removed, err := uc.RemoveFavorite(testUserID, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.RemoveFavorite(testUserID, "a")
	require.NoError(t, err)
	assert.False(t, removed)
}
