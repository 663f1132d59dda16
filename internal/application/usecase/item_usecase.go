package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/trendify-api/internal/application/dto"
	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/internal/domain"
	"github.com/jhoicas/trendify-api/internal/domain/entity"
	"github.com/jhoicas/trendify-api/internal/domain/repository"
)

// ItemUseCase CRUD del catálogo más el listado destacado cacheado.
// Toda escritura exitosa invalida el snapshot completo del cache,
// sin importar qué item cambió.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	cache        ports.FeaturedCache
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, categoryRepo repository.CategoryRepository, cache ports.FeaturedCache) *ItemUseCase {
	return &ItemUseCase{repo: repo, categoryRepo: categoryRepo, cache: cache}
}

// Create crea un item. Si trae categoría, debe existir.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx)
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

// List lista todos los items ordenados por fecha de creación.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// SearchByName busca items por nombre (substring, case-insensitive).
func (uc *ItemUseCase) SearchByName(name string) ([]dto.ItemResponse, error) {
	items, err := uc.repo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListByCategory lista items de una categoría.
func (uc *ItemUseCase) ListByCategory(categoryID string) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// Update actualización parcial: los campos omitidos conservan su valor.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx)
	return toItemResponse(item), nil
}

// Delete elimina un item por ID.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrItemNotFound
	}
	_ = uc.cache.Invalidate(ctx)
	return nil
}

// Featured listado destacado con cache read-through: en hit devuelve el
// snapshot tal cual; en miss carga de la base, serializa y guarda con TTL.
func (uc *ItemUseCase) Featured(ctx context.Context) ([]dto.ItemResponse, error) {
	snapshot, hit, err := uc.cache.Get(ctx)
	if err == nil && hit {
		var cached []dto.ItemResponse
		if err := json.Unmarshal(snapshot, &cached); err == nil {
			return cached, nil
		}
		// Snapshot corrupto: seguir con la base y reescribirlo.
	}
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := toItemResponses(items)
	if data, err := json.Marshal(out); err == nil {
		_ = uc.cache.Set(ctx, data)
	}
	return out, nil
}

// CreateCategory crea una categoría (nombre único).
func (uc *ItemUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetCategory obtiene una categoría por ID.
func (uc *ItemUseCase) GetCategory(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista todas las categorías.
func (uc *ItemUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CategoryID:  i.CategoryID,
		Stock:       i.Stock,
		ImageURL:    i.ImageURL,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toItemResponses(items []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, *toItemResponse(i))
	}
	return out
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
