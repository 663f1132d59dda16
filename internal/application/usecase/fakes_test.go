package usecase_test

import (
	"context"
	"strings"

	"github.com/jhoicas/trendify-api/internal/domain/entity"
)

// Fakes en memoria compartidos por los tests del paquete.

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, i := range items {
		r.items[i.ID] = i
	}
	return r
}

func (r *fakeItemRepo) Create(i *entity.Item) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeItemRepo) SearchByName(name string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.items {
		if strings.Contains(strings.ToLower(i.Name), strings.ToLower(name)) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListByCategory(categoryID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.items {
		if i.CategoryID == categoryID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(i *entity.Item) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) DecrementStock(id string, quantity int64) (bool, error) {
	i, ok := r.items[id]
	if !ok || i.Stock < quantity {
		return false, nil
	}
	i.Stock -= quantity
	return true, nil
}

func (r *fakeItemRepo) Delete(id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) (bool, error) {
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

type fakeCartRepo struct {
	lines map[string]*entity.CartItem // key: userID + "/" + itemID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[string]*entity.CartItem)}
}

func cartKey(userID, itemID string) string { return userID + "/" + itemID }

func (r *fakeCartRepo) GetByUserAndItem(userID, itemID string) (*entity.CartItem, error) {
	return r.lines[cartKey(userID, itemID)], nil
}

func (r *fakeCartRepo) Create(c *entity.CartItem) error {
	r.lines[cartKey(c.UserID, c.ItemID)] = c
	return nil
}

func (r *fakeCartRepo) UpdateQuantity(id string, quantity int64) error {
	for _, l := range r.lines {
		if l.ID == id {
			l.Quantity = quantity
		}
	}
	return nil
}

func (r *fakeCartRepo) Delete(userID, itemID string) (bool, error) {
	key := cartKey(userID, itemID)
	if _, ok := r.lines[key]; !ok {
		return false, nil
	}
	delete(r.lines, key)
	return true, nil
}

func (r *fakeCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User // key: ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// fakeFeaturedCache guarda el snapshot en memoria y cuenta las operaciones.
type fakeFeaturedCache struct {
	snapshot      []byte
	gets          int
	sets          int
	invalidations int
}

func (c *fakeFeaturedCache) Get(_ context.Context) ([]byte, bool, error) {
	c.gets++
	if c.snapshot == nil {
		return nil, false, nil
	}
	return c.snapshot, true, nil
}

func (c *fakeFeaturedCache) Set(_ context.Context, snapshot []byte) error {
	c.sets++
	c.snapshot = snapshot
	return nil
}

func (c *fakeFeaturedCache) Invalidate(_ context.Context) error {
	c.invalidations++
	c.snapshot = nil
	return nil
}

type fakeMailer struct {
	passwordChangedSent int
}

func (m *fakeMailer) SendConfirmationCode(_, _, _ string) error { return nil }

func (m *fakeMailer) SendPasswordChanged(_, _ string) error {
	m.passwordChangedSent++
	return nil
}
