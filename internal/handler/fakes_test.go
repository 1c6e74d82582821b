package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/middleware"
	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/queue"
	"github.com/iliyamo/product-inventory/internal/repository"
)

// memStore is an in-memory stand-in for both collaborator stores. Setting
// err makes every subsequent call fail with it, which drives the
// InternalError branches in handler tests.
type memStore struct {
	users       map[uint64]model.User
	products    map[uint64][]model.Product // keyed by owner id
	nextUser    uint64
	nextProduct uint64
	err         error
	createCalls int // registrations that reached the create step
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint64]model.User{},
		products: map[uint64][]model.Product{},
	}
}

func (s *memStore) Create(_ context.Context, email, passwordHash string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	s.createCalls++
	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, repository.ErrEmailExists
		}
	}
	s.nextUser++
	u := model.User{ID: s.nextUser, Email: email, PasswordHash: passwordHash}
	s.users[u.ID] = u
	return u, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *memStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	if s.err != nil {
		return model.User{}, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *memStore) DeleteWithProducts(_ context.Context, id uint64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	removed := int64(len(s.products[id]))
	delete(s.products, id)
	delete(s.users, id)
	return removed, nil
}

func (s *memStore) ListByOwner(_ context.Context, ownerID uint64) ([]model.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Product, len(s.products[ownerID]))
	copy(out, s.products[ownerID])
	return out, nil
}

func (s *memStore) GetByNameAndOwner(_ context.Context, name string, ownerID uint64) (model.Product, error) {
	if s.err != nil {
		return model.Product{}, s.err
	}
	for _, p := range s.products[ownerID] {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrProductNotFound
}

func (s *memStore) CreateProduct(_ context.Context, name string, ownerID uint64) (model.Product, error) {
	if s.err != nil {
		return model.Product{}, s.err
	}
	s.nextProduct++
	p := model.Product{ID: s.nextProduct, Name: name, UserID: ownerID}
	s.products[ownerID] = append(s.products[ownerID], p)
	return p, nil
}

func (s *memStore) UpdateName(_ context.Context, id, ownerID uint64, newName string) error {
	if s.err != nil {
		return s.err
	}
	for i, p := range s.products[ownerID] {
		if p.ID == id {
			s.products[ownerID][i].Name = newName
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (s *memStore) Delete(_ context.Context, id, ownerID uint64) error {
	if s.err != nil {
		return s.err
	}
	for i, p := range s.products[ownerID] {
		if p.ID == id {
			s.products[ownerID] = append(s.products[ownerID][:i], s.products[ownerID][i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (s *memStore) DeleteAllByOwner(_ context.Context, ownerID uint64) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := int64(len(s.products[ownerID]))
	delete(s.products, ownerID)
	return n, nil
}

// productStoreAdapter maps the ProductStore interface's Create onto
// memStore.CreateProduct so one fake can serve both interfaces.
type productStoreAdapter struct{ *memStore }

func (a productStoreAdapter) Create(ctx context.Context, name string, ownerID uint64) (model.Product, error) {
	return a.CreateProduct(ctx, name, ownerID)
}

// eventRecorder captures published audit events.
type eventRecorder struct {
	events []queue.UserDeletedEvent
	err    error
}

func (r *eventRecorder) UserDeleted(_ context.Context, ev queue.UserDeletedEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

// newTestContext builds an Echo context carrying an optional JSON body and
// an authenticated owner id, mirroring what the guard middleware sets.
func newTestContext(t *testing.T, method, target, body string, ownerID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ownerID != 0 {
		c.Set(middleware.UserIDKey, ownerID)
	}
	return c, rec
}
