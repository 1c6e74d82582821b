package handler // handler defines the HTTP handlers for auth and product operations

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/middleware"
	"github.com/iliyamo/product-inventory/internal/model"
	"github.com/iliyamo/product-inventory/internal/queue"
)

// dbTimeout bounds every persistence round-trip issued by a handler. A
// timed-out round-trip aborts the whole use case; nothing is retried.
const dbTimeout = 5 * time.Second

// UserStore is the credential store collaborator. *repository.UserRepo
// satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	DeleteWithProducts(ctx context.Context, id uint64) (int64, error)
}

// ProductStore is the product store collaborator, always scoped by the
// owning user id. *repository.ProductRepo satisfies it.
type ProductStore interface {
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.Product, error)
	GetByNameAndOwner(ctx context.Context, name string, ownerID uint64) (model.Product, error)
	Create(ctx context.Context, name string, ownerID uint64) (model.Product, error)
	UpdateName(ctx context.Context, id, ownerID uint64, newName string) error
	Delete(ctx context.Context, id, ownerID uint64) error
	DeleteAllByOwner(ctx context.Context, ownerID uint64) (int64, error)
}

// EventPublisher emits audit events after state changes. A nil publisher
// disables publication.
type EventPublisher interface {
	UserDeleted(ctx context.Context, event queue.UserDeletedEvent) error
}

// getUserID extracts the owner id that the auth middleware stored in the
// context. It is the only source of owner identity for product handlers.
func getUserID(c echo.Context) (uint64, error) {
	if id, ok := c.Get(middleware.UserIDKey).(uint64); ok {
		return id, nil
	}
	return 0, errors.New("no user_id in context")
}
