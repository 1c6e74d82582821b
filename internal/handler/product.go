package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/queue"
	"github.com/iliyamo/product-inventory/internal/repository"
)

// ProductHandler bundles the stores behind the authenticated endpoints.
// Every operation takes its owner id from the context populated by the
// auth middleware; client-supplied identifiers are never trusted.
type ProductHandler struct {
	Users    UserStore
	Products ProductStore
	Events   EventPublisher // optional; nil disables audit events
}

func NewProductHandler(users UserStore, products ProductStore, events EventPublisher) *ProductHandler {
	return &ProductHandler{Users: users, Products: products, Events: events}
}

type productNameReq struct {
	Name string `json:"name"`
}

type productUpdateReq struct {
	Name    string `json:"name"`
	NewName string `json:"newName"`
}

// List handles GET /api/product/getProducts. An owner with no products
// gets a 400, not an empty success; a populated inventory is returned as
// a raw JSON array.
func (h *ProductHandler) List(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	products, err := h.Products.ListByOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while fetching the products"})
	}
	if len(products) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Empty products list"})
	}
	return c.JSON(http.StatusOK, products)
}

// Add handles POST /api/product/addProducts. The (owner, name) existence
// pre-check is not atomic with the insert; two concurrent identical
// requests can both pass it, so per-owner name uniqueness is best-effort.
func (h *ProductHandler) Add(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	var req productNameReq
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	_, err = h.Products.GetByNameAndOwner(ctx, req.Name, ownerID)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product is already added"})
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while adding the product"})
	}

	product, err := h.Products.Create(ctx, req.Name, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while adding the product"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "The product was added",
		"product": product,
	})
}

// Update handles PUT /api/product/updateproduct. The collision lookup on
// the new name is issued before the target lookup and wins even when the
// target does not exist; both responses are observable behavior.
func (h *ProductHandler) Update(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	var req productUpdateReq
	if err := c.Bind(&req); err != nil || req.Name == "" || req.NewName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	_, err = h.Products.GetByNameAndOwner(ctx, req.NewName, ownerID)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product is already added"})
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while updating the product"})
	}

	target, err := h.Products.GetByNameAndOwner(ctx, req.Name, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while updating the product"})
	}

	if err := h.Products.UpdateName(ctx, target.ID, ownerID, req.NewName); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while updating the product"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Product '%s' was updated successfully", req.NewName),
	})
}

// Delete handles DELETE /api/product/deleteProduct. A missing name is not
// validated separately; it simply fails the (owner, name) lookup.
func (h *ProductHandler) Delete(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	var req productNameReq
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	product, err := h.Products.GetByNameAndOwner(ctx, req.Name, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product is not in the product list"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting the product"})
	}

	if err := h.Products.Delete(ctx, product.ID, ownerID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting the product"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Product '%s' was deleted successfully", product.Name),
	})
}

// DeleteAll handles DELETE /api/product/deleteAllProducts. The response
// echoes the pre-deletion snapshot so the caller sees what was removed.
func (h *ProductHandler) DeleteAll(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	products, err := h.Products.ListByOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting all products"})
	}
	if len(products) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Product list is empty"})
	}

	if _, err := h.Products.DeleteAllByOwner(ctx, ownerID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting all products"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":        "All products were deleted successfully",
		"deleteProducts": products,
	})
}

// DeleteUser handles DELETE /api/product/deleteUser. Products are removed
// before the user row, both inside one transaction in the store, so a
// partial failure cannot orphan product rows or dangle the user.
func (h *ProductHandler) DeleteUser(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	user, err := h.Users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting the user"})
	}

	removed, err := h.Users.DeleteWithProducts(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "There was an error while deleting the user"})
	}

	if h.Events != nil {
		ev := queue.UserDeletedEvent{
			UserID:          user.ID,
			Email:           user.Email,
			ProductsRemoved: removed,
			DeletedAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.UserDeleted(ctx, ev); err != nil {
			c.Logger().Warnf("audit event publish failed for user %d: %v", user.ID, err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User and products deleted successfully",
	})
}
