package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/product-inventory/internal/model"
)

// ProductRepo encapsulates all queries against the `products` table.
// Every method takes the owner id and scopes its WHERE clause with it;
// there is no way to reach another owner's rows through this type.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// ListByOwner returns all products belonging to ownerID ordered by id.
// An owner with no products yields an empty slice, not an error.
func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,user_id,created_at,updated_at FROM products WHERE user_id=? ORDER BY id",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByNameAndOwner fetches the first product matching (name, owner).
// It is the pre-check primitive behind add, update and single delete.
func (r *ProductRepo) GetByNameAndOwner(ctx context.Context, name string, ownerID uint64) (model.Product, error) {
	var p model.Product
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,user_id,created_at,updated_at FROM products WHERE name=? AND user_id=? LIMIT 1",
		name, ownerID).Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrProductNotFound
	}
	return p, err
}

// Create inserts a product linked to ownerID and returns the stored row
// with its generated id and timestamps.
func (r *ProductRepo) Create(ctx context.Context, name string, ownerID uint64) (model.Product, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO products (name, user_id) VALUES (?,?)",
		name, ownerID)
	if err != nil {
		return model.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Product{}, err
	}
	var p model.Product
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,name,user_id,created_at,updated_at FROM products WHERE id=? LIMIT 1",
		uint64(id)).Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// UpdateName renames a product if it belongs to the owner. Zero affected
// rows means the target vanished between pre-check and update.
func (r *ProductRepo) UpdateName(ctx context.Context, id, ownerID uint64, newName string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE products SET name=?, updated_at=CURRENT_TIMESTAMP WHERE id=? AND user_id=?",
		newName, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a single product by id within the owner's scope.
func (r *ProductRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM products WHERE id=? AND user_id=?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteAllByOwner removes every product belonging to ownerID and returns
// the number of rows deleted.
func (r *ProductRepo) DeleteAllByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE user_id=?", ownerID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}
