package model

import "time"

// Product mirrors the `products` table. Each product belongs to exactly
// one user; every query against this table is scoped by UserID. The JSON
// tags define the wire shape returned by the list and add endpoints.
//
// Note: (user_id, name) carries no storage-level uniqueness constraint.
// Per-owner name uniqueness is enforced by a pre-check in the service
// layer and is therefore best-effort under concurrent identical requests.
type Product struct {
	ID        uint64    `json:"id"`     // products.id
	Name      string    `json:"name"`   // products.name
	UserID    uint64    `json:"userId"` // products.user_id (owner)
	CreatedAt time.Time `json:"-"`      // products.created_at
	UpdatedAt time.Time `json:"-"`      // products.updated_at
}
