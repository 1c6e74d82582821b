package model

import "time"

// User mirrors the `users` table. The password hash is serialized under
// the "password" key because registration echoes the created record in
// that shape; login and every other endpoint never return a User.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address, stored exactly as received.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`       // users.id
	Email        string    `json:"email"`    // users.email
	PasswordHash string    `json:"password"` // users.password_hash
	CreatedAt    time.Time `json:"-"`        // users.created_at
	UpdatedAt    time.Time `json:"-"`        // users.updated_at
}
