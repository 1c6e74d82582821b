// Package repository contains the data access layer. Sentinel errors let
// handlers branch on query outcomes (absent rows, uniqueness violations)
// without inspecting driver internals.
package repository

import "errors"

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an insert hits the UNIQUE index on
// users.email. The index is the source of truth for email uniqueness;
// the handler's existence pre-check is only advisory.
var ErrEmailExists = errors.New("email already exists")

// ErrProductNotFound is returned when no product row matches the lookup
// within the caller's ownership scope.
var ErrProductNotFound = errors.New("product not found")
