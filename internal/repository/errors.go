// Package repository implements the data access layer over MySQL.  Sentinel
// errors defined here let handlers map persistence outcomes onto the HTTP
// error taxonomy without inspecting driver error strings themselves.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a record does not exist.  Handlers translate
// it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when creating or updating a user would violate
// the unique email index.  Handlers translate it into an HTTP 400 response.
var ErrEmailExists = errors.New("email already exists")

// ErrSlugExists is returned when a blog write would violate the unique slug
// index.  Handlers translate it into an HTTP 400 response.
var ErrSlugExists = errors.New("slug already exists")

// ErrLastAdmin is returned when deleting a user would leave the system
// without any admin.  Handlers translate it into an HTTP 400 conflict.
var ErrLastAdmin = errors.New("cannot delete the last admin")

// isDuplicate reports whether err is a MySQL duplicate-key violation (1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
