package model

import (
	"strings"
	"time"
)

// Role values accepted for a user account.  The set is closed; every
// authorization decision compares against these two constants.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account record as stored in the `users` table.  The
// password hash is never serialized: the json:"-" tag guarantees it cannot
// leak through any response path.
type User struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidRole reports whether r is one of the closed role values.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// Validate checks required fields and returns one human-readable message per
// violation.  An empty slice means the record is acceptable.
func (u *User) Validate() []string {
	var msgs []string
	if strings.TrimSpace(u.Name) == "" {
		msgs = append(msgs, "Please add a name")
	}
	if strings.TrimSpace(u.Email) == "" {
		msgs = append(msgs, "Please add an email")
	}
	if !ValidRole(u.Role) {
		msgs = append(msgs, "Role must be either user or admin")
	}
	return msgs
}
