package model

import (
	"strings"
	"time"
)

// ContactStatuses is the closed set of inquiry states.  Status follows the
// same enum discipline as Blog.Status.
var ContactStatuses = []string{"new", "read", "replied", "archived"}

// ContactStatusNew is the state assigned to every inbound inquiry.
const ContactStatusNew = "new"

// Contact is an inbound inquiry submitted through the public form.
type Contact struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidContactStatus reports whether s is a known inquiry state.
func ValidContactStatus(s string) bool {
	return contains(ContactStatuses, s)
}

// Validate checks required fields, returning one human-readable message per
// violation.  Phone is optional.
func (ct *Contact) Validate() []string {
	var msgs []string
	if strings.TrimSpace(ct.Name) == "" {
		msgs = append(msgs, "Please add a name")
	}
	if strings.TrimSpace(ct.Email) == "" {
		msgs = append(msgs, "Please add an email")
	}
	if strings.TrimSpace(ct.Message) == "" {
		msgs = append(msgs, "Please add a message")
	}
	if ct.Status != "" && !ValidContactStatus(ct.Status) {
		msgs = append(msgs, "Status must be one of "+strings.Join(ContactStatuses, ", "))
	}
	return msgs
}
