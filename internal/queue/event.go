// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/devdynamic/studio-backend/internal/model"

// ContactReceivedEvent is published when a visitor submits the contact
// form.  It carries enough for downstream consumers (notification log,
// future mailer) without querying the primary database.  The message body
// is truncated to a snippet: consumers that need the full text load it by
// ContactID.
type ContactReceivedEvent struct {
	ContactID  uint64 `json:"contact_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Snippet    string `json:"snippet"`
	ReceivedAt string `json:"received_at"`
}

const snippetMax = 140

// NewContactReceivedEvent builds the event for a stored inquiry.
func NewContactReceivedEvent(ct model.Contact) ContactReceivedEvent {
	snippet := ct.Message
	if r := []rune(snippet); len(r) > snippetMax {
		snippet = string(r[:snippetMax]) + "…"
	}
	return ContactReceivedEvent{
		ContactID:  ct.ID,
		Name:       ct.Name,
		Email:      ct.Email,
		Phone:      ct.Phone,
		Snippet:    snippet,
		ReceivedAt: ct.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
