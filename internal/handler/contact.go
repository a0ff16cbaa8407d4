package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/queue"
	"github.com/devdynamic/studio-backend/internal/repository"
	queue_publisher "github.com/devdynamic/studio-backend/internal/service"
)

// ContactHandler implements the inquiry endpoints.  Creation is the one
// public write in the whole API and is deliberately unthrottled; everything
// else is admin-only.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

func NewContactHandler(ct *repository.ContactRepo) *ContactHandler {
	return &ContactHandler{Contacts: ct}
}

// Create handles POST /api/contact.  Every inquiry starts in the "new"
// state.  A ContactReceivedEvent is published fire-and-forget: a broker
// outage never affects the visitor's request.
func (h *ContactHandler) Create(c echo.Context) error {
	var ct model.Contact
	if err := c.Bind(&ct); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	ct.Status = model.ContactStatusNew
	if msgs := ct.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	if err := h.Contacts.Create(c.Request().Context(), &ct); err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}

	go func(ev queue.ContactReceivedEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := queue_publisher.PublishContactReceived(ctx, ev); err != nil {
			log.Printf("contact: publish event failed: %v", err)
		}
	}(queue.NewContactReceivedEvent(ct))

	return ok(c, http.StatusCreated, ct)
}

// List handles GET /api/contact (admin).  Full collection, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return okCount(c, http.StatusOK, len(contacts), contacts)
}

// ListNew handles GET /api/contact/new (admin): only unhandled inquiries.
func (h *ContactHandler) ListNew(c echo.Context) error {
	contacts, err := h.Contacts.ListByStatus(c.Request().Context(), model.ContactStatusNew)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return okCount(c, http.StatusOK, len(contacts), contacts)
}

// Get handles GET /api/contact/:id (admin).
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Contact not found")
	}
	ct, err := h.Contacts.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Contact not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, ct)
}

// UpdateStatus handles PATCH /api/contact/:id/status (admin).  The status
// enum is enforced here just like Blog status.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Contact not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if !model.ValidContactStatus(req.Status) {
		return failValidation(c, []string{"Status must be one of new, read, replied, archived"})
	}
	updated, err := h.Contacts.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Contact not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/contact/:id (admin).
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Contact not found")
	}
	if err := h.Contacts.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Contact not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, echo.Map{})
}

// Export handles GET /api/contact/export (admin): the full collection as a
// CSV attachment named after the current date.
func (h *ContactHandler) Export(c echo.Context) error {
	contacts, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	data, err := buildContactsCSV(contacts)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	filename := "contacts_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// buildContactsCSV renders inquiries as RFC 4180 CSV.  encoding/csv quotes
// embedded commas, quotes and newlines in every field, not just the message.
func buildContactsCSV(contacts []model.Contact) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Email", "Phone", "Message", "Status", "Created At"}); err != nil {
		return nil, err
	}
	for _, ct := range contacts {
		rec := []string{
			ct.Name,
			ct.Email,
			ct.Phone,
			ct.Message,
			ct.Status,
			ct.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
