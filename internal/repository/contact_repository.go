package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/devdynamic/studio-backend/internal/model"
)

type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

const contactCols = "id,name,email,phone,message,status,created_at"

// Create inserts an inquiry and returns the stored record.
func (r *ContactRepo) Create(ctx context.Context, ct *model.Contact) error {
	if ct.Status == "" {
		ct.Status = model.ContactStatusNew
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contacts (name,email,phone,message,status) VALUES (?,?,?,?,?)",
		ct.Name, ct.Email, ct.Phone, ct.Message, ct.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ct.ID = uint64(id)
	fresh, err := r.GetByID(ctx, ct.ID)
	if err != nil {
		return err
	}
	*ct = fresh
	return nil
}

// List returns every inquiry, newest first.
func (r *ContactRepo) List(ctx context.Context) ([]model.Contact, error) {
	return r.list(ctx, "SELECT "+contactCols+" FROM contacts ORDER BY created_at DESC, id DESC")
}

// ListByStatus returns inquiries in one state, newest first.
func (r *ContactRepo) ListByStatus(ctx context.Context, status string) ([]model.Contact, error) {
	return r.list(ctx,
		"SELECT "+contactCols+" FROM contacts WHERE status=? ORDER BY created_at DESC, id DESC", status)
}

func (r *ContactRepo) list(ctx context.Context, query string, args ...any) ([]model.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var ct model.Contact
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Phone, &ct.Message, &ct.Status, &ct.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, ct)
	}
	return contacts, rows.Err()
}

// GetByID fetches a single inquiry.
func (r *ContactRepo) GetByID(ctx context.Context, id uint64) (model.Contact, error) {
	var ct model.Contact
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+contactCols+" FROM contacts WHERE id=? LIMIT 1",
		id).Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Phone, &ct.Message, &ct.Status, &ct.CreatedAt)
	if err == sql.ErrNoRows {
		return ct, ErrNotFound
	}
	return ct, err
}

// UpdateStatus flips the status column and returns the stored record.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Contact, error) {
	res, err := r.DB.ExecContext(ctx, "UPDATE contacts SET status=? WHERE id=?", status, id)
	if err != nil {
		return model.Contact{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Contact{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes an inquiry.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM contacts WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of inquiries.
func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&n)
	return n, err
}

// CountCreatedBetween counts inquiries created inside the inclusive window.
func (r *ContactRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contacts WHERE created_at >= ? AND created_at <= ?",
		from, to).Scan(&n)
	return n, err
}
