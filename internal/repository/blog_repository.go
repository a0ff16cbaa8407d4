package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/devdynamic/studio-backend/internal/model"
)

type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

// blogCols joins users for the author name.  LEFT JOIN because the author
// reference is non-owning: deleting a user must not hide their articles.
const blogCols = `b.id, b.title, b.slug, b.content, b.image, b.author_id,
	COALESCE(u.name, ''), b.tags, b.category, b.status, b.created_at`

// Create inserts a blog and returns the stored record.  The slug is expected
// to be derived by the caller before the write.
func (r *BlogRepo) Create(ctx context.Context, b *model.Blog) error {
	tags, err := json.Marshal(b.Tags)
	if err != nil {
		return err
	}
	if b.Status == "" {
		b.Status = model.BlogStatusDraft
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO blogs (title,slug,content,image,author_id,tags,category,status) VALUES (?,?,?,?,?,?,?,?)",
		b.Title, b.Slug, b.Content, b.Image, b.AuthorID, tags, b.Category, b.Status)
	if err != nil {
		if isDuplicate(err) {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	fresh, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = fresh
	return nil
}

// List returns every blog with its author name, newest first.  Drafts are
// included: public reads apply no status filtering.
func (r *BlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+blogCols+" FROM blogs b LEFT JOIN users u ON u.id=b.author_id ORDER BY b.created_at DESC, b.id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []model.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// GetByID fetches a single blog with its author name.
func (r *BlogRepo) GetByID(ctx context.Context, id uint64) (model.Blog, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+blogCols+" FROM blogs b LEFT JOIN users u ON u.id=b.author_id WHERE b.id=? LIMIT 1", id)
	b, err := scanBlog(row)
	if err == sql.ErrNoRows {
		return b, ErrNotFound
	}
	return b, err
}

// Update rewrites every mutable column, slug included, and returns the
// stored record.
func (r *BlogRepo) Update(ctx context.Context, id uint64, b *model.Blog) (model.Blog, error) {
	tags, err := json.Marshal(b.Tags)
	if err != nil {
		return model.Blog{}, err
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Blog{}, err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE blogs SET title=?, slug=?, content=?, image=?, tags=?, category=?, status=? WHERE id=?",
		b.Title, b.Slug, b.Content, b.Image, tags, b.Category, b.Status, id)
	if err != nil {
		if isDuplicate(err) {
			return model.Blog{}, ErrSlugExists
		}
		return model.Blog{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus flips only the status column and returns the stored record.
func (r *BlogRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Blog, error) {
	res, err := r.DB.ExecContext(ctx, "UPDATE blogs SET status=? WHERE id=?", status, id)
	if err != nil {
		return model.Blog{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Blog{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a blog.
func (r *BlogRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM blogs WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of blogs.
func (r *BlogRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM blogs").Scan(&n)
	return n, err
}

// CountCreatedBetween counts blogs created inside the inclusive window.
func (r *BlogRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM blogs WHERE created_at >= ? AND created_at <= ?",
		from, to).Scan(&n)
	return n, err
}

func scanBlog(s scanner) (model.Blog, error) {
	var b model.Blog
	var tags []byte
	err := s.Scan(&b.ID, &b.Title, &b.Slug, &b.Content, &b.Image, &b.AuthorID,
		&b.AuthorName, &tags, &b.Category, &b.Status, &b.CreatedAt)
	if err != nil {
		return b, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &b.Tags); err != nil {
			return b, err
		}
	}
	return b, nil
}
