package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/devdynamic/studio-backend/internal/model"
)

type ProjectRepo struct{ DB *sql.DB }

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{DB: db} }

const projectCols = "id,title,description,category,images,client,location,completion_date,featured,created_at"

// Create inserts a project and fills in its generated ID and timestamp.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO projects (title,description,category,images,client,location,completion_date,featured) VALUES (?,?,?,?,?,?,?,?)",
		p.Title, p.Description, p.Category, images, p.Client, p.Location, p.CompletionDate, p.Featured)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	fresh, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = fresh
	return nil
}

// List returns every project, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+projectCols+" FROM projects ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID fetches a single project.
func (r *ProjectRepo) GetByID(ctx context.Context, id uint64) (model.Project, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+projectCols+" FROM projects WHERE id=? LIMIT 1", id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// Update rewrites every mutable column and returns the stored record.
func (r *ProjectRepo) Update(ctx context.Context, id uint64, p *model.Project) (model.Project, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return model.Project{}, err
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Project{}, err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE projects SET title=?, description=?, category=?, images=?, client=?, location=?, completion_date=?, featured=? WHERE id=?",
		p.Title, p.Description, p.Category, images, p.Client, p.Location, p.CompletionDate, p.Featured, id)
	if err != nil {
		return model.Project{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a project.
func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM projects WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of projects.
func (r *ProjectRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&n)
	return n, err
}

// CountCreatedBetween counts projects created inside the inclusive window.
func (r *ProjectRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE created_at >= ? AND created_at <= ?",
		from, to).Scan(&n)
	return n, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanProject(s scanner) (model.Project, error) {
	var p model.Project
	var images []byte
	err := s.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &images,
		&p.Client, &p.Location, &p.CompletionDate, &p.Featured, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return p, err
		}
	}
	return p, nil
}
