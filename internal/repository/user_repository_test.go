package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdynamic/studio-backend/internal/model"
)

func newUserRepoMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(db), mock
}

func userRows(id int, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
		AddRow(id, "Jane", "jane@example.com", "$2a$10$hash", role, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestDeleteGuardedRemovesUser(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec("DELETE u FROM users").
		WithArgs(model.RoleAdmin, 3, model.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteGuarded(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuardedRefusesLastAdmin(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	// The conditional delete matches nothing; the surviving admin row tells
	// the guard apart from a vanished user.
	mock.ExpectExec("DELETE u FROM users").
		WithArgs(model.RoleAdmin, 3, model.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id,name,email,password_hash,role,created_at FROM users").
		WithArgs(3).
		WillReturnRows(userRows(3, model.RoleAdmin))

	err := repo.DeleteGuarded(context.Background(), 3)
	assert.ErrorIs(t, err, ErrLastAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGuardedAlreadyGone(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	// Zero rows because a concurrent delete won; the re-read finds no row,
	// so the caller sees not-found rather than a bogus last-admin refusal.
	mock.ExpectExec("DELETE u FROM users").
		WithArgs(model.RoleAdmin, 3, model.RoleAdmin).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id,name,email,password_hash,role,created_at FROM users").
		WithArgs(3).
		WillReturnError(sql.ErrNoRows)

	err := repo.DeleteGuarded(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
