package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdynamic/studio-backend/internal/repository"
)

func storedBlogRows(title, slug, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "slug", "content", "image", "author_id", "author_name", "tags", "category", "status", "created_at"}).
		AddRow(5, title, slug, "c", "/i.jpg", 7, "Admin", []byte("[]"), "Trends", status, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func newBlogUpdateContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/blogs/5", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")
	return c, rec
}

// A PUT payload that omits status must keep the stored status rather than
// writing an empty string outside the draft|published enum.
func TestBlogUpdateKeepsStatusWhenOmitted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Pre-read for the immutable fields.
	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Old Title", "old-title", "published"))
	// Existence check inside the repository update.
	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Old Title", "old-title", "published"))
	// The stored "published" is written back, not "".
	mock.ExpectExec("UPDATE blogs SET").
		WithArgs("Hello World", "hello-world", "c", "/i.jpg", []byte("null"), "Trends", "published", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Hello World", "hello-world", "published"))

	h := NewBlogHandler(repository.NewBlogRepo(db), nil)

	c, rec := newBlogUpdateContext(`{"title":"Hello World","content":"c","image":"/i.jpg","category":"Trends"}`)
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"published"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

// An explicit status in the payload still wins over the stored one.
func TestBlogUpdateAcceptsExplicitStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Old Title", "old-title", "published"))
	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Old Title", "old-title", "published"))
	mock.ExpectExec("UPDATE blogs SET").
		WithArgs("Hello World", "hello-world", "c", "/i.jpg", []byte("null"), "Trends", "draft", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM blogs b LEFT JOIN users").WithArgs(5).
		WillReturnRows(storedBlogRows("Hello World", "hello-world", "draft"))

	h := NewBlogHandler(repository.NewBlogRepo(db), nil)

	c, rec := newBlogUpdateContext(`{"title":"Hello World","content":"c","image":"/i.jpg","category":"Trends","status":"draft"}`)
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"draft"`)
	require.NoError(t, mock.ExpectationsWereMet())
}
