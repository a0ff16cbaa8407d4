package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validProject() Project {
	return Project{
		Title:          "Loft Renovation",
		Description:    "Full renovation of a downtown loft",
		Category:       "Residential",
		Images:         []string{"/img/loft-1.jpg"},
		Client:         "Acme Corp",
		Location:       "Berlin",
		CompletionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func validBlog() Blog {
	return Blog{
		Title:    "Five Lighting Mistakes",
		Content:  "Lighting sets the mood of a room...",
		Image:    "/img/lighting.jpg",
		AuthorID: 1,
		Category: "Tips & Tricks",
		Status:   BlogStatusDraft,
	}
}

func TestProjectValidate(t *testing.T) {
	p := validProject()
	assert.Empty(t, p.Validate())

	p = validProject()
	p.Title = ""
	msgs := p.Validate()
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "title")

	p = validProject()
	p.Title = strings.Repeat("x", 101)
	assert.Contains(t, p.Validate()[0], "100 characters")

	p = validProject()
	p.Category = "Futuristic"
	assert.Contains(t, p.Validate()[0], "Category must be one of")

	p = validProject()
	p.Images = nil
	assert.Contains(t, p.Validate()[0], "at least one image")

	// All violations are reported together, one message each.
	empty := Project{}
	assert.Len(t, empty.Validate(), 7)
}

func TestBlogValidate(t *testing.T) {
	b := validBlog()
	assert.Empty(t, b.Validate())

	b = validBlog()
	b.Title = ""
	msgs := b.Validate()
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "title")

	b = validBlog()
	b.Title = strings.Repeat("y", 201)
	assert.Contains(t, b.Validate()[0], "200 characters")

	b = validBlog()
	b.Status = "archived"
	assert.Contains(t, b.Validate()[0], "draft or published")

	b = validBlog()
	b.Category = "Gardening"
	assert.Contains(t, b.Validate()[0], "Category must be one of")

	// Empty status is acceptable: the repository defaults it to draft.
	b = validBlog()
	b.Status = ""
	assert.Empty(t, b.Validate())
}

func TestContactValidate(t *testing.T) {
	ct := Contact{Name: "Jane", Email: "jane@example.com", Message: "Hi there"}
	assert.Empty(t, ct.Validate())

	ct.Message = ""
	assert.Contains(t, ct.Validate()[0], "message")

	ct = Contact{Name: "Jane", Email: "jane@example.com", Message: "Hi", Status: "whatever"}
	assert.Contains(t, ct.Validate()[0], "Status must be one of")

	for _, s := range ContactStatuses {
		assert.True(t, ValidContactStatus(s), s)
	}
	assert.False(t, ValidContactStatus("pending"))
}

func TestUserValidate(t *testing.T) {
	u := User{Name: "Jane", Email: "jane@example.com", Role: RoleUser}
	assert.Empty(t, u.Validate())

	u.Role = "superuser"
	assert.Contains(t, u.Validate()[0], "user or admin")

	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("root"))
}
