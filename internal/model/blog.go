package model

import (
	"strings"
	"time"
)

// Blog status values.  Publishing is a dedicated transition endpoint, but a
// blog in either status is publicly readable.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogCategories is the closed set of article categories.
var BlogCategories = []string{
	"Interior Design",
	"Home Decor",
	"Tips & Tricks",
	"Trends",
	"Sustainability",
}

// Blog is an article.  Slug is always re-derived from the current title at
// write time and is unique across the collection.  AuthorID is a non-owning
// reference to a user; AuthorName is joined in on reads and never stored.
type Blog struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	AuthorID   uint64    `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Tags       []string  `json:"tags"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ValidBlogStatus reports whether s is draft or published.
func ValidBlogStatus(s string) bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

// Validate checks required fields and enum membership, returning one
// human-readable message per violation.
func (b *Blog) Validate() []string {
	var msgs []string
	title := strings.TrimSpace(b.Title)
	switch {
	case title == "":
		msgs = append(msgs, "Please add a title")
	case len(title) > 200:
		msgs = append(msgs, "Title cannot be more than 200 characters")
	}
	if strings.TrimSpace(b.Content) == "" {
		msgs = append(msgs, "Please add content")
	}
	if strings.TrimSpace(b.Image) == "" {
		msgs = append(msgs, "Please add a featured image")
	}
	if b.AuthorID == 0 {
		msgs = append(msgs, "Please add an author")
	}
	if b.Category == "" {
		msgs = append(msgs, "Please add a category")
	} else if !contains(BlogCategories, b.Category) {
		msgs = append(msgs, "Category must be one of "+strings.Join(BlogCategories, ", "))
	}
	if b.Status != "" && !ValidBlogStatus(b.Status) {
		msgs = append(msgs, "Status must be either draft or published")
	}
	return msgs
}
