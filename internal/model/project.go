package model

import (
	"strings"
	"time"
)

// ProjectCategories is the closed set of portfolio categories.
var ProjectCategories = []string{
	"Residential",
	"Commercial",
	"Modern",
	"Traditional",
	"Minimalist",
}

// Project is a portfolio entry.  Projects have no owner: they belong to the
// studio and are managed by admins only.
type Project struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Images         []string  `json:"images"`
	Client         string    `json:"client"`
	Location       string    `json:"location"`
	CompletionDate time.Time `json:"completionDate"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate checks required fields and enum membership, returning one
// human-readable message per violation.
func (p *Project) Validate() []string {
	var msgs []string
	title := strings.TrimSpace(p.Title)
	switch {
	case title == "":
		msgs = append(msgs, "Please add a title")
	case len(title) > 100:
		msgs = append(msgs, "Title cannot be more than 100 characters")
	}
	if strings.TrimSpace(p.Description) == "" {
		msgs = append(msgs, "Please add a description")
	}
	if p.Category == "" {
		msgs = append(msgs, "Please add a category")
	} else if !contains(ProjectCategories, p.Category) {
		msgs = append(msgs, "Category must be one of "+strings.Join(ProjectCategories, ", "))
	}
	if len(p.Images) == 0 {
		msgs = append(msgs, "Please add at least one image")
	}
	if strings.TrimSpace(p.Client) == "" {
		msgs = append(msgs, "Please add a client name")
	}
	if strings.TrimSpace(p.Location) == "" {
		msgs = append(msgs, "Please add a location")
	}
	if p.CompletionDate.IsZero() {
		msgs = append(msgs, "Please add a completion date")
	}
	return msgs
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
