package handler

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdynamic/studio-backend/internal/model"
)

func TestBuildContactsCSV(t *testing.T) {
	created := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	contacts := []model.Contact{
		{
			Name:      "Alice Smith",
			Email:     "alice@example.com",
			Phone:     "555-0101",
			Message:   "Looking for a kitchen redesign",
			Status:    model.ContactStatusNew,
			CreatedAt: created,
		},
		{
			// Embedded commas, quotes and newlines must survive the export.
			Name:      `Bob "The Builder", Jr.`,
			Email:     "bob@example.com",
			Phone:     "",
			Message:   "Line one\nLine two, with a comma",
			Status:    "replied",
			CreatedAt: created,
		},
	}

	out, err := buildContactsCSV(contacts)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Phone", "Message", "Status", "Created At"}, rows[0])

	assert.Equal(t, "Alice Smith", rows[1][0])
	assert.Equal(t, "alice@example.com", rows[1][1])
	assert.Equal(t, "new", rows[1][4])
	assert.Equal(t, created.Format(time.RFC3339), rows[1][5])

	assert.Equal(t, `Bob "The Builder", Jr.`, rows[2][0])
	assert.Equal(t, "Line one\nLine two, with a comma", rows[2][3])
	assert.Equal(t, "replied", rows[2][4])
}

func TestBuildContactsCSVEmpty(t *testing.T) {
	out, err := buildContactsCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Name", rows[0][0])
}
