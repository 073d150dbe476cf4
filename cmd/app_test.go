package main

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"intrack/internal/data"
	"intrack/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) (*data.SQLStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "internships.db")
	s := data.NewSQLStore()
	require.NoError(t, s.OpenOrCreate(path))
	t.Cleanup(func() { s.Close() })

	acme, err := model.NewInternship("Acme", "Intern", model.StatusApplied, "", time.Time{}, "")
	require.NoError(t, err)
	globex, err := model.NewInternship("Globex", "Intern", model.StatusOffered, "", time.Time{}, "")
	require.NoError(t, err)
	book := model.NewInternshipBook()
	book.SetInternships([]model.Internship{acme, globex})
	require.NoError(t, s.SaveInternships(book))
	require.NoError(t, s.SaveLastView(data.ViewMetadata{
		SortPrefix:      model.PrefixCompany,
		SortOrder:       model.Descending,
		FilterParameter: model.DefaultFilterMetadata,
		FilterValue:     model.DefaultFilterMetadata,
	}))
	return s, path
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM internship").Scan(&n))
	return n
}

func TestOpenModel(t *testing.T) {
	s, _ := seededStore(t)
	mm, err := openModel(s, model.NewUserPrefs(), zerolog.Nop())
	require.NoError(t, err)

	items := mm.FilteredInternshipList().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Globex", items[0].Company, "last view restored")
	assert.Equal(t, model.Descending, mm.ComparatorOrder())
}

func TestOpenModel_UnreadableStoreStopsStartup(t *testing.T) {
	s, path := seededStore(t)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("UPDATE internship SET status = 'Ghosted' WHERE company = 'Globex'")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	mm, err := openModel(s, model.NewUserPrefs(), zerolog.Nop())
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Nil(t, mm)
	assert.Equal(t, 2, countRows(t, path), "stored rows are left alone")
}
