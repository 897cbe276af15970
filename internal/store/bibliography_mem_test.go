package store

import (
	"context"
	"testing"

	"refapi/internal/entity"
	"refapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookEntry(id, author, year, title string) entity.BibliographyEntry {
	return entity.BibliographyEntry{
		ID: id,
		Reference: entity.Reference{
			Type:    entity.SourceBook,
			Authors: []string{author},
			Year:    year,
			Title:   title,
		},
		Formatted: author + " (" + year + ") " + title + ".",
	}
}

func TestBibliographyMem_ListSortsByAuthor(t *testing.T) {
	ctx := context.Background()
	s := NewBibliographyMem()

	require.NoError(t, s.Add(ctx, bookEntry("1", "Young, T.", "2019", "Zeta")))
	require.NoError(t, s.Add(ctx, bookEntry("2", "adams, B.", "2021", "Alpha")))
	require.NoError(t, s.Add(ctx, bookEntry("3", "Brown, C.", "2020", "Beta")))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// case-insensitive A-Z by author
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "3", entries[1].ID)
	assert.Equal(t, "1", entries[2].ID)
}

func TestBibliographyMem_SameAuthorSortsByYear(t *testing.T) {
	ctx := context.Background()
	s := NewBibliographyMem()

	require.NoError(t, s.Add(ctx, bookEntry("1", "Smith, J.", "2021", "Later Work")))
	require.NoError(t, s.Add(ctx, bookEntry("2", "Smith, J.", "2015", "Early Work")))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)
}

func TestBibliographyMem_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewBibliographyMem()
	require.NoError(t, s.Add(ctx, bookEntry("1", "Smith, J.", "2020", "Example Title")))

	first, err := s.List(ctx)
	require.NoError(t, err)
	first[0].Formatted = "mutated"

	second, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Smith, J. (2020) Example Title.", second[0].Formatted)
}

func TestBibliographyMem_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewBibliographyMem()
	require.NoError(t, s.Add(ctx, bookEntry("1", "Smith, J.", "2020", "Example Title")))

	assert.NoError(t, s.Delete(ctx, "1"))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, s.Delete(ctx, "1"), usecase.ErrNotFound)
}

func TestBibliographyMem_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewBibliographyMem()
	require.NoError(t, s.Add(ctx, bookEntry("1", "Smith, J.", "2020", "Example Title")))
	require.NoError(t, s.Add(ctx, bookEntry("2", "Doe, R.", "2018", "Another Title")))

	require.NoError(t, s.Clear(ctx))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
