package books

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database, func()) {
	t.Helper()

	dbPath := "./test_books_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), db, cleanup
}

func seedAuthor(t *testing.T, db *database.Database, first, family string) entities.Author {
	t.Helper()
	author := entities.Author{FirstName: first, FamilyName: family}
	require.NoError(t, db.DB.Create(&author).Error)
	return author
}

func seedGenre(t *testing.T, db *database.Database, name string) entities.Genre {
	t.Helper()
	genre := entities.Genre{Name: name}
	require.NoError(t, db.DB.Create(&genre).Error)
	return genre
}

func TestRepository_CreateWithGenres(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := seedAuthor(t, db, "Pat", "Rothfuss")
	fantasy := seedGenre(t, db, "Fantasy")
	scifi := seedGenre(t, db, "Science Fiction")

	book := entities.Book{
		Title:    "The Name of the Wind",
		Summary:  "A story.",
		ISBN:     "9781473211896",
		AuthorID: author.ID,
		Genres:   []entities.Genre{fantasy, scifi},
	}
	require.NoError(t, repo.Create(&book))
	require.NotZero(t, book.ID)

	found, err := repo.ByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rothfuss", found.Author.FamilyName)

	names := make([]string, 0, len(found.Genres))
	for _, g := range found.Genres {
		names = append(names, g.Name)
	}
	assert.ElementsMatch(t, []string{"Fantasy", "Science Fiction"}, names)
}

func TestRepository_ByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.ByID(42)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_All_SortedWithAuthor(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := seedAuthor(t, db, "Ben", "Bova")
	require.NoError(t, repo.Create(&entities.Book{Title: "Zebra", Summary: "s", ISBN: "2", AuthorID: author.ID}))
	require.NoError(t, repo.Create(&entities.Book{Title: "Apes and Angels", Summary: "s", ISBN: "1", AuthorID: author.ID}))

	books, err := repo.All()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Apes and Angels", books[0].Title)
	assert.Equal(t, "Bova, Ben", books[0].Author.FullName())
}

func TestRepository_Update_ReconcilesGenres(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := seedAuthor(t, db, "Pat", "Rothfuss")
	fantasy := seedGenre(t, db, "Fantasy")
	scifi := seedGenre(t, db, "Science Fiction")
	poetry := seedGenre(t, db, "Poetry")

	book := entities.Book{
		Title: "Old Title", Summary: "s", ISBN: "1", AuthorID: author.ID,
		Genres: []entities.Genre{fantasy, scifi},
	}
	require.NoError(t, repo.Create(&book))

	updated := entities.Book{
		ID: book.ID, Title: "New Title", Summary: "s2", ISBN: "2", AuthorID: author.ID,
		Genres: []entities.Genre{poetry},
	}
	require.NoError(t, repo.Update(&updated))

	found, err := repo.ByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", found.Title)
	assert.Equal(t, "s2", found.Summary)
	require.Len(t, found.Genres, 1)
	assert.Equal(t, "Poetry", found.Genres[0].Name)

	t.Run("missing record reports not found", func(t *testing.T) {
		err := repo.Update(&entities.Book{ID: 999, Title: "x", Summary: "x", ISBN: "x", AuthorID: author.ID})
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_Projections(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	rothfuss := seedAuthor(t, db, "Pat", "Rothfuss")
	bova := seedAuthor(t, db, "Ben", "Bova")
	fantasy := seedGenre(t, db, "Fantasy")

	require.NoError(t, repo.Create(&entities.Book{
		Title: "The Name of the Wind", Summary: "wind", ISBN: "1",
		AuthorID: rothfuss.ID, Genres: []entities.Genre{fantasy},
	}))
	require.NoError(t, repo.Create(&entities.Book{
		Title: "Apes and Angels", Summary: "apes", ISBN: "2", AuthorID: bova.ID,
	}))

	t.Run("by author", func(t *testing.T) {
		books, err := repo.ByAuthor(rothfuss.ID)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "The Name of the Wind", books[0].Title)
		assert.Equal(t, "wind", books[0].Summary)
		assert.NotEmpty(t, books[0].URL())
	})

	t.Run("by genre", func(t *testing.T) {
		books, err := repo.ByGenre(fantasy.ID)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "The Name of the Wind", books[0].Title)
	})

	t.Run("empty for unreferenced genre", func(t *testing.T) {
		books, err := repo.ByGenre(999)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author := seedAuthor(t, db, "Pat", "Rothfuss")
	fantasy := seedGenre(t, db, "Fantasy")
	book := entities.Book{
		Title: "t", Summary: "s", ISBN: "1", AuthorID: author.ID,
		Genres: []entities.Genre{fantasy},
	}
	require.NoError(t, repo.Create(&book))

	require.NoError(t, repo.Delete(book.ID))

	_, err := repo.ByID(book.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	var joins int64
	require.NoError(t, db.DB.Table("book_genres").Count(&joins).Error)
	assert.EqualValues(t, 0, joins, "genre association rows are cleared")

	require.NoError(t, repo.Delete(book.ID), "deleting an absent book is not an error")
}
