package http

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

func countGenres(t *testing.T, db *database.Database) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&entities.Genre{}).Count(&count).Error)
	return count
}

func TestGenresController_Create(t *testing.T) {
	t.Run("new name creates exactly one record", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := postForm(router, "/catalog/genre/create", url.Values{"name": {"Fantasy"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.EqualValues(t, 1, countGenres(t, db))

		var genre entities.Genre
		require.NoError(t, db.DB.First(&genre).Error)
		assert.Equal(t, "Fantasy", genre.Name)
		assert.Equal(t, genre.URL(), w.Header().Get("Location"))
	})

	t.Run("case variant redirects to the existing record", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		existing := entities.Genre{Name: "Fantasy"}
		require.NoError(t, db.DB.Create(&existing).Error)

		w := postForm(router, "/catalog/genre/create", url.Values{"name": {"fantasy"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, existing.URL(), w.Header().Get("Location"))
		assert.EqualValues(t, 1, countGenres(t, db), "no duplicate document is created")
	})

	t.Run("too-short name re-renders the form with the error", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := postForm(router, "/catalog/genre/create", url.Values{"name": {"ab"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Genre name must be at least 3 characters.")
		assert.Contains(t, w.Body.String(), `value="ab"`, "submitted value is redisplayed")
		assert.EqualValues(t, 0, countGenres(t, db))
	})
}

func TestGenresController_Update(t *testing.T) {
	t.Run("exact duplicate redirects without applying", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		fantasy := entities.Genre{Name: "Fantasy"}
		horror := entities.Genre{Name: "Horror"}
		require.NoError(t, db.DB.Create(&fantasy).Error)
		require.NoError(t, db.DB.Create(&horror).Error)

		w := postForm(router, fmt.Sprintf("/catalog/genre/%d/update", horror.ID), url.Values{"name": {"Fantasy"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, fantasy.URL(), w.Header().Get("Location"))

		var unchanged entities.Genre
		require.NoError(t, db.DB.First(&unchanged, horror.ID).Error)
		assert.Equal(t, "Horror", unchanged.Name, "edit is not applied")
	})

	t.Run("case variant of another genre is applied", func(t *testing.T) {
		// The update duplicate check is case-sensitive, unlike create's.
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		fantasy := entities.Genre{Name: "Fantasy"}
		horror := entities.Genre{Name: "Horror"}
		require.NoError(t, db.DB.Create(&fantasy).Error)
		require.NoError(t, db.DB.Create(&horror).Error)

		w := postForm(router, fmt.Sprintf("/catalog/genre/%d/update", horror.ID), url.Values{"name": {"fantasy"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, horror.URL(), w.Header().Get("Location"))

		var renamed entities.Genre
		require.NoError(t, db.DB.First(&renamed, horror.ID).Error)
		assert.Equal(t, "fantasy", renamed.Name)
	})

	t.Run("missing genre on update form is a 404", func(t *testing.T) {
		_, router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := get(router, "/catalog/genre/42/update")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenresController_Delete(t *testing.T) {
	t.Run("blocked while books carry the genre", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		genre := entities.Genre{Name: "Fantasy"}
		require.NoError(t, db.DB.Create(&genre).Error)
		author := entities.Author{FirstName: "Pat", FamilyName: "Rothfuss"}
		require.NoError(t, db.DB.Create(&author).Error)
		book := entities.Book{Title: "The Name of the Wind", Summary: "s", ISBN: "1", AuthorID: author.ID, Genres: []entities.Genre{genre}}
		require.NoError(t, db.DB.Create(&book).Error)

		w := postForm(router, fmt.Sprintf("/catalog/genre/%d/delete", genre.ID), url.Values{})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Name of the Wind", "blocking books are listed")
		assert.EqualValues(t, 1, countGenres(t, db), "store is unchanged")
	})

	t.Run("unreferenced genre is removed", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		genre := entities.Genre{Name: "Fantasy"}
		require.NoError(t, db.DB.Create(&genre).Error)

		w := postForm(router, fmt.Sprintf("/catalog/genre/%d/delete", genre.ID), url.Values{})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))
		assert.EqualValues(t, 0, countGenres(t, db))
	})

	t.Run("missing genre redirects to the listing", func(t *testing.T) {
		_, router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := postForm(router, "/catalog/genre/42/delete", url.Values{})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))

		w = get(router, "/catalog/genre/42/delete")
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestGenresController_Detail(t *testing.T) {
	t.Run("renders genre with its books", func(t *testing.T) {
		db, router, cleanup := setupTestRouter(t)
		defer cleanup()

		genre := entities.Genre{Name: "Fantasy"}
		require.NoError(t, db.DB.Create(&genre).Error)
		author := entities.Author{FirstName: "Pat", FamilyName: "Rothfuss"}
		require.NoError(t, db.DB.Create(&author).Error)
		book := entities.Book{Title: "The Name of the Wind", Summary: "s", ISBN: "1", AuthorID: author.ID, Genres: []entities.Genre{genre}}
		require.NoError(t, db.DB.Create(&book).Error)

		w := get(router, genre.URL())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Fantasy")
		assert.Contains(t, w.Body.String(), "The Name of the Wind")
	})

	t.Run("missing genre is a 404", func(t *testing.T) {
		_, router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := get(router, "/catalog/genre/42")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
