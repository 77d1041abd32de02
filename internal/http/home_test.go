package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/entities"
)

func TestHomeController_Index(t *testing.T) {
	db, router, cleanup := setupTestRouter(t)
	defer cleanup()

	author := seedAuthor(t, db, "Isaac", "Asimov")
	seedGenre(t, db, "Science Fiction")
	book := entities.Book{Title: "Foundation", Summary: "s", ISBN: "1", AuthorID: author.ID}
	require.NoError(t, db.DB.Create(&book).Error)
	require.NoError(t, db.DB.Create(&entities.BookInstance{BookID: book.ID, Imprint: "i", Status: entities.StatusAvailable, DueBack: time.Now()}).Error)
	require.NoError(t, db.DB.Create(&entities.BookInstance{BookID: book.ID, Imprint: "i", Status: entities.StatusLoaned, DueBack: time.Now()}).Error)

	w := get(router, "/catalog")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Local Library")
	assert.Contains(t, body, "Copies available:</strong> 1")
	assert.Contains(t, body, "Copies:</strong> 2")
}

func TestRootRedirectsToCatalog(t *testing.T) {
	_, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := get(router, "/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog", w.Header().Get("Location"))
}
