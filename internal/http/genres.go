package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/database/books"
	"github.com/openshelf/catalog/internal/entities"
	"github.com/openshelf/catalog/internal/forms"
)

// GenreStore defines database operations for genre workflows.
type GenreStore interface {
	All() ([]entities.Genre, error)
	ByID(id uint) (*entities.Genre, error)
	ByNameFold(name string) (*entities.Genre, error)
	ByNameExact(name string, excludeID uint) (*entities.Genre, error)
	Create(genre *entities.Genre) error
	Update(genre *entities.Genre) error
	Delete(id uint) error
}

// GenreBookStore resolves the books carrying a genre.
type GenreBookStore interface {
	ByGenre(genreID uint) ([]books.Summary, error)
}

type GenresController struct {
	store GenreStore
	books GenreBookStore
}

func NewGenresController(store GenreStore, books GenreBookStore) *GenresController {
	return &GenresController{store: store, books: books}
}

// List renders all genres sorted by name.
// GET /catalog/genres
func (gc *GenresController) List(c *gin.Context) {
	genres, err := gc.store.All()
	if err != nil {
		renderInternalError(c, err, "list genres")
		return
	}
	render(c, http.StatusOK, "genre_list", gin.H{
		"Title":  "Genre List",
		"Genres": genres,
	})
}

// Detail renders one genre with the books carrying it, fetched in
// parallel.
// GET /catalog/genre/:id
func (gc *GenresController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "Genre")
	if !ok {
		return
	}

	var (
		genre      *entities.Genre
		genreBooks []books.Summary
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		genre, err = gc.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		genreBooks, err = gc.books.ByGenre(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		renderLookupError(c, err, "Genre")
		return
	}

	render(c, http.StatusOK, "genre_detail", gin.H{
		"Title": "Genre Detail",
		"Genre": genre,
		"Books": genreBooks,
	})
}

// CreateGet renders an empty genre form.
// GET /catalog/genre/create
func (gc *GenresController) CreateGet(c *gin.Context) {
	render(c, http.StatusOK, "genre_form", gin.H{
		"Title": "Create Genre",
		"Form":  &forms.GenreForm{},
	})
}

// CreatePost validates the submission and inserts the genre unless a
// case-insensitive equivalent already exists, in which case the request
// redirects to the existing record instead of creating a duplicate.
// POST /catalog/genre/create
func (gc *GenresController) CreatePost(c *gin.Context) {
	var form forms.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "genre_form", gin.H{
			"Title":  "Create Genre",
			"Form":   &form,
			"Errors": errs.Messages(),
		})
		return
	}

	existing, err := gc.store.ByNameFold(form.Name)
	if err == nil {
		c.Redirect(http.StatusSeeOther, existing.URL())
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		renderInternalError(c, err, "check genre name")
		return
	}

	genre := form.Genre()
	if err := gc.store.Create(&genre); err != nil {
		renderInternalError(c, err, "create genre")
		return
	}
	c.Redirect(http.StatusSeeOther, genre.URL())
}

// UpdateGet renders the genre form prefilled with the stored name.
// GET /catalog/genre/:id/update
func (gc *GenresController) UpdateGet(c *gin.Context) {
	id, ok := parseIDParam(c, "Genre")
	if !ok {
		return
	}

	genre, err := gc.store.ByID(id)
	if err != nil {
		renderLookupError(c, err, "Genre")
		return
	}

	render(c, http.StatusOK, "genre_form", gin.H{
		"Title": "Update Genre",
		"Form":  &forms.GenreForm{Name: genre.Name},
	})
}

// UpdatePost replaces the genre's name at its preserved identity. The
// duplicate check here is exact (case-sensitive): only a different
// record with the identical name causes a redirect-to-existing. Note
// this is stricter than the create path's case-insensitive check.
// POST /catalog/genre/:id/update
func (gc *GenresController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "Genre")
	if !ok {
		return
	}

	var form forms.GenreForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "genre_form", gin.H{
			"Title":  "Update Genre",
			"Form":   &form,
			"Errors": errs.Messages(),
		})
		return
	}

	existing, err := gc.store.ByNameExact(form.Name, id)
	if err == nil {
		c.Redirect(http.StatusSeeOther, existing.URL())
		return
	}
	if !errors.Is(err, database.ErrNotFound) {
		renderInternalError(c, err, "check genre name")
		return
	}

	genre := form.Genre()
	genre.ID = id
	if err := gc.store.Update(&genre); err != nil {
		renderLookupError(c, err, "Genre")
		return
	}
	c.Redirect(http.StatusSeeOther, genre.URL())
}

// DeleteGet renders the delete confirmation, listing any books still
// carrying the genre. A missing genre is treated as already deleted.
// GET /catalog/genre/:id/delete
func (gc *GenresController) DeleteGet(c *gin.Context) {
	gc.renderDeleteOrRemove(c, false)
}

// DeletePost removes the genre unless books still carry it.
// POST /catalog/genre/:id/delete
func (gc *GenresController) DeletePost(c *gin.Context) {
	gc.renderDeleteOrRemove(c, true)
}

func (gc *GenresController) renderDeleteOrRemove(c *gin.Context, remove bool) {
	id, ok := parseIDParam(c, "Genre")
	if !ok {
		return
	}

	var (
		genre      *entities.Genre
		genreBooks []books.Summary
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		genre, err = gc.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		genreBooks, err = gc.books.ByGenre(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/catalog/genres")
			return
		}
		renderInternalError(c, err, "fetch genre for delete")
		return
	}

	if remove && len(genreBooks) == 0 {
		if err := gc.store.Delete(id); err != nil {
			renderInternalError(c, err, "delete genre")
			return
		}
		c.Redirect(http.StatusSeeOther, "/catalog/genres")
		return
	}

	render(c, http.StatusOK, "genre_delete", gin.H{
		"Title": "Delete Genre",
		"Genre": genre,
		"Books": genreBooks,
	})
}
