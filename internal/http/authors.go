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

// AuthorStore defines database operations for author workflows.
type AuthorStore interface {
	All() ([]entities.Author, error)
	ByID(id uint) (*entities.Author, error)
	Create(author *entities.Author) error
	Delete(id uint) error
}

// AuthorBookStore resolves the books referencing an author.
type AuthorBookStore interface {
	ByAuthor(authorID uint) ([]books.Summary, error)
}

type AuthorsController struct {
	store AuthorStore
	books AuthorBookStore
}

func NewAuthorsController(store AuthorStore, books AuthorBookStore) *AuthorsController {
	return &AuthorsController{store: store, books: books}
}

// List renders all authors sorted by family name.
// GET /catalog/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.store.All()
	if err != nil {
		renderInternalError(c, err, "list authors")
		return
	}
	render(c, http.StatusOK, "author_list", gin.H{
		"Title":   "Author List",
		"Authors": authors,
	})
}

// Detail renders one author and the books written by them. The two
// lookups are independent and run in parallel.
// GET /catalog/author/:id
func (ac *AuthorsController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	var (
		author      *entities.Author
		authorBooks []books.Summary
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		author, err = ac.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		authorBooks, err = ac.books.ByAuthor(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		renderLookupError(c, err, "Author")
		return
	}

	render(c, http.StatusOK, "author_detail", gin.H{
		"Title":  "Author Detail",
		"Author": author,
		"Books":  authorBooks,
	})
}

// CreateGet renders an empty author form.
// GET /catalog/author/create
func (ac *AuthorsController) CreateGet(c *gin.Context) {
	render(c, http.StatusOK, "author_form", gin.H{
		"Title": "Create Author",
		"Form":  &forms.AuthorForm{},
	})
}

// CreatePost validates the submission and inserts the author. Authors
// carry no duplicate rule: every valid submission creates a record.
// POST /catalog/author/create
func (ac *AuthorsController) CreatePost(c *gin.Context) {
	var form forms.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		render(c, http.StatusOK, "author_form", gin.H{
			"Title":  "Create Author",
			"Form":   &form,
			"Errors": errs.Messages(),
		})
		return
	}

	author := form.Author()
	if err := ac.store.Create(&author); err != nil {
		renderInternalError(c, err, "create author")
		return
	}
	c.Redirect(http.StatusSeeOther, author.URL())
}

// UpdateGet signals that author updates are not implemented.
// GET /catalog/author/:id/update
func (ac *AuthorsController) UpdateGet(c *gin.Context) {
	renderError(c, http.StatusNotImplemented, "Author update is not implemented")
}

// UpdatePost signals that author updates are not implemented.
// POST /catalog/author/:id/update
func (ac *AuthorsController) UpdatePost(c *gin.Context) {
	renderError(c, http.StatusNotImplemented, "Author update is not implemented")
}

// DeleteGet renders the delete confirmation. When books still reference
// the author, they are listed and the form is withheld. A missing
// author is treated as already deleted.
// GET /catalog/author/:id/delete
func (ac *AuthorsController) DeleteGet(c *gin.Context) {
	ac.renderDeleteOrRemove(c, false)
}

// DeletePost removes the author unless books still reference them, in
// which case the blocked confirmation view is rendered again.
// POST /catalog/author/:id/delete
func (ac *AuthorsController) DeletePost(c *gin.Context) {
	ac.renderDeleteOrRemove(c, true)
}

// renderDeleteOrRemove implements both halves of the delete workflow.
// GET and POST share the fetch and the blocked view; only an
// unreferenced author on POST proceeds to removal.
func (ac *AuthorsController) renderDeleteOrRemove(c *gin.Context, remove bool) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	var (
		author      *entities.Author
		authorBooks []books.Summary
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		author, err = ac.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		authorBooks, err = ac.books.ByAuthor(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/catalog/authors")
			return
		}
		renderInternalError(c, err, "fetch author for delete")
		return
	}

	if remove && len(authorBooks) == 0 {
		if err := ac.store.Delete(id); err != nil {
			renderInternalError(c, err, "delete author")
			return
		}
		c.Redirect(http.StatusSeeOther, "/catalog/authors")
		return
	}

	render(c, http.StatusOK, "author_delete", gin.H{
		"Title":  "Delete Author",
		"Author": author,
		"Books":  authorBooks,
	})
}
