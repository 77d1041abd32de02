package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
	"github.com/openshelf/catalog/internal/forms"
)

// BookStore defines database operations for book workflows.
type BookStore interface {
	All() ([]entities.Book, error)
	ByID(id uint) (*entities.Book, error)
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	Delete(id uint) error
}

// BookAuthorStore supplies the author list for book forms.
type BookAuthorStore interface {
	All() ([]entities.Author, error)
}

// BookGenreStore supplies genre reference data for book forms. Only
// identities chosen from the freshly fetched list can end up attached
// to a book, which is how genre references stay valid without a
// storage-level constraint.
type BookGenreStore interface {
	All() ([]entities.Genre, error)
	ByIDs(ids []uint) ([]entities.Genre, error)
}

// BookCopyStore resolves the copies of a book.
type BookCopyStore interface {
	ByBook(bookID uint) ([]entities.BookInstance, error)
}

// GenreOption pairs a genre with its checkbox state for form render.
// The projection keeps selection state out of the fetched entity.
type GenreOption struct {
	Genre    entities.Genre
	Selected bool
}

type BooksController struct {
	store   BookStore
	authors BookAuthorStore
	genres  BookGenreStore
	copies  BookCopyStore
}

func NewBooksController(store BookStore, authors BookAuthorStore, genres BookGenreStore, copies BookCopyStore) *BooksController {
	return &BooksController{store: store, authors: authors, genres: genres, copies: copies}
}

// List renders all books sorted by title with their authors.
// GET /catalog/books
func (bc *BooksController) List(c *gin.Context) {
	allBooks, err := bc.store.All()
	if err != nil {
		renderInternalError(c, err, "list books")
		return
	}
	render(c, http.StatusOK, "book_list", gin.H{
		"Title": "Book List",
		"Books": allBooks,
	})
}

// Detail renders one book with its author, genres, and copies. The book
// lookup and the copy lookup are independent and run in parallel.
// GET /catalog/book/:id
func (bc *BooksController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	var (
		book   *entities.Book
		copies []entities.BookInstance
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		book, err = bc.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		copies, err = bc.copies.ByBook(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		renderLookupError(c, err, "Book")
		return
	}

	render(c, http.StatusOK, "book_detail", gin.H{
		"Title":     book.Title,
		"Book":      book,
		"Instances": copies,
	})
}

// referenceData fetches the author and genre lists for the book form in
// parallel, marking genres selected by the given predicate.
func (bc *BooksController) referenceData(c *gin.Context, selected func(id uint) bool) ([]entities.Author, []GenreOption, error) {
	var (
		allAuthors []entities.Author
		allGenres  []entities.Genre
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		allAuthors, err = bc.authors.All()
		return err
	})
	gg.Go(func() (err error) {
		allGenres, err = bc.genres.All()
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, nil, err
	}

	options := make([]GenreOption, 0, len(allGenres))
	for _, g := range allGenres {
		options = append(options, GenreOption{Genre: g, Selected: selected(g.ID)})
	}
	return allAuthors, options, nil
}

// CreateGet renders an empty book form with author and genre choices.
// GET /catalog/book/create
func (bc *BooksController) CreateGet(c *gin.Context) {
	allAuthors, options, err := bc.referenceData(c, func(uint) bool { return false })
	if err != nil {
		renderInternalError(c, err, "fetch book form data")
		return
	}
	render(c, http.StatusOK, "book_form", gin.H{
		"Title":   "Create Book",
		"Form":    &forms.BookForm{},
		"Authors": allAuthors,
		"Genres":  options,
	})
}

// CreatePost validates the submission and inserts the book with its
// genre set resolved to freshly fetched records. Books carry no
// duplicate rule.
// POST /catalog/book/create
func (bc *BooksController) CreatePost(c *gin.Context) {
	var form forms.BookForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		allAuthors, options, err := bc.referenceData(c, form.GenreSelected)
		if err != nil {
			renderInternalError(c, err, "fetch book form data")
			return
		}
		render(c, http.StatusOK, "book_form", gin.H{
			"Title":   "Create Book",
			"Form":    &form,
			"Authors": allAuthors,
			"Genres":  options,
			"Errors":  errs.Messages(),
		})
		return
	}

	book := form.Book()
	selectedGenres, err := bc.genres.ByIDs(form.GenreIDs())
	if err != nil {
		renderInternalError(c, err, "resolve book genres")
		return
	}
	book.Genres = selectedGenres

	if err := bc.store.Create(&book); err != nil {
		renderInternalError(c, err, "create book")
		return
	}
	c.Redirect(http.StatusSeeOther, book.URL())
}

// UpdateGet renders the book form prefilled from the stored record.
// The book and the reference lists are all independent reads.
// GET /catalog/book/:id/update
func (bc *BooksController) UpdateGet(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	var (
		book       *entities.Book
		allAuthors []entities.Author
		allGenres  []entities.Genre
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		book, err = bc.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		allAuthors, err = bc.authors.All()
		return err
	})
	gg.Go(func() (err error) {
		allGenres, err = bc.genres.All()
		return err
	})
	if err := gg.Wait(); err != nil {
		renderLookupError(c, err, "Book")
		return
	}

	current := make(map[uint]bool, len(book.Genres))
	for _, g := range book.Genres {
		current[g.ID] = true
	}
	options := make([]GenreOption, 0, len(allGenres))
	for _, g := range allGenres {
		options = append(options, GenreOption{Genre: g, Selected: current[g.ID]})
	}

	render(c, http.StatusOK, "book_form", gin.H{
		"Title":   "Update Book",
		"Form":    bookFormFromEntity(book),
		"Authors": allAuthors,
		"Genres":  options,
	})
}

// UpdatePost validates the submission and replaces the stored book's
// fields at its preserved identity, reconciling the genre association
// to exactly the submitted set. No duplicate check on book updates.
// POST /catalog/book/:id/update
func (bc *BooksController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	var form forms.BookForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		allAuthors, options, err := bc.referenceData(c, form.GenreSelected)
		if err != nil {
			renderInternalError(c, err, "fetch book form data")
			return
		}
		render(c, http.StatusOK, "book_form", gin.H{
			"Title":   "Update Book",
			"Form":    &form,
			"Authors": allAuthors,
			"Genres":  options,
			"Errors":  errs.Messages(),
		})
		return
	}

	book := form.Book()
	book.ID = id
	selectedGenres, err := bc.genres.ByIDs(form.GenreIDs())
	if err != nil {
		renderInternalError(c, err, "resolve book genres")
		return
	}
	book.Genres = selectedGenres

	if err := bc.store.Update(&book); err != nil {
		renderLookupError(c, err, "Book")
		return
	}
	c.Redirect(http.StatusSeeOther, book.URL())
}

// DeleteGet renders the delete confirmation. Books are leaves: the view
// lists the copies that will be orphaned but deletion is never blocked.
// A missing book is treated as already deleted.
// GET /catalog/book/:id/delete
func (bc *BooksController) DeleteGet(c *gin.Context) {
	bc.renderDeleteOrRemove(c, false)
}

// DeletePost removes the book unconditionally.
// POST /catalog/book/:id/delete
func (bc *BooksController) DeletePost(c *gin.Context) {
	bc.renderDeleteOrRemove(c, true)
}

func (bc *BooksController) renderDeleteOrRemove(c *gin.Context, remove bool) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	var (
		book   *entities.Book
		copies []entities.BookInstance
	)
	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		book, err = bc.store.ByID(id)
		return err
	})
	gg.Go(func() (err error) {
		copies, err = bc.copies.ByBook(id)
		return err
	})
	if err := gg.Wait(); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/catalog/books")
			return
		}
		renderInternalError(c, err, "fetch book for delete")
		return
	}

	if remove {
		if err := bc.store.Delete(id); err != nil {
			renderInternalError(c, err, "delete book")
			return
		}
		c.Redirect(http.StatusSeeOther, "/catalog/books")
		return
	}

	render(c, http.StatusOK, "book_delete", gin.H{
		"Title":     "Delete Book",
		"Book":      book,
		"Instances": copies,
	})
}

// bookFormFromEntity prefills the form from a stored record.
func bookFormFromEntity(book *entities.Book) *forms.BookForm {
	form := &forms.BookForm{
		Title:   book.Title,
		Author:  uintString(book.AuthorID),
		Summary: book.Summary,
		ISBN:    book.ISBN,
		Genre:   []string{},
	}
	for _, g := range book.Genres {
		form.Genre = append(form.Genre, uintString(g.ID))
	}
	return form
}
