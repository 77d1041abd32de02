package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Counter reports how many records an entity type has.
type Counter interface {
	Count() (int64, error)
}

// CopyCounter additionally reports how many copies are available.
type CopyCounter interface {
	Counter
	CountAvailable() (int64, error)
}

type HomeController struct {
	books   Counter
	copies  CopyCounter
	authors Counter
	genres  Counter
}

func NewHomeController(books Counter, copies CopyCounter, authors, genres Counter) *HomeController {
	return &HomeController{books: books, copies: copies, authors: authors, genres: genres}
}

// Index renders the catalog home page. The five counts are independent
// reads, so they are issued in parallel and joined before rendering.
// GET /catalog
func (hc *HomeController) Index(c *gin.Context) {
	var (
		bookCount, copyCount, availableCount int64
		authorCount, genreCount              int64
	)

	gg, _ := errgroup.WithContext(c.Request.Context())
	gg.Go(func() (err error) {
		bookCount, err = hc.books.Count()
		return err
	})
	gg.Go(func() (err error) {
		copyCount, err = hc.copies.Count()
		return err
	})
	gg.Go(func() (err error) {
		availableCount, err = hc.copies.CountAvailable()
		return err
	})
	gg.Go(func() (err error) {
		authorCount, err = hc.authors.Count()
		return err
	})
	gg.Go(func() (err error) {
		genreCount, err = hc.genres.Count()
		return err
	})
	if err := gg.Wait(); err != nil {
		renderInternalError(c, err, "count catalog records")
		return
	}

	render(c, http.StatusOK, "index", gin.H{
		"Title":             "Local Library Home",
		"BookCount":         bookCount,
		"BookInstanceCount": copyCount,
		"AvailableCount":    availableCount,
		"AuthorCount":       authorCount,
		"GenreCount":        genreCount,
	})
}
