package forms

import (
	"strings"

	"github.com/openshelf/catalog/internal/entities"
)

// BookForm carries a raw book submission. Genre arrives from a checkbox
// group: the binding layer yields nil when nothing was ticked, a
// singleton for one box, and the full slice otherwise.
type BookForm struct {
	Title   string   `form:"title" validate:"required"`
	Author  string   `form:"author" validate:"required,number"`
	Summary string   `form:"summary" validate:"required"`
	ISBN    string   `form:"isbn" validate:"required"`
	Genre   []string `form:"genre" validate:"dive,number"`
}

var bookLabels = map[string]string{
	"Title":   "Title",
	"Author":  "Author",
	"Summary": "Summary",
	"ISBN":    "ISBN",
	"Genre":   "Genre",
}

// Validate normalizes the genre selection, trims the submission in
// place, and returns every violation.
func (f *BookForm) Validate() Errors {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Summary = strings.TrimSpace(f.Summary)
	f.ISBN = strings.TrimSpace(f.ISBN)
	if f.Genre == nil {
		f.Genre = []string{}
	}
	for i, g := range f.Genre {
		f.Genre[i] = strings.TrimSpace(g)
	}
	return collect(validate.Struct(f), bookLabels)
}

// AuthorID returns the selected author identity.
func (f *BookForm) AuthorID() uint {
	return parseID(f.Author)
}

// GenreIDs returns the selected genre identities.
func (f *BookForm) GenreIDs() []uint {
	ids := make([]uint, 0, len(f.Genre))
	for _, g := range f.Genre {
		ids = append(ids, parseID(g))
	}
	return ids
}

// GenreSelected reports whether a genre was part of the submission,
// for re-rendering the checkbox group after a validation failure.
func (f *BookForm) GenreSelected(id uint) bool {
	for _, g := range f.Genre {
		if parseID(g) == id {
			return true
		}
	}
	return false
}

// Book builds the candidate entity from a valid submission. The genre
// association is attached by the caller from freshly fetched records.
func (f *BookForm) Book() entities.Book {
	return entities.Book{
		Title:    f.Title,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		AuthorID: f.AuthorID(),
	}
}
