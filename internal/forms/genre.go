package forms

import (
	"strings"

	"github.com/openshelf/catalog/internal/entities"
)

// GenreForm carries a raw genre submission.
type GenreForm struct {
	Name string `form:"name" validate:"required,min=3,max=100"`
}

var genreLabels = map[string]string{
	"Name": "Genre name",
}

// Validate trims the submission in place and returns every violation.
func (f *GenreForm) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	return collect(validate.Struct(f), genreLabels)
}

// Genre builds the candidate entity from a valid submission.
func (f *GenreForm) Genre() entities.Genre {
	return entities.Genre{Name: f.Name}
}
