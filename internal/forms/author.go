package forms

import (
	"strings"

	"github.com/openshelf/catalog/internal/entities"
)

// AuthorForm carries a raw author submission.
type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required,max=100,alphanumunicode"`
	FamilyName  string `form:"family_name" validate:"required,max=100,alphanumunicode"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `form:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

var authorLabels = map[string]string{
	"FirstName":   "First name",
	"FamilyName":  "Family name",
	"DateOfBirth": "Date of birth",
	"DateOfDeath": "Date of death",
}

// Validate trims the submission in place and returns every violation.
func (f *AuthorForm) Validate() Errors {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.FamilyName = strings.TrimSpace(f.FamilyName)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.DateOfDeath = strings.TrimSpace(f.DateOfDeath)
	return collect(validate.Struct(f), authorLabels)
}

// Author builds the candidate entity from a valid submission. The
// returned record carries no ID; update flows set it explicitly.
func (f *AuthorForm) Author() entities.Author {
	return entities.Author{
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: ParseDate(f.DateOfBirth),
		DateOfDeath: ParseDate(f.DateOfDeath),
	}
}
