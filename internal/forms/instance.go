package forms

import (
	"strings"
	"time"

	"github.com/openshelf/catalog/internal/entities"
)

// InstanceForm carries a raw book-copy submission.
type InstanceForm struct {
	Book    string `form:"book" validate:"required,number"`
	Imprint string `form:"imprint" validate:"required"`
	Status  string `form:"status" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `form:"due_back" validate:"omitempty,datetime=2006-01-02"`
}

var instanceLabels = map[string]string{
	"Book":    "Book",
	"Imprint": "Imprint",
	"Status":  "Status",
	"DueBack": "Date due back",
}

// Validate trims the submission in place and returns every violation.
func (f *InstanceForm) Validate() Errors {
	f.Book = strings.TrimSpace(f.Book)
	f.Imprint = strings.TrimSpace(f.Imprint)
	f.Status = strings.TrimSpace(f.Status)
	f.DueBack = strings.TrimSpace(f.DueBack)
	return collect(validate.Struct(f), instanceLabels)
}

// BookID returns the selected book identity.
func (f *InstanceForm) BookID() uint {
	return parseID(f.Book)
}

// Instance builds the candidate entity from a valid submission. An
// empty due-back date defaults to now.
func (f *InstanceForm) Instance() entities.BookInstance {
	dueBack := time.Now()
	if d := ParseDate(f.DueBack); d != nil {
		dueBack = *d
	}
	return entities.BookInstance{
		BookID:  f.BookID(),
		Imprint: f.Imprint,
		Status:  entities.InstanceStatus(f.Status),
		DueBack: dueBack,
	}
}
