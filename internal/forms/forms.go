// Package forms implements sanitization and validation of catalog form
// submissions. Rules are declarative validator tags on form structs;
// every violation across a submission is collected so a form can be
// re-rendered once with all of its messages.
package forms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateInputFormat is the wire format of date form fields.
const dateInputFormat = "2006-01-02"

var validate = validator.New()

// FieldError is one human-readable validation failure.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the ordered list of failures for a submission. An empty
// list means the submission is valid.
type Errors []FieldError

// Messages flattens the errors for rendering.
func (e Errors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

// collect translates validator failures into ordered field messages.
// validator reports the first failing rule per field and keeps struct
// field order, so one submission yields at most one message per field.
func collect(err error, labels map[string]string) Errors {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{Field: "", Message: "Submitted form could not be processed."}}
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := labels[fe.StructField()]
		if !ok {
			label = fe.StructField()
		}
		out = append(out, FieldError{Field: fe.StructField(), Message: message(fe, label)})
	}
	return out
}

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must be specified.", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "alphanumunicode":
		return fmt.Sprintf("%s must contain only letters and numbers.", label)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD).", label)
	case "number":
		return fmt.Sprintf("%s must be specified.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

// ParseDate converts a validated optional date field. Empty yields nil.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateInputFormat, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseID(s string) uint {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
