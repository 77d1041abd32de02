package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/entities"
)

func TestAuthorForm_Validate(t *testing.T) {
	t.Run("valid submission yields no errors", func(t *testing.T) {
		form := AuthorForm{FirstName: "  Pat ", FamilyName: "Doe", DateOfBirth: "1980-01-01"}
		assert.Empty(t, form.Validate())
		assert.Equal(t, "Pat", form.FirstName, "whitespace is trimmed")
	})

	t.Run("missing names collect one error per field", func(t *testing.T) {
		form := AuthorForm{}
		errs := form.Validate()
		require.Len(t, errs, 2)
		assert.Equal(t, "First name must be specified.", errs[0].Message)
		assert.Equal(t, "Family name must be specified.", errs[1].Message)
	})

	t.Run("non-alphanumeric name is rejected", func(t *testing.T) {
		form := AuthorForm{FirstName: "Pat!", FamilyName: "Doe"}
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "First name must contain only letters and numbers.", errs[0].Message)
	})

	t.Run("malformed date is rejected, empty date is not", func(t *testing.T) {
		form := AuthorForm{FirstName: "Pat", FamilyName: "Doe", DateOfBirth: "01/01/1980"}
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "DateOfBirth", errs[0].Field)

		form = AuthorForm{FirstName: "Pat", FamilyName: "Doe"}
		assert.Empty(t, form.Validate())
	})

	t.Run("candidate carries parsed optional dates", func(t *testing.T) {
		form := AuthorForm{FirstName: "Pat", FamilyName: "Doe", DateOfBirth: "1980-01-01"}
		require.Empty(t, form.Validate())

		author := form.Author()
		require.NotNil(t, author.DateOfBirth)
		assert.Equal(t, time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), *author.DateOfBirth)
		assert.Nil(t, author.DateOfDeath)
		assert.Zero(t, author.ID)
	})
}

func TestGenreForm_Validate(t *testing.T) {
	t.Run("length bounds apply after trim", func(t *testing.T) {
		form := GenreForm{Name: "  ab  "}
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, "Genre name must be at least 3 characters.", errs[0].Message)
	})

	t.Run("three characters is enough", func(t *testing.T) {
		form := GenreForm{Name: "Pop"}
		assert.Empty(t, form.Validate())
	})
}

func TestBookForm_GenreNormalization(t *testing.T) {
	t.Run("absent selection becomes an empty set", func(t *testing.T) {
		form := BookForm{Title: "T", Author: "1", Summary: "S", ISBN: "I"}
		require.Empty(t, form.Validate())
		assert.NotNil(t, form.Genre)
		assert.Empty(t, form.GenreIDs())
	})

	t.Run("single selection becomes a singleton", func(t *testing.T) {
		form := BookForm{Title: "T", Author: "1", Summary: "S", ISBN: "I", Genre: []string{"4"}}
		require.Empty(t, form.Validate())
		assert.Equal(t, []uint{4}, form.GenreIDs())
	})

	t.Run("multiple selections pass through", func(t *testing.T) {
		form := BookForm{Title: "T", Author: "1", Summary: "S", ISBN: "I", Genre: []string{"4", "9"}}
		require.Empty(t, form.Validate())
		assert.Equal(t, []uint{4, 9}, form.GenreIDs())
		assert.True(t, form.GenreSelected(9))
		assert.False(t, form.GenreSelected(5))
	})

	t.Run("missing required fields are all collected", func(t *testing.T) {
		form := BookForm{}
		errs := form.Validate()
		assert.Len(t, errs, 4)
	})
}

func TestInstanceForm_Validate(t *testing.T) {
	t.Run("unknown status is rejected", func(t *testing.T) {
		form := InstanceForm{Book: "1", Imprint: "X", Status: "Lost"}
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "Status must be one of")
	})

	t.Run("empty due date defaults to now", func(t *testing.T) {
		form := InstanceForm{Book: "1", Imprint: "X", Status: "Available"}
		require.Empty(t, form.Validate())

		instance := form.Instance()
		assert.Equal(t, entities.StatusAvailable, instance.Status)
		assert.WithinDuration(t, time.Now(), instance.DueBack, time.Minute)
	})

	t.Run("submitted due date is used", func(t *testing.T) {
		form := InstanceForm{Book: "2", Imprint: "X", Status: "Loaned", DueBack: "2030-06-01"}
		require.Empty(t, form.Validate())

		instance := form.Instance()
		assert.Equal(t, uint(2), instance.BookID)
		assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), instance.DueBack)
	})
}
