package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
	"github.com/openshelf/catalog/internal/forms"
)

// InstanceStore defines database operations for book-copy workflows.
type InstanceStore interface {
	All() ([]entities.BookInstance, error)
	ByID(id uint) (*entities.BookInstance, error)
	Create(instance *entities.BookInstance) error
	Update(instance *entities.BookInstance) error
	Delete(id uint) error
}

// InstanceBookStore supplies the book list for copy forms.
type InstanceBookStore interface {
	All() ([]entities.Book, error)
}

type InstancesController struct {
	store InstanceStore
	books InstanceBookStore
}

func NewInstancesController(store InstanceStore, books InstanceBookStore) *InstancesController {
	return &InstancesController{store: store, books: books}
}

// List renders every copy with its book.
// GET /catalog/bookinstances
func (ic *InstancesController) List(c *gin.Context) {
	copies, err := ic.store.All()
	if err != nil {
		renderInternalError(c, err, "list book instances")
		return
	}
	render(c, http.StatusOK, "bookinstance_list", gin.H{
		"Title":     "Book Instance List",
		"Instances": copies,
	})
}

// Detail renders one copy with its book.
// GET /catalog/bookinstance/:id
func (ic *InstancesController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "Book instance")
	if !ok {
		return
	}

	instance, err := ic.store.ByID(id)
	if err != nil {
		renderLookupError(c, err, "Book instance")
		return
	}

	render(c, http.StatusOK, "bookinstance_detail", gin.H{
		"Title":    "Book Instance Detail",
		"Instance": instance,
	})
}

// formData renders the copy form with the book list for selection.
func (ic *InstancesController) formData(c *gin.Context, title string, form *forms.InstanceForm, errMessages []string) {
	allBooks, err := ic.books.All()
	if err != nil {
		renderInternalError(c, err, "fetch instance form data")
		return
	}
	render(c, http.StatusOK, "bookinstance_form", gin.H{
		"Title":    title,
		"Form":     form,
		"Books":    allBooks,
		"Statuses": entities.InstanceStatuses,
		"Errors":   errMessages,
	})
}

// CreateGet renders an empty copy form.
// GET /catalog/bookinstance/create
func (ic *InstancesController) CreateGet(c *gin.Context) {
	ic.formData(c, "Create Book Instance", &forms.InstanceForm{Status: string(entities.StatusMaintenance)}, nil)
}

// CreatePost validates the submission and inserts the copy. Copies
// carry no duplicate rule.
// POST /catalog/bookinstance/create
func (ic *InstancesController) CreatePost(c *gin.Context) {
	var form forms.InstanceForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		ic.formData(c, "Create Book Instance", &form, errs.Messages())
		return
	}

	instance := form.Instance()
	if err := ic.store.Create(&instance); err != nil {
		renderInternalError(c, err, "create book instance")
		return
	}
	c.Redirect(http.StatusSeeOther, instance.URL())
}

// UpdateGet renders the copy form prefilled from the stored record.
// GET /catalog/bookinstance/:id/update
func (ic *InstancesController) UpdateGet(c *gin.Context) {
	id, ok := parseIDParam(c, "Book instance")
	if !ok {
		return
	}

	instance, err := ic.store.ByID(id)
	if err != nil {
		renderLookupError(c, err, "Book instance")
		return
	}

	form := &forms.InstanceForm{
		Book:    uintString(instance.BookID),
		Imprint: instance.Imprint,
		Status:  string(instance.Status),
		DueBack: instance.DueBackInput(),
	}
	ic.formData(c, "Update Book Instance", form, nil)
}

// UpdatePost replaces the copy's fields at its preserved identity.
// POST /catalog/bookinstance/:id/update
func (ic *InstancesController) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c, "Book instance")
	if !ok {
		return
	}

	var form forms.InstanceForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "malformed form submission")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		ic.formData(c, "Update Book Instance", &form, errs.Messages())
		return
	}

	instance := form.Instance()
	instance.ID = id
	if err := ic.store.Update(&instance); err != nil {
		renderLookupError(c, err, "Book instance")
		return
	}
	c.Redirect(http.StatusSeeOther, instance.URL())
}

// DeleteGet renders the delete confirmation. Copies are leaves, so the
// deletion is never blocked. A missing copy is treated as already
// deleted.
// GET /catalog/bookinstance/:id/delete
func (ic *InstancesController) DeleteGet(c *gin.Context) {
	id, ok := parseIDParam(c, "Book instance")
	if !ok {
		return
	}

	instance, err := ic.store.ByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/catalog/bookinstances")
			return
		}
		renderInternalError(c, err, "fetch book instance for delete")
		return
	}

	render(c, http.StatusOK, "bookinstance_delete", gin.H{
		"Title":    "Delete Book Instance",
		"Instance": instance,
	})
}

// DeletePost removes the copy unconditionally.
// POST /catalog/bookinstance/:id/delete
func (ic *InstancesController) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c, "Book instance")
	if !ok {
		return
	}

	if _, err := ic.store.ByID(id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/catalog/bookinstances")
			return
		}
		renderInternalError(c, err, "fetch book instance for delete")
		return
	}

	if err := ic.store.Delete(id); err != nil {
		renderInternalError(c, err, "delete book instance")
		return
	}
	c.Redirect(http.StatusSeeOther, "/catalog/bookinstances")
}
