package http

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/database"
)

// render writes an HTML view. The CSRF form field, when the middleware
// is active, is injected into every view model so form templates can
// embed it without each handler threading it through. It is always set
// so templates render cleanly with the middleware off.
func render(c *gin.Context, status int, name string, data gin.H) {
	data["CSRFField"] = template.HTML("")
	if field, ok := c.Get(csrfFieldKey); ok {
		data["CSRFField"] = field
	}
	c.HTML(status, name, data)
}

// renderError shows the generic error view.
func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error", gin.H{
		"Title":   "Error",
		"Status":  status,
		"Message": message,
	})
}

// renderNotFound shows the error view for a missing resource.
func renderNotFound(c *gin.Context, resource string) {
	renderError(c, http.StatusNotFound, resource+" not found")
}

// renderInternalError logs the underlying failure and shows a generic
// fault view. The error itself is never exposed to the client.
func renderInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	renderError(c, http.StatusInternalServerError, "something went wrong")
}

// renderLookupError picks between the 404 and 500 views for a failed
// primary lookup.
func renderLookupError(c *gin.Context, err error, resource string) {
	if errors.Is(err, database.ErrNotFound) {
		renderNotFound(c, resource)
		return
	}
	renderInternalError(c, err, "fetch "+resource)
}

// uintString formats an identity for form prefill values.
func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseIDParam extracts the numeric :id URL parameter. A malformed ID
// can only come from a hand-edited URL, so it renders as not found.
func parseIDParam(c *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderNotFound(c, resource)
		return 0, false
	}
	return uint(id), true
}
