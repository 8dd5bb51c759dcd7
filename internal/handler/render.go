package handler

import (
	"mime/multipart"

	"contacts_admin/internal/middleware"
	"contacts_admin/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// render executes a page template with the values every page needs.
func render(c *gin.Context, status int, name string, data gin.H) {
	data["csrfField"] = csrf.TemplateField(c.Request)
	data["loggedIn"] = middleware.IsAuthenticated(c)
	if _, ok := data["flash"]; !ok {
		data["flash"] = view.PopFlash(c)
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = nil
	}
	c.HTML(status, name, data)
}

// optionalFile returns the uploaded file, or nil when none was sent.
func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}
