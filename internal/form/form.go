// Package form binds submitted HTML forms and turns validation failures
// into per-field messages, so no backend call is made for an incomplete form.
package form

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a struct field name to its message.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Bind fills dst from the request form (urlencoded or multipart).
// Validation failures come back as FieldErrors with a nil error; a malformed
// request comes back as an error. dst keeps every submitted value either way.
func Bind(c *gin.Context, dst any) (FieldErrors, error) {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fe := make(FieldErrors, len(verrs))
	for _, v := range verrs {
		fe[v.Field()] = message(v)
	}
	return fe, nil
}

func message(v validator.FieldError) string {
	label := humanize(v.Field())
	switch v.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	default:
		return label + " is invalid"
	}
}

// humanize turns "MiddleInitial" into "Middle initial".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
