package view

import (
	"fmt"

	"contacts_admin/internal/form"
	"contacts_admin/internal/model"
)

// Modal is the dialog shown over the contacts table. In edit mode it holds
// the in-progress edit buffer; in confirm mode only a message. It knows the
// URLs to post to and nothing else.
type Modal struct {
	Title      string
	Form       *form.ContactForm
	Errors     form.FieldErrors
	Error      string
	Message    string
	SubmitURL  string
	ConfirmURL string
	CloseURL   string
}

func (m *Modal) IsConfirm() bool {
	return m.Form == nil
}

// EditModal opens contact for editing. buf overrides the record's values
// when a previous submission has to be shown again.
func EditModal(c model.Contact, buf *form.ContactForm, errs form.FieldErrors, closeURL string) *Modal {
	if buf == nil {
		f := form.ContactFormFrom(c)
		buf = &f
	}
	return &Modal{
		Title:     "Edit Contact",
		Form:      buf,
		Errors:    errs,
		SubmitURL: fmt.Sprintf("/dashboard/contacts/%d/edit", c.ID),
		CloseURL:  closeURL,
	}
}

// DeleteModal asks to confirm removing contact.
func DeleteModal(c model.Contact, closeURL string) *Modal {
	return &Modal{
		Title:      "Confirm Deletion",
		Message:    fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", c.Name),
		ConfirmURL: fmt.Sprintf("/dashboard/contacts/%d/delete", c.ID),
		CloseURL:   closeURL,
	}
}
