package form

import "contacts_admin/internal/model"

// ContactForm is the add contact screen and the edit buffer of the modal.
type ContactForm struct {
	Name           string `form:"name" binding:"required"`
	LastName       string `form:"lastName"`
	MiddleInitial  string `form:"middleInitial"`
	Phone          string `form:"phone" binding:"required"`
	Address        string `form:"address" binding:"required"`
	Email          string `form:"email"`
	Court          string `form:"court"`
	Locale         string `form:"locale"`
	Branch         string `form:"branch"`
	IsEmergency    bool   `form:"isEmergency"`
	IsVisibleToAll bool   `form:"isVisibleToAll"`
}

// NewContactForm returns an empty form with its default flags.
func NewContactForm() ContactForm {
	return ContactForm{IsVisibleToAll: true}
}

// ContactFormFrom seeds an edit buffer from an existing record.
func ContactFormFrom(c model.Contact) ContactForm {
	in := c.Input()
	return ContactForm{
		Name:           in.Name,
		LastName:       in.LastName,
		MiddleInitial:  in.MiddleInitial,
		Phone:          in.Phone,
		Address:        in.Address,
		Email:          in.Email,
		Court:          in.Court,
		Locale:         in.Locale,
		Branch:         in.Branch,
		IsEmergency:    in.IsEmergency,
		IsVisibleToAll: in.IsVisibleToAll,
	}
}

func (f ContactForm) Input() model.ContactInput {
	return model.ContactInput{
		Name:           f.Name,
		LastName:       f.LastName,
		MiddleInitial:  f.MiddleInitial,
		Phone:          f.Phone,
		Address:        f.Address,
		Email:          f.Email,
		Court:          f.Court,
		Locale:         f.Locale,
		Branch:         f.Branch,
		IsEmergency:    f.IsEmergency,
		IsVisibleToAll: f.IsVisibleToAll,
	}
}
