package model

// Contact is a record managed by the contacts backend. The panel never
// stores one; it is always refetched.
type Contact struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	LastName       string `json:"lastName"`
	MiddleInitial  string `json:"middleInitial"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	Court          string `json:"court"`
	Locale         string `json:"locale"`
	Branch         string `json:"branch"`
	IsEmergency    bool   `json:"isEmergency"`
	IsVisibleToAll bool   `json:"isVisibleToAll"`
	ImagePath      string `json:"imagePath,omitempty"`
}

// ContactInput carries the editable fields of a contact to the backend.
type ContactInput struct {
	Name           string
	LastName       string
	MiddleInitial  string
	Phone          string
	Address        string
	Email          string
	Court          string
	Locale         string
	Branch         string
	IsEmergency    bool
	IsVisibleToAll bool
}

// Input returns the editable fields of c.
func (c Contact) Input() ContactInput {
	return ContactInput{
		Name:           c.Name,
		LastName:       c.LastName,
		MiddleInitial:  c.MiddleInitial,
		Phone:          c.Phone,
		Address:        c.Address,
		Email:          c.Email,
		Court:          c.Court,
		Locale:         c.Locale,
		Branch:         c.Branch,
		IsEmergency:    c.IsEmergency,
		IsVisibleToAll: c.IsVisibleToAll,
	}
}

// FilterEmergency returns the contacts flagged as emergency contacts, in order.
func FilterEmergency(contacts []Contact) []Contact {
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.IsEmergency {
			out = append(out, c)
		}
	}
	return out
}

// FindByID returns the contact with id, if present.
func FindByID(contacts []Contact, id int64) (Contact, bool) {
	for _, c := range contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}
