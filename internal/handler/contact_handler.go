package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"contacts_admin/internal/form"
	"contacts_admin/internal/model"
	"contacts_admin/internal/pagination"
	"contacts_admin/internal/service"
	"contacts_admin/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	dashboardPath = "/dashboard"
	emergencyPath = "/dashboard/emergency-contacts"

	msgContactRequired  = "Name, phone, and address are required!"
	msgContactAdded     = "Contact added successfully"
	msgContactAddFailed = "An error occurred while adding the contact"
	msgImageTooLarge    = "The profile picture is too large."
	msgFetchFailed      = "Failed to fetch contacts"
	msgUpdated          = "Contact updated successfully"
	msgUpdateFailed     = "An error occurred while updating the contact"
	msgDeleted          = "Contact deleted successfully"
	msgDeleteFailed     = "An error occurred while deleting the contact"
	msgEmergencySet     = "Contact set as emergency contact"
	msgEmergencyFailed  = "An error occurred while setting the emergency contact"
	msgInvalidContactID = "Invalid contact ID"
)

// listScreen is one table view over the fetched contacts.
type listScreen struct {
	heading string
	path    string
	filter  func([]model.Contact) []model.Contact
}

var (
	allContactsScreen       = listScreen{heading: "Contacts Dashboard", path: dashboardPath}
	emergencyContactsScreen = listScreen{heading: "Emergency Contacts", path: emergencyPath, filter: model.FilterEmergency}
)

// ContactHandler serves the contacts table, its row actions and the add contact form.
type ContactHandler struct {
	service  service.ContactService
	pageSize int
	log      *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService, pageSize int, log *zap.Logger) *ContactHandler {
	return &ContactHandler{service: s, pageSize: pageSize, log: log}
}

// --- Table screens ---

func (h *ContactHandler) Dashboard(c *gin.Context) {
	h.showList(c, allContactsScreen)
}

func (h *ContactHandler) EmergencyContacts(c *gin.Context) {
	h.showList(c, emergencyContactsScreen)
}

// showList renders a table page, opening the edit or delete modal when the
// query names a contact.
func (h *ContactHandler) showList(c *gin.Context, screen listScreen) {
	pageNum := pagination.ParseNumber(c.Query("page"))
	closeURL := pageURL(screen.path, pageNum)

	var openModal func([]model.Contact) *view.Modal
	if id, err := strconv.ParseInt(c.Query("edit"), 10, 64); err == nil {
		openModal = func(contacts []model.Contact) *view.Modal {
			if ct, ok := model.FindByID(contacts, id); ok {
				return view.EditModal(ct, nil, nil, closeURL)
			}
			return nil
		}
	} else if id, err := strconv.ParseInt(c.Query("delete"), 10, 64); err == nil {
		openModal = func(contacts []model.Contact) *view.Modal {
			if ct, ok := model.FindByID(contacts, id); ok {
				return view.DeleteModal(ct, closeURL)
			}
			return nil
		}
	}

	h.renderList(c, http.StatusOK, screen, pageNum, openModal)
}

// renderList refetches the whole collection; there is no cache.
func (h *ContactHandler) renderList(c *gin.Context, status int, screen listScreen, pageNum int, openModal func([]model.Contact) *view.Modal) {
	data := gin.H{
		"title":    screen.heading,
		"heading":  screen.heading,
		"basePath": screen.path,
		"error":    "",
		"modal":    (*view.Modal)(nil),
	}

	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("Error fetching contacts", zap.Error(err))
		data["error"] = msgFetchFailed
		data["page"] = pagination.Paginate([]model.Contact{}, pageNum, h.pageSize)
		render(c, http.StatusBadGateway, "dashboard.html", data)
		return
	}

	if screen.filter != nil {
		contacts = screen.filter(contacts)
	}
	// A page past the end (for example after deleting the last row) shows the last page.
	data["page"] = pagination.Paginate(contacts, pageNum, h.pageSize).Within(contacts)
	if openModal != nil {
		data["modal"] = openModal(contacts)
	}
	render(c, status, "dashboard.html", data)
}

// --- Row actions ---

func (h *ContactHandler) EditContact(c *gin.Context) {
	id, ok := h.contactID(c)
	if !ok {
		return
	}
	screen, pageNum := returnTo(c)
	closeURL := pageURL(screen.path, pageNum)

	var buf form.ContactForm
	fieldErrs, err := form.Bind(c, &buf)
	if err != nil {
		fieldErrs = form.FieldErrors{}
	}
	if err != nil || len(fieldErrs) > 0 {
		h.renderList(c, http.StatusBadRequest, screen, pageNum, func(contacts []model.Contact) *view.Modal {
			m := view.EditModal(contactOrStub(contacts, id), &buf, fieldErrs, closeURL)
			m.Error = msgContactRequired
			return m
		})
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, buf.Input(), optionalFile(c, "file")); err != nil {
		h.log.Error("Error updating contact", zap.Int64("contact_id", id), zap.Error(err))
		msg := msgUpdateFailed
		if errors.Is(err, service.ErrFileSizeExceeded) {
			msg = msgImageTooLarge
		}
		h.renderList(c, http.StatusBadGateway, screen, pageNum, func(contacts []model.Contact) *view.Modal {
			m := view.EditModal(contactOrStub(contacts, id), &buf, nil, closeURL)
			m.Error = msg
			return m
		})
		return
	}

	view.SetFlash(c, view.FlashSuccess, msgUpdated)
	c.Redirect(http.StatusSeeOther, closeURL)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := h.contactID(c)
	if !ok {
		return
	}
	screen, pageNum := returnTo(c)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Error deleting contact", zap.Int64("contact_id", id), zap.Error(err))
		view.SetFlash(c, view.FlashError, msgDeleteFailed)
	} else {
		view.SetFlash(c, view.FlashSuccess, msgDeleted)
	}
	c.Redirect(http.StatusSeeOther, pageURL(screen.path, pageNum))
}

func (h *ContactHandler) SetEmergency(c *gin.Context) {
	id, ok := h.contactID(c)
	if !ok {
		return
	}
	screen, pageNum := returnTo(c)

	if err := h.service.SetEmergency(c.Request.Context(), id); err != nil {
		h.log.Error("Error setting emergency contact", zap.Int64("contact_id", id), zap.Error(err))
		view.SetFlash(c, view.FlashError, msgEmergencyFailed)
	} else {
		view.SetFlash(c, view.FlashSuccess, msgEmergencySet)
	}
	c.Redirect(http.StatusSeeOther, pageURL(screen.path, pageNum))
}

// --- Add contact form ---

func (h *ContactHandler) ShowAddContact(c *gin.Context) {
	renderAddContact(c, http.StatusOK, form.NewContactForm(), nil, "", "")
}

func (h *ContactHandler) AddContact(c *gin.Context) {
	var req form.ContactForm
	fieldErrs, err := form.Bind(c, &req)
	if err != nil || len(fieldErrs) > 0 {
		renderAddContact(c, http.StatusBadRequest, req, fieldErrs, msgContactRequired, "")
		return
	}

	if err := h.service.Add(c.Request.Context(), req.Input(), optionalFile(c, "file")); err != nil {
		h.log.Error("Error adding contact", zap.Error(err))
		msg := msgContactAddFailed
		if errors.Is(err, service.ErrFileSizeExceeded) {
			msg = msgImageTooLarge
		}
		renderAddContact(c, http.StatusBadGateway, req, nil, msg, "")
		return
	}

	renderAddContact(c, http.StatusOK, form.NewContactForm(), nil, "", msgContactAdded)
}

func renderAddContact(c *gin.Context, status int, f form.ContactForm, errs form.FieldErrors, errMsg, successMsg string) {
	render(c, status, "contact_form.html", gin.H{
		"title":   "Add Contact",
		"form":    f,
		"errors":  errs,
		"error":   errMsg,
		"success": successMsg,
	})
}

// --- Helpers ---

func (h *ContactHandler) contactID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		view.SetFlash(c, view.FlashError, msgInvalidContactID)
		c.Redirect(http.StatusSeeOther, dashboardPath)
		return 0, false
	}
	return id, true
}

// returnTo reads which table and page a row action was posted from.
func returnTo(c *gin.Context) (listScreen, int) {
	screen := allContactsScreen
	if c.PostForm("from") == emergencyPath {
		screen = emergencyContactsScreen
	}
	return screen, pagination.ParseNumber(c.PostForm("page"))
}

func contactOrStub(contacts []model.Contact, id int64) model.Contact {
	if ct, ok := model.FindByID(contacts, id); ok {
		return ct
	}
	return model.Contact{ID: id}
}

func pageURL(path string, page int) string {
	return fmt.Sprintf("%s?page=%d", path, page)
}

// RegisterContactRoutes registers the contact screens behind guard.
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	dashboard := rg.Group(dashboardPath)
	dashboard.Use(guard)
	{
		dashboard.GET("", h.Dashboard)
		dashboard.GET("/emergency-contacts", h.EmergencyContacts)
		dashboard.GET("/contacts", h.ShowAddContact)
		dashboard.POST("/contacts", h.AddContact)
		dashboard.POST("/contacts/:id/edit", h.EditContact)
		dashboard.POST("/contacts/:id/delete", h.DeleteContact)
		dashboard.POST("/contacts/:id/emergency", h.SetEmergency)
	}
}
