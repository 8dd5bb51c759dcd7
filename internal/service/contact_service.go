package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"contacts_admin/internal/apiclient"
	"contacts_admin/internal/model"
)

var (
	ErrFileRequired      = errors.New("a file is required")
	ErrInvalidFileFormat = errors.New("invalid file format. only .xls and .xlsx are allowed")
	ErrFileSizeExceeded  = errors.New("file size exceeds limit")
)

// spreadsheetExts are checked by name only; the backend parses the content.
var spreadsheetExts = map[string]bool{".xls": true, ".xlsx": true}

// ContactService defines operations on the backend's contacts.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	Add(ctx context.Context, in model.ContactInput, image *multipart.FileHeader) error
	Edit(ctx context.Context, id int64, in model.ContactInput, image *multipart.FileHeader) error
	Delete(ctx context.Context, id int64) error
	SetEmergency(ctx context.Context, id int64) error
	UploadSpreadsheet(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type contactService struct {
	api         Requester
	maxFileSize int64
}

// NewContactService creates a new ContactService. Files larger than
// maxFileSize are rejected before anything is sent.
func NewContactService(api Requester, maxFileSize int64) ContactService {
	return &contactService{api: api, maxFileSize: maxFileSize}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := s.api.Do(ctx, http.MethodGet, "/contacts/public", nil, &contacts); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Add(ctx context.Context, in model.ContactInput, image *multipart.FileHeader) error {
	body := contactFields(in).
		AddField("isVisibleToAll", strconv.FormatBool(in.IsVisibleToAll)).
		AddField("isEmergency", strconv.FormatBool(in.IsEmergency))

	return s.send(ctx, http.MethodPost, "/contacts/admin/add", body, image, nil, "add contact")
}

// Edit replaces the text fields of contact id. The flags are not part of an
// edit: the emergency flag has its own action.
func (s *contactService) Edit(ctx context.Context, id int64, in model.ContactInput, image *multipart.FileHeader) error {
	path := fmt.Sprintf("/contacts/admin/edit/%d", id)
	return s.send(ctx, http.MethodPut, path, contactFields(in), image, nil, "edit contact")
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/contacts/admin/delete/%d", id), nil, nil); err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return nil
}

func (s *contactService) SetEmergency(ctx context.Context, id int64) error {
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/contacts/admin/emergency/%d", id), nil, nil); err != nil {
		return fmt.Errorf("set emergency contact %d: %w", id, err)
	}
	return nil
}

// UploadSpreadsheet forwards an .xls/.xlsx file for bulk import and returns
// whatever text the backend answers with.
func (s *contactService) UploadSpreadsheet(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrFileRequired
	}
	if !spreadsheetExts[strings.ToLower(filepath.Ext(file.Filename))] {
		return "", ErrInvalidFileFormat
	}

	var reply string
	err := s.send(ctx, http.MethodPost, "/contacts/upload", apiclient.NewMultipartBody(), file, &reply, "upload contacts")
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (s *contactService) send(ctx context.Context, method, path string, body *apiclient.MultipartBody, file *multipart.FileHeader, out any, op string) error {
	if file != nil {
		if file.Size > s.maxFileSize {
			return fmt.Errorf("%s: %w", op, ErrFileSizeExceeded)
		}
		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("%s: failed to open uploaded file: %w", op, err)
		}
		defer src.Close()
		body.AddFile("file", filepath.Base(file.Filename), src)
	}

	if err := s.api.Do(ctx, method, path, body, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func contactFields(in model.ContactInput) *apiclient.MultipartBody {
	return apiclient.NewMultipartBody().
		AddField("name", in.Name).
		AddField("lastName", in.LastName).
		AddField("middleInitial", in.MiddleInitial).
		AddField("phone", in.Phone).
		AddField("address", in.Address).
		AddField("email", in.Email).
		AddField("court", in.Court).
		AddField("locale", in.Locale).
		AddField("branch", in.Branch)
}
