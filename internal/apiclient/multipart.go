package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// MultipartBody is a request body sent as multipart/form-data instead of JSON.
// Parts are written in the order they were added.
type MultipartBody struct {
	parts []part
}

type part struct {
	name     string
	value    string
	fileName string
	content  io.Reader
}

func NewMultipartBody() *MultipartBody {
	return &MultipartBody{}
}

// AddField appends a plain form field.
func (b *MultipartBody) AddField(name, value string) *MultipartBody {
	b.parts = append(b.parts, part{name: name, value: value})
	return b
}

// AddFile appends a file part. The reader is consumed when the request is sent.
func (b *MultipartBody) AddFile(name, fileName string, content io.Reader) *MultipartBody {
	b.parts = append(b.parts, part{name: name, fileName: fileName, content: content})
	return b
}

// encode renders the body and returns it with its Content-Type (boundary included).
func (b *MultipartBody) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, p := range b.parts {
		if p.content == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", p.name, err)
			}
			continue
		}
		fw, err := w.CreateFormFile(p.name, p.fileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", p.name, err)
		}
		if _, err := io.Copy(fw, p.content); err != nil {
			return nil, "", fmt.Errorf("failed to copy file part %s: %w", p.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
