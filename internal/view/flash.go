package view

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}

func (f Flash) IsError() bool { return f.Kind == FlashError }

// SetFlash stores a message for the next page the browser loads.
func SetFlash(c *gin.Context, kind, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, kind+":"+url.QueryEscape(message), 60, "/", "", false, true)
}

// PopFlash returns the pending message, if any, and clears it.
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, escaped, ok := strings.Cut(raw, ":")
	if !ok || (kind != FlashSuccess && kind != FlashError) {
		return nil
	}
	msg, err := url.QueryUnescape(escaped)
	if err != nil {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}
