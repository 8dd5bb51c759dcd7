package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed key the credential is persisted under in the browser.
const CookieName = "authToken"

// Store keeps the session credential in a browser cookie.
type Store struct {
	codec  *Codec
	secure bool
}

func NewStore(codec *Codec, secure bool) *Store {
	return &Store{codec: codec, secure: secure}
}

// Load returns the backend token from the request cookie. A missing or
// tampered cookie reports false.
func (s *Store) Load(r *http.Request) (string, bool) {
	if s == nil || r == nil {
		return "", false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	token, err := s.codec.Open(cookie.Value)
	if err != nil {
		return "", false
	}
	return token, true
}

// Save persists token for the browser behind c.
func (s *Store) Save(c *gin.Context, token string) error {
	value, err := s.codec.Seal(token)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, 0, "/", "", s.secure, true)
	return nil
}

// Clear removes the credential from the browser.
func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}
