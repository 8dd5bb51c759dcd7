package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts_admin/internal/apiclient"
	"contacts_admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(store *session.Store, calls *int, seenToken *string) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard/contacts", SessionGuard(store), func(c *gin.Context) {
		*calls++
		*seenToken = apiclient.TokenFromContext(c.Request.Context())
		c.String(http.StatusOK, "screen:"+c.Query("page"))
	})
	return r
}

func sealedCookie(t *testing.T, codec *session.Codec, token string) *http.Cookie {
	t.Helper()
	value, err := codec.Seal(token)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: value}
}

func TestSessionGuard_NoCredentialRedirectsOnce(t *testing.T) {
	store := session.NewStore(session.NewCodec("secret"), false)
	calls, seen := 0, ""
	r := guardedRouter(store, &calls, &seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/contacts", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"), "absolute path works from nested routes")
	assert.Len(t, w.Header().Values("Location"), 1)
	assert.Zero(t, calls, "wrapped screen must not render")
	assert.NotContains(t, w.Body.String(), "screen:")
}

func TestSessionGuard_TamperedCredentialRedirects(t *testing.T) {
	store := session.NewStore(session.NewCodec("secret"), false)
	calls, seen := 0, ""
	r := guardedRouter(store, &calls, &seen)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/contacts", nil)
	req.AddCookie(sealedCookie(t, session.NewCodec("other-secret"), "tok"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, calls)
}

func TestSessionGuard_NilStoreIsUnauthenticated(t *testing.T) {
	calls, seen := 0, ""
	r := guardedRouter(nil, &calls, &seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/contacts", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, calls)
}

func TestSessionGuard_CredentialPassesThroughUnchanged(t *testing.T) {
	codec := session.NewCodec("secret")
	store := session.NewStore(codec, false)
	calls, seen := 0, ""
	r := guardedRouter(store, &calls, &seen)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/contacts?page=3", nil)
	req.AddCookie(sealedCookie(t, codec, "backend-token"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "screen:3", w.Body.String(), "query inputs reach the screen unchanged")
	assert.Equal(t, "backend-token", seen)
}

func TestLoadSession_NeverBlocks(t *testing.T) {
	codec := session.NewCodec("secret")
	store := session.NewStore(codec, false)

	r := gin.New()
	r.GET("/", LoadSession(store), func(c *gin.Context) {
		c.String(http.StatusOK, "%t:%s", IsAuthenticated(c), apiclient.TokenFromContext(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false:", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sealedCookie(t, codec, "backend-token"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true:backend-token", w.Body.String())
}
