package handler

import (
	"net/http"

	"contacts_admin/internal/form"
	"contacts_admin/internal/middleware"
	"contacts_admin/internal/service"
	"contacts_admin/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgLoginRequired     = "Please fill in both fields."
	msgLoginFailed       = "Invalid email or password."
	msgLoginSessionError = "Could not start your session. Please try again."
)

// AuthHandler handles the login screen and logout.
type AuthHandler struct {
	service service.AuthService
	store   *session.Store
	log     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, store *session.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, store: store, log: log}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := h.store.Load(c.Request); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	renderLogin(c, http.StatusOK, form.LoginForm{}, nil, "")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req form.LoginForm
	fieldErrs, err := form.Bind(c, &req)
	if err != nil || len(fieldErrs) > 0 {
		renderLogin(c, http.StatusBadRequest, req, fieldErrs, msgLoginRequired)
		return
	}

	token, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		renderLogin(c, http.StatusUnauthorized, req, nil, msgLoginFailed)
		return
	}

	if err := h.store.Save(c, token); err != nil {
		h.log.Error("Error saving session", zap.Error(err))
		renderLogin(c, http.StatusInternalServerError, req, nil, msgLoginSessionError)
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func renderLogin(c *gin.Context, status int, f form.LoginForm, errs form.FieldErrors, msg string) {
	// The password is never echoed back.
	f.Password = ""
	render(c, status, "login.html", gin.H{
		"title":  "Login",
		"form":   f,
		"errors": errs,
		"error":  msg,
	})
}

// RegisterAuthRoutes registers auth routes. The login screen lives at
// middleware.LoginPath so the session guard's redirect lands on it.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.GET(middleware.LoginPath, h.ShowLogin)
	rg.POST(middleware.LoginPath, h.Login)
	rg.POST("/auth/logout", h.Logout)
}
