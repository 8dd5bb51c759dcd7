// Package server assembles the panel's gin engine from its handlers.
package server

import (
	"contacts_admin/internal/handler"
	"contacts_admin/internal/middleware"
	"contacts_admin/internal/service"
	"contacts_admin/internal/session"
	"contacts_admin/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Auth           service.AuthService
	Contacts       service.ContactService
	Store          *session.Store
	Log            *zap.Logger
	PageSize       int
	MaxUploadBytes int64
}

// NewRouter builds the engine with every panel route registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(d.Log))
	router.SetHTMLTemplate(tmpl)
	if d.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = d.MaxUploadBytes
	}

	guard := middleware.SessionGuard(d.Store)

	authHandler := handler.NewAuthHandler(d.Auth, d.Store, d.Log)
	contactHandler := handler.NewContactHandler(d.Contacts, d.PageSize, d.Log)
	uploadHandler := handler.NewUploadHandler(d.Contacts, d.Log)

	root := router.Group("/")
	root.Use(middleware.LoadSession(d.Store))
	root.GET("/", handler.Home)
	root.GET("/health", handler.Health)
	authHandler.RegisterAuthRoutes(root)
	contactHandler.RegisterContactRoutes(root, guard)
	uploadHandler.RegisterUploadRoutes(root, guard)

	return router, nil
}
