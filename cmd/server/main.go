package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contacts_admin/internal/apiclient"
	"contacts_admin/internal/config"
	"contacts_admin/internal/logger"
	"contacts_admin/internal/server"
	"contacts_admin/internal/service"
	"contacts_admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var (
	configPath string
	port       string
	backendURL string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "contacts-admin",
	Short: "Admin panel for the contacts directory",
	Long: `Serves the contacts admin panel. Administrators sign in against the
contacts backend and manage its records from the browser.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides SERVER_PORT)")
	rootCmd.Flags().StringVar(&backendURL, "backend-url", "", "base URL of the contacts backend (overrides BACKEND_BASE_URL)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// --- Configuration ---
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("backend-url") {
		cfg.BackendBaseURL = backendURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	zlog, err := logger.New(cfg.LogLevel, gin.Mode() == gin.DebugMode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	// --- Initialize Backend Client ---
	api := apiclient.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	// --- Initialize Services ---
	authService := service.NewAuthService(api)
	contactService := service.NewContactService(api, cfg.MaxUploadBytes)

	// --- Initialize Session ---
	store := session.NewStore(session.NewCodec(cfg.SessionSecret), cfg.CookieSecure)

	// --- Setup Gin Router ---
	router, err := server.NewRouter(server.Deps{
		Auth:           authService,
		Contacts:       contactService,
		Store:          store,
		Log:            zlog,
		PageSize:       cfg.PageSize,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return err
	}

	var h http.Handler = router
	if cfg.CSRFKey != "" {
		h = protect(router, cfg)
	} else {
		zlog.Warn("CSRF_KEY not set, form submissions are not CSRF protected")
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("Server starting",
			zap.String("addr", srv.Addr),
			zap.String("backend", cfg.BackendBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	// --- Graceful Shutdown ---
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		zlog.Error("Server stopped with error", zap.Error(err))
		return err
	}
	zlog.Info("Server exiting")
	return nil
}

// protect wraps next with CSRF checks. Without secure cookies the panel is
// served over plain HTTP, which the Origin/Referer checks must be told about.
func protect(next http.Handler, cfg *config.Config) http.Handler {
	checked := csrf.Protect([]byte(cfg.CSRFKey), csrf.Secure(cfg.CookieSecure), csrf.Path("/"))(next)
	if cfg.CookieSecure {
		return checked
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checked.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
