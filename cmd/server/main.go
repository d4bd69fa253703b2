package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/config"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/handlers"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

func main() {
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB and pull the collections into memory
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(cfg.MigrationsDir); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := db.Load(); err != nil {
		slog.Error("Failed to load collections", "error", err)
		os.Exit(1)
	}

	// 3. Session Setup (carries the cart and flash messages)
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load(cfg.TemplatesDir); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	homeHandler := &handlers.HomeHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	contactHandler := &handlers.ContactHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	ratingHandler := &handlers.RatingHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	adminHandler := &handlers.AdminHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	prefsHandler := &handlers.PrefsHandler{}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate limiter for the submission endpoints
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("POST /order/quantity", orderHandler.SetQuantity)
	mux.HandleFunc("POST /order/items", orderHandler.AddItem)
	mux.HandleFunc("POST /order/items/remove", orderHandler.RemoveItem)
	mux.HandleFunc("POST /order/submit", rateLimiter.Middleware(orderHandler.SubmitOrder))
	mux.HandleFunc("POST /contact", rateLimiter.Middleware(contactHandler.SubmitMessage))
	mux.HandleFunc("/rate", ratingHandler.RateForm)
	mux.HandleFunc("POST /rate/submit", rateLimiter.Middleware(ratingHandler.SubmitRating))

	// Display preferences
	mux.HandleFunc("POST /prefs/lang", prefsHandler.SwitchLanguage)
	mux.HandleFunc("POST /prefs/theme", prefsHandler.ToggleTheme)

	// Admin panel (unauthenticated, simply unlinked from the public pages)
	mux.HandleFunc("/admin", adminHandler.Panel)
	mux.HandleFunc("POST /admin/orders/status", adminHandler.ToggleOrderStatus)
	mux.HandleFunc("POST /admin/orders/delete", adminHandler.DeleteOrder)
	mux.HandleFunc("POST /admin/messages/read", adminHandler.ToggleMessageRead)
	mux.HandleFunc("POST /admin/ratings/delete", adminHandler.DeleteRating)

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
