// Package folio is a personal portfolio site engine built with Go, Echo,
// and SQLite. It serves the public marketing pages, a JSON CRUD API for
// every content type (blogs, projects, experiences, stats, the speaking &
// publications aggregate, and contact messages), and an embedded admin
// panel that drives that API.
package folio

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central folio application. It wires together the store,
// cache, authenticators, mailer, and HTTP surface.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache

	mailer         Mailer
	authenticators []Authenticator
	loginLimiter   *IPLimiter
	contactLimiter *IPLimiter
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, routes, and starts
// the server.
func (a *App) Start() error {
	if a.Config.AdminPasswordHash == "" {
		return fmt.Errorf("folio: AdminPasswordHash is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.Cache = NewContentCache(a.Store, a.Config.ContentCacheTTL)

	a.loginLimiter = NewIPLimiter(5, time.Minute)
	a.contactLimiter = NewIPLimiter(3, time.Minute)

	// Cookie session first, bearer token as the API fallback.
	a.authenticators = []Authenticator{sessionAuth{}, tokenAuth{store: a.Store}}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded site assets are served under /public/ and fall through to
	// the user's static dir for everything else (favicons, uploads).
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "web")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/app.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/admin.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	// Public pages
	e.GET("/", a.servePage("index.html"))
	e.GET("/blog/:id/", a.servePage("blog.html"))
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Admin panel
	e.GET("/admin/", a.servePage("admin.html"))

	// Auth
	e.POST("/api/auth/login", a.handleLogin)
	e.POST("/api/auth/logout", a.handleLogout)
	e.GET("/api/auth/me", a.handleMe)

	// Content API. GETs are public; mutations are admin-gated except the
	// contact form submission.
	e.GET("/api/blogs", a.handleBlogList)
	e.POST("/api/blogs", a.handleBlogCreate, a.requireAdmin)
	e.PUT("/api/blogs", a.handleBlogUpdate, a.requireAdmin)
	e.DELETE("/api/blogs", a.handleBlogDelete, a.requireAdmin)

	e.GET("/api/projects", a.handleProjectList)
	e.POST("/api/projects", a.handleProjectCreate, a.requireAdmin)
	e.PUT("/api/projects", a.handleProjectUpdate, a.requireAdmin)
	e.DELETE("/api/projects", a.handleProjectDelete, a.requireAdmin)

	e.GET("/api/experiences", a.handleExperienceList)
	e.POST("/api/experiences", a.handleExperienceCreate, a.requireAdmin)
	e.PUT("/api/experiences", a.handleExperienceUpdate, a.requireAdmin)
	e.DELETE("/api/experiences", a.handleExperienceDelete, a.requireAdmin)

	e.GET("/api/stats", a.handleStatList)
	e.POST("/api/stats", a.handleStatCreate, a.requireAdmin)
	e.PUT("/api/stats", a.handleStatUpdate, a.requireAdmin)
	e.DELETE("/api/stats", a.handleStatDelete, a.requireAdmin)

	e.GET("/api/speaking-publications", a.handleSpeakingPublicationsGet)
	e.POST("/api/speaking-publications", a.handleSpeakingPublicationsReplace, a.requireAdmin)

	e.GET("/api/contact-messages", a.handleContactMessageList, a.requireAdmin)
	e.POST("/api/contact-messages", a.handleContactMessageCreate)
	e.PUT("/api/contact-messages", a.handleContactMessageUpdate, a.requireAdmin)
	e.DELETE("/api/contact-messages", a.handleContactMessageDelete, a.requireAdmin)

	e.GET("/api/images", a.handleImageList, a.requireAdmin)
	e.POST("/api/images", a.handleImageUpload, a.requireAdmin)
	e.DELETE("/api/images", a.handleImageDelete, a.requireAdmin)

	e.GET("/api/activity", a.handleActivityLatest)
	e.POST("/api/activity", a.handleActivityPing)
}

// servePage returns a handler serving one of the embedded HTML pages.
func (a *App) servePage(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := fs.ReadFile(EmbeddedAssets, "web/"+name)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, data)
	}
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
