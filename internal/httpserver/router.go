package httpserver

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"customer-lookup/internal/lookup"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "lookup_session"

// LookupDeps wires the lookup UI.
type LookupDeps struct {
	Searcher      *lookup.Searcher
	Sessions      *lookup.Store
	Directory     Pinger
	SessionSecret string
	SessionTTL    time.Duration
}

// DirectoryDeps wires the reference directory API.
type DirectoryDeps struct {
	CustomerSvc  DirectoryService
	AllowOrigins []string
}

func newEngine(logger *log.Logger) *gin.Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	return router
}

// buildLookupRouter wires the browser UI, its JSON API and health routes.
func buildLookupRouter(logger *log.Logger, deps LookupDeps) (*gin.Engine, error) {
	if deps.Searcher == nil || deps.Sessions == nil {
		return nil, errors.New("lookup router: searcher and session store are required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	router := newEngine(logger)
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Directory, "directory"))

	api := router.Group("/api")
	api.GET("/fields", fieldsHandler(deps.Searcher.Registry()))
	api.POST("/search", apiSearchHandler(deps.Searcher))

	store := cookie.NewStore([]byte(deps.SessionSecret))
	ttl := deps.SessionTTL
	if ttl <= 0 {
		ttl = lookup.DefaultSessionTTL
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ui := newLookupUI(deps.Searcher.Registry(), logger)
	pages := router.Group("/")
	pages.Use(sessions.Sessions(sessionCookieName, store), sessionMiddleware(deps.Sessions))
	pages.GET("/", ui.index)
	pages.POST("/search", ui.search)
	pages.POST("/reset", ui.reset)
	pages.POST("/customers/:id/select", ui.selectCustomer)
	pages.POST("/detail/close", ui.closeDetail)

	return router, nil
}

// buildDirectoryRouter wires GET /customers for browser and server clients.
func buildDirectoryRouter(logger *log.Logger, db Pinger, deps DirectoryDeps) (*gin.Engine, error) {
	if deps.CustomerSvc == nil {
		return nil, errors.New("directory router: customer service is required")
	}
	router := newEngine(logger)
	router.Use(cors.New(corsConfig(deps.AllowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, "db"))

	h := directoryHandlers{svc: deps.CustomerSvc}
	router.GET("/customers", h.list)
	router.GET("/customers/:id", h.get)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Accept", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
