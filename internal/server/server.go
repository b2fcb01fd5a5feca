package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/drivncook/backoffice/internal/api"
	"github.com/drivncook/backoffice/internal/config"
	"github.com/drivncook/backoffice/internal/hub"
	"github.com/drivncook/backoffice/internal/logging"
	appmw "github.com/drivncook/backoffice/internal/middleware"
	"github.com/drivncook/backoffice/internal/prefstore"
	"github.com/drivncook/backoffice/internal/profile"
	"github.com/drivncook/backoffice/internal/pubsub"
	"github.com/drivncook/backoffice/internal/registry"
	"github.com/drivncook/backoffice/internal/rendering"
	appsession "github.com/drivncook/backoffice/internal/session"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	bridge   *pubsub.WatermillBridge
	store    *prefstore.Store
	session  *appsession.Session
	renderer rendering.Renderer
	htmlHub  *hub.Hub
}

// New creates a new Server instance and wires the core services: config,
// logging, the durable preference store, the auth session, the upstream API
// client, the profile manager and the fragment hub.
func New() *Server {
	cfg := config.New()
	logging.New(cfg.GetLogFormat())

	bridge := pubsub.NewWatermillBridge()
	store := prefstore.New(afero.NewOsFs(), cfg.GetStateDir())
	sess := appsession.New(store, bridge)
	client := api.NewClient(cfg.GetAPIBaseURL(), sess)
	profiles := profile.NewManager(client.Franchisees, store, api.ProfilePreferences{})
	renderer := rendering.NewGomponentsRenderer()
	htmlHub := hub.NewHub()

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Renderer = renderer

	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(appmw.Logger)

	cookieStore := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookieStore))

	e.Static("/static", "web/static")

	reg := registry.New(cfg)
	registry.Set(reg, registry.APIClientKey, client)
	registry.Set(reg, registry.SessionKey, sess)
	registry.Set(reg, registry.PrefStoreKey, store)
	registry.Set(reg, registry.ProfileManagerKey, profiles)
	registry.Set(reg, registry.RendererKey, rendering.Renderer(renderer))
	registry.Set(reg, registry.PublisherKey, pubsub.Publisher(bridge))
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bridge))
	registry.Set(reg, registry.HubKey, htmlHub)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		bridge:   bridge,
		store:    store,
		session:  sess,
		renderer: renderer,
		htmlHub:  htmlHub,
	}
}

// Session is a getter for the server's auth session, useful for testing.
func (s *Server) Session() *appsession.Session {
	return s.session
}

// PrefStore is a getter for the server's preference store, useful for testing.
func (s *Server) PrefStore() *prefstore.Store {
	return s.store
}
