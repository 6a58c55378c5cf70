package web

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/typeset/cmd/web/auth"
	"thirdcoast.systems/typeset/cmd/web/ctxkeys"
	"thirdcoast.systems/typeset/cmd/web/handlers/reader"
	staticpkg "thirdcoast.systems/typeset/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/typeset/cmd/web/templates"
	"thirdcoast.systems/typeset/internal/article"
	"thirdcoast.systems/typeset/internal/viewstore"
	"thirdcoast.systems/typeset/pkg/utils/language"
	"thirdcoast.systems/typeset/static"
)

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	store          *viewstore.Store
	article        *article.Article
	languages      *language.Matcher
	staticCache    *staticpkg.StaticCache
}

func NewWebserver(ctx context.Context, store *viewstore.Store, art *article.Article, sessionManager *auth.SessionManager) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache(static.FS)
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: sessionManager,
		store:          store,
		article:        art,
		languages:      language.NewMatcher(templates.SupportedLanguages...),
		staticCache:    staticCache,
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "webserver configured", "routes", len(e.Routes()))
	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// SSE responses must flush per event.
			return c.Request().Header.Get("Datastar-Request") == "true"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Negotiate the UI language once per request for templates
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tag := s.languages.Match(c.Request().Header.Get("Accept-Language"))
			ctx := context.WithValue(c.Request().Context(), ctxkeys.Language, tag)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	return nil
}

func (s *Webserver) registerRoutes() error {
	viewGroup := s.Group("/views/:id")
	viewGroup.POST("/toggle", reader.HandleToggle(s.sessionManager, s.store, s.article))
	viewGroup.POST("/fields/:field", reader.HandleFieldChange(s.sessionManager, s.store, s.article))
	viewGroup.POST("/apply", reader.HandleApply(s.sessionManager, s.store, s.article))
	viewGroup.POST("/reset", reader.HandleReset(s.sessionManager, s.store, s.article))
	viewGroup.POST("/events/pointerdown", reader.HandlePointerDown(s.sessionManager, s.store, s.article))
	viewGroup.POST("/events/keydown", reader.HandleKeyDown(s.sessionManager, s.store, s.article))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	s.GET("/", reader.HandlePage(s.sessionManager, s.store, s.article))

	return nil
}
