// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/config"
	"reddit-explorer/internal/engagement"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/logging"
	"reddit-explorer/internal/middleware"
	"reddit-explorer/internal/router"
	"reddit-explorer/internal/validation"
	"reddit-explorer/internal/view"
	"reddit-explorer/pkg/utils"
)

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service explorer.ExplorerService
	Client  client.ContentClient
}

// Initialize loads configuration, configures logging and builds the Reddit
// client. It fails when any required credential is missing.
func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	var httpClient *http.Client
	if len(cfg.ProxyURLs) > 0 {
		httpClient, err = utils.NewProxyHTTPClient(cfg.ProxyURLs, cfg.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create proxy HTTP client: %w", err)
		}
	}

	redditClient, err := client.NewRedditClient(cfg, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	return New(cfg, redditClient)
}

// New assembles the server around an existing content client.
func New(cfg *config.Config, contentClient client.ContentClient) (*App, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	explorerService := explorer.NewExplorerService(contentClient, engagement.NewSelector(nil))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = validation.EchoValidator{}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.PrometheusMetrics())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, explorerService, cfg.RequestTimeout)

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: explorerService,
		Client:  contentClient,
	}, nil
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  a.Config.ReadTimeout,
		WriteTimeout: a.Config.WriteTimeout,
	}

	logging.Info().Str("addr", server.Addr).Msg("starting HTTP server")
	return a.Echo.StartServer(server)
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
