// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "reddit-explorer/docs"
	"reddit-explorer/internal/app"
	"reddit-explorer/internal/config"
	"reddit-explorer/internal/logging"
)

// @title Reddit Explorer API
// @version 1.0
// @description Browse Reddit: find subreddits, list trending posts, search posts and pick out high engagement posts.
// @termsOfService http://swagger.io/terms/
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath /

func main() {
	application, err := app.Initialize()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			logging.Fatal().Err(err).Msg("missing Reddit credentials, refusing to start")
		}
		logging.Fatal().Err(err).Msg("failed to initialize application")
	}

	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	logging.Info().
		Str("port", application.Config.ServerPort).
		Msg("server started, swagger documentation available at /swagger/index.html")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server shutdown error")
	}

	logging.Info().Msg("server stopped")
}
