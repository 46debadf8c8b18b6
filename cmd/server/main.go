package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"valorant-analytics/internal/config"
	"valorant-analytics/internal/constants"
	fxmodules "valorant-analytics/internal/fx"
	"valorant-analytics/internal/server"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(serveAPI),
	).Run()
}

// serveAPI binds the listener during start so a taken port fails the app
// instead of a background goroutine.
func serveAPI(lc fx.Lifecycle, api *server.Server, cfg *config.Config, sqlDB *sql.DB, logger zerolog.Logger) {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           api.Handler(),
		ReadHeaderTimeout: constants.RequestTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", httpServer.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", httpServer.Addr, err)
			}

			logger.Info().Str("addr", ln.Addr().String()).Msg("api listening")
			go func() {
				if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("api server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.ShutdownTimeout)
			defer cancel()

			logger.Info().Msg("draining api requests")
			err := httpServer.Shutdown(shutdownCtx)
			if err != nil {
				logger.Error().Err(err).Msg("api shutdown incomplete")
			}

			if closeErr := sqlDB.Close(); closeErr != nil {
				logger.Warn().Err(closeErr).Msg("failed to close match store")
			}
			return err
		},
	})
}
