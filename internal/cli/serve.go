package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/sweets/internal/handler"
	"github.com/deppfellow/sweets/internal/repository"
	"github.com/deppfellow/sweets/internal/router"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/deppfellow/sweets/internal/service"
	"github.com/spf13/cobra"
)

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Run the HTTP server until SIGINT or SIGTERM, then drain in-flight requests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	rt, err := loadRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.loggerService.Shutdown()

	srv, err := server.New(rt.cfg, &rt.log, rt.loggerService)
	if err != nil {
		rt.log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			rt.log.Error().Err(err).Msg("server stopped unexpectedly")
		}
		return err
	case <-ctx.Done():
	}

	rt.log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(rt.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		rt.log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	rt.log.Info().Msg("server exited properly")
	return nil
}
