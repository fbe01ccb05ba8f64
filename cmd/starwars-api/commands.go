package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/starwars-api/internal/database"
	"github.com/deppfellow/starwars-api/internal/handler"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/router"
	"github.com/deppfellow/starwars-api/internal/seed"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
)

// ShutdownTimeout bounds how long in-flight requests may take to drain.
const ShutdownTimeout = 30 * time.Second

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(a.cfg, &a.logger, a.loggerService)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	if err := database.Migrate(ctx, &a.logger, a.cfg, srv.DB); err != nil {
		_ = srv.DB.Close()
		a.logger.Error().Err(err).Msg("failed to migrate database")
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		_ = srv.DB.Close()
		a.logger.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)
	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error().Err(err).Msg("server stopped unexpectedly")
		}
		_ = srv.DB.Close()
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	a.logger.Info().Msg("server exited properly")
	return nil
}

func (a *app) migrate(ctx context.Context) error {
	db, err := a.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, &a.logger, a.cfg, db); err != nil {
		a.logger.Error().Err(err).Msg("failed to migrate database")
		return err
	}
	return nil
}

func (a *app) seed(ctx context.Context) error {
	db, err := a.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, &a.logger, a.cfg, db); err != nil {
		a.logger.Error().Err(err).Msg("failed to migrate database")
		return err
	}

	result, err := seed.Run(ctx, db.DB, &a.logger)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to seed database")
		return err
	}

	fmt.Printf("inserted %d users, %d personajes, %d planetas\n", result.Users, result.Personajes, result.Planetas)
	return nil
}
