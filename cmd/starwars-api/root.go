package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/starwars-api/internal/config"
	"github.com/deppfellow/starwars-api/internal/database"
	"github.com/deppfellow/starwars-api/internal/logger"
)

// app holds what every command needs, built once in PersistentPreRunE.
type app struct {
	cfg           *config.Config
	logger        zerolog.Logger
	loggerService *logger.LoggerService
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "starwars-api",
		Short:         "Star Wars characters, planets and favorites over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.loggerService != nil {
				a.loggerService.Shutdown()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations and serve the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.migrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert sample users, characters and planets",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.seed(cmd.Context())
			},
		},
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		// No logger yet; fall back to a plain console one.
		l := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
		l.Error().Err(err).Msg("failed to load config")
		return err
	}

	a.cfg = cfg
	a.loggerService = logger.NewLoggerService(cfg.Observability)
	a.logger = logger.NewLoggerWithService(cfg.Observability, a.loggerService)
	return nil
}

func (a *app) connect() (*database.Database, error) {
	db, err := database.New(a.cfg, &a.logger, a.loggerService)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to initialize database")
		return nil, err
	}
	return db, nil
}
