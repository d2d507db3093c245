package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"projecthub/internal/auth"
	"projecthub/internal/config"
	apphttp "projecthub/internal/http"
	"projecthub/internal/repository/sqlite"
	"projecthub/internal/seed"
	"projecthub/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Fatal(err)
	}
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "projecthub",
		Short:         "User registration and project records behind JWT auth",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configFile, logger)
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file")

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the sample users and projects, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context(), configFile, logger)
			if err != nil {
				return err
			}
			defer app.db.Close()
			return app.seed(cmd.Context())
		},
	})

	return root
}

type application struct {
	cfg      config.Config
	db       *sqlx.DB
	users    service.UserService
	projects service.ProjectService
	logger   *logrus.Logger
}

func setup(ctx context.Context, configFile string, logger *logrus.Logger) (*application, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	encoder, err := auth.NewPasswordEncoder(cfg.Auth.PasswordEncoder)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := projectRepo.Init(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init project repository: %w", err)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.TokenTTL())

	return &application{
		cfg:      cfg,
		db:       db,
		users:    service.NewUserService(userRepo, encoder, tokens),
		projects: service.NewProjectService(projectRepo, userRepo, encoder),
		logger:   logger,
	}, nil
}

func (a *application) seed(ctx context.Context) error {
	res, err := seed.Run(ctx, a.users, a.projects, a.logger)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	a.logger.Infof("seed done: %d users, %d projects created, %d skipped", res.UsersCreated, res.ProjectsCreated, res.Skipped)
	return nil
}

func serve(parent context.Context, configFile string, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := setup(ctx, configFile, logger)
	if err != nil {
		return err
	}
	defer app.db.Close()

	if app.cfg.Seed.Enabled {
		if err := app.seed(ctx); err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	apphttp.NewHandler(app.users, app.projects, logger).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    app.cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", app.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
	return nil
}
