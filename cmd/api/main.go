package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-booking/internal/adapters/notify"
	pg "pet-care-booking/internal/adapters/storage/postgres"
	"pet-care-booking/internal/domain/orders"
	"pet-care-booking/internal/platform/config"
	"pet-care-booking/internal/platform/logger"
	"pet-care-booking/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	app := &cli.App{
		Name:   "api",
		Usage:  "pet care booking API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.New(logger.Options{}).Error("api exited", map[string]any{"error": err})
		os.Exit(1)
	}
}

func setup() (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}

func migrate(c *cli.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required to migrate")
	}

	version, err := pg.Migrate(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	log.Info("migrations applied", map[string]any{"version": version})
	return nil
}

func serve(c *cli.Context) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	db, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	notifier, err := newNotifier(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:        log,
			DB:            db,
			Notifier:      notifier,
			NotifyTimeout: cfg.NotifyTimeout,
			StaticDir:     cfg.StaticDir,
			CORSOrigins:   cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// cubre el guardado más el envío del email
		WriteTimeout: 10*time.Second + cfg.NotifyTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openDB devuelve nil sin DATABASE_URL: el router usa el repo en memoria.
func openDB(cfg config.Config, log logger.Logger) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, orders are kept in memory", nil)
		return nil, nil
	}

	if cfg.AutoMigrate {
		version, err := pg.Migrate(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("schema ready", map[string]any{"version": version})
	}

	return pg.Open(cfg.DatabaseURL)
}

func newNotifier(cfg config.Config, log logger.Logger) (orders.Notifier, error) {
	if !cfg.Email.Enabled() {
		log.Warn("EMAIL_HOST not set, order emails are only logged", nil)
		return notify.NewLogNotifier(log), nil
	}

	mailer, err := notify.NewMailer(notify.SMTPConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.User,
		Password: cfg.Email.Password,
		From:     cfg.Email.Sender(),
		To:       cfg.Email.To,
		Timeout:  cfg.NotifyTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "email config")
	}
	log.Info("smtp notifier enabled", map[string]any{"host": cfg.Email.Host, "to": cfg.Email.To})
	return mailer, nil
}
