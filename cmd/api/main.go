package main

import (
	"clasi/internal/catalog"
	"clasi/internal/database"
	"clasi/internal/notifications"
	"clasi/internal/review"
	"context"
	"errors"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.Println("starting clasi catalog server")

	cfg, err := ReadConfig()
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	if err := configureLogging(cfg); err != nil {
		log.Fatalf("configuring logging: %v", err)
	}

	categories, err := catalog.LoadCategories(cfg.FiltersFile)
	if err != nil {
		log.Fatalf("loading filter categories: %v", err)
	}

	mode, ok := catalog.ParseMode(cfg.FilterMode)
	if !ok {
		log.Fatalf("unknown filter mode %q", cfg.FilterMode)
	}

	var (
		courses catalog.Catalog
		lister  review.Lister
	)
	switch cfg.CatalogSource {
	case sourcePostgres:
		db, err := database.NewClient(cfg.DBConn)
		if err != nil {
			log.Fatalf("creating database client: %v", err)
		}
		defer db.Close()

		if err := db.Ping(context.Background()); err != nil {
			log.Fatalf("reaching database: %v", err)
		}
		courses, lister = db, db
	default:
		courses = catalog.NewStatic(catalog.SeedCourses())
		lister = review.NewStatic(review.SeedReviews())
	}

	reviewOpts := []review.Option{review.WithStrictValidation(cfg.StrictReviews)}
	if cfg.SendGridKey != "" {
		reviewOpts = append(reviewOpts, review.WithNotifier(notifications.NewSendGridSender(cfg.SendGridKey, cfg.ReviewFrom, cfg.ReviewTo)))
	} else {
		log.Info("no sendgrid key configured, review submissions are only logged")
	}

	nr, err := newRelicApp(cfg)
	if err != nil {
		log.Fatalf("starting new relic: %v", err)
	}

	server := NewServer(
		cfg.Port,
		courses,
		review.NewService(lister, reviewOpts...),
		catalog.Selector{Categories: categories, Mode: mode},
		WithNewRelic(nr),
		WithStrictCourses(cfg.StrictCourses),
	)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	case sig := <-stop:
		log.Printf("received %v, shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("shutting down: %v", err)
		}
	}

	if nr != nil {
		nr.Shutdown(cfg.ShutdownTimeout)
	}
}

func configureLogging(cfg *Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}

// newRelicApp returns nil when no licence is configured; every wrapped
// route then runs uninstrumented.
func newRelicApp(cfg *Config) (*newrelic.Application, error) {
	if cfg.NewRelicLicense == "" {
		return nil, nil
	}

	return newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelicAppName),
		newrelic.ConfigLicense(cfg.NewRelicLicense),
	)
}
