package main

import (
	"errors"
	"fmt"
	"github.com/ardanlabs/conf/v3"
	"time"
)

const (
	sourceStatic   = "static"
	sourcePostgres = "postgres"
)

type Config struct {
	Port            int           `conf:"default:8080"`
	ShutdownTimeout time.Duration `conf:"default:5s"`
	LogLevel        string        `conf:"default:info"`
	LogJSON         bool          `conf:"default:false"`

	CatalogSource string `conf:"default:static,help:static or postgres"`
	DBConn        string `conf:"default:user=ps_user password=ps_password dbname=clasi sslmode=disable host=localhost,mask"`

	FilterMode    string `conf:"default:narrow,help:narrow or cosmetic"`
	FiltersFile   string `conf:"help:YAML file overriding the filter categories"`
	StrictCourses bool   `conf:"default:false,help:answer 404 for course ids missing from the catalog"`
	StrictReviews bool   `conf:"default:false,help:reject reviews without a 1-5 rating or text"`

	SendGridKey string `conf:"mask"`
	ReviewFrom  string `conf:"default:no-reply@clasi.app"`
	ReviewTo    string `conf:"default:reviews@clasi.app"`

	NewRelicLicense string `conf:"mask"`
	NewRelicAppName string `conf:"default:clasi"`
}

func ReadConfig() (*Config, error) {
	var cfg Config
	help, err := conf.Parse("APP", &cfg)

	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.CatalogSource != sourceStatic && cfg.CatalogSource != sourcePostgres {
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	return &cfg, nil
}
