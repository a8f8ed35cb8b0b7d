package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"ledger/internal/csvstore"
	"ledger/internal/report"
	"ledger/internal/sqlite"
)

const (
	StoreDriverCSV    = "csv"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	LogLevel    int    `envconfig:"LOG_LEVEL" default:"0"`
	StoreDriver string `envconfig:"STORE_DRIVER" default:"csv" validate:"oneof=csv sqlite"`
	Store       csvstore.Config
	Database    sqlite.Config
	Export      report.Config
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
