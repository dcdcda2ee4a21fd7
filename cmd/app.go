// Package cmd implements the CLI application to manage a bullboard ledger.
package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/bullboard"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "store")

	c.Register(&addCmd{}, "events")

	c.Register(&dashboardCmd{}, "views")
	c.Register(&journalCmd{}, "views")
	c.Register(&demoCmd{}, "views")
}

// defaultLedgerID names the single ledger the CLI works on. Multi-ledger
// support would surface this as a flag.
const defaultLedgerID = "default"

// config holds the process environment configuration.
type config struct {
	DBPath string `env:"BULLBOARD_DB_PATH" envDefault:"bullboard.db"`
}

// loadConfig reads configuration from environment variables.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// openStore opens the durable event store at the configured path.
// The caller owns the returned store and must Close it.
func openStore() (*bullboard.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return bullboard.Open(cfg.DBPath)
}
