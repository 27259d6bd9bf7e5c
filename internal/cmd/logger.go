package cmd

import (
	"github.com/solohq/soloist/internal/config"
	"github.com/solohq/soloist/internal/logging"
)

// newLogger builds the process logger from the logging config.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level))
}
