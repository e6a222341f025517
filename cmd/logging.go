package cmd

import (
	"github.com/urfave/cli"

	"github.com/blox3d/luxtrace/internal/config"
	"github.com/blox3d/luxtrace/internal/logger"
)

// setupLogging initializes the global logger from config and CLI flags.
// The -v flag forces debug level regardless of configuration.
func setupLogging(c *cli.Context, cfg *config.Config) error {
	level := cfg.Logging.Level
	if c.GlobalBool("verbose") {
		level = "debug"
	}
	return logger.Init(level, cfg.Logging.File)
}
