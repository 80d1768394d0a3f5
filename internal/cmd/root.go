package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/pickcheck/internal/config"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/ports"
	"github.com/renato0307/pickcheck/internal/version"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Check    CheckCmd    `cmd:"check" help:"Check whether a user's PRs were cherry-picked to release branches (default)" default:"withargs"`
	Branches BranchesCmd `cmd:"branches" help:"List the release branches a check would target"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	settings *config.Settings    `kong:"-"`
	tokens   ports.TokenProvider `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetTokenProvider overrides how the GitHub token is obtained
func (c *CLI) SetTokenProvider(tokens ports.TokenProvider) {
	c.tokens = tokens
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("PICKCHECK_MAX_LOG_FILES") {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug && !hasEnv("PICKCHECK_DEBUG") {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Logger.Info("pickcheck starting",
		"version", version.Version,
		"commit", version.Commit,
		"log_file", logFilePath)

	return nil
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
