package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/renato0307/pickcheck/internal/adapters/auth"
	"github.com/renato0307/pickcheck/internal/adapters/github"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/services"
	"github.com/renato0307/pickcheck/internal/theme"
)

// ClientConfig holds the GitHub client settings chosen on the command line
type ClientConfig struct {
	APIURL   string
	AutoWait bool
	MaxWait  time.Duration
	Notices  io.Writer // Rate limit waits are announced here
}

// Container holds all dependencies for one command run
type Container struct {
	BranchService    *services.BranchService
	DetectionService *services.DetectionService
}

// NewContainer resolves a token and wires the GitHub client into the services.
// Authentication is checked before any API call.
func (c *CLI) NewContainer(ctx context.Context, cfg ClientConfig) (*Container, error) {
	tokens := c.tokens
	if tokens == nil {
		tokens = auth.NewTokenProvider()
	}

	token, err := tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Authenticated with GitHub")

	opts := []github.Option{
		github.WithAutoWait(cfg.AutoWait),
		github.WithMaxWait(cfg.MaxWait),
	}
	if cfg.APIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.APIURL))
	}
	if cfg.Notices != nil {
		opts = append(opts, github.WithWaitNotifier(func(wait time.Duration, resetAt time.Time) {
			fmt.Fprintln(cfg.Notices, theme.WarnStyle.Render(fmt.Sprintf(
				"Rate limit reached. Waiting %d seconds (resets at %s)...",
				int(wait.Seconds()), resetAt.Format(time.TimeOnly))))
		}))
	}

	client := github.NewClient(token, opts...)

	return &Container{
		BranchService:    services.NewBranchService(client),
		DetectionService: services.NewDetectionService(client),
	}, nil
}
