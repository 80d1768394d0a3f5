package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/services"
	"github.com/renato0307/pickcheck/internal/theme"
)

// BranchesCmd lists the release branches that would be checked
type BranchesCmd struct {
	APIFlags    `embed:""`
	TargetFlags `embed:""`

	stdout io.Writer `kong:"-"`
}

// Run executes the branches command
func (b *BranchesCmd) Run(ctx context.Context, cli *CLI) error {
	out := b.stdout
	if out == nil {
		out = os.Stdout
	}

	b.APIFlags.applySettings(cli.settings)
	if err := b.TargetFlags.applySettings(cli.settings); err != nil {
		return err
	}

	logging.WithRun(b.Repo, "", b.Branch).Info("Listing release branches", "all", b.AllBranches, "limit", b.Limit)

	container, err := cli.NewContainer(ctx, b.clientConfig(os.Stderr))
	if err != nil {
		return err
	}

	branches, err := container.BranchService.ResolveTargets(ctx, services.TargetRequest{
		AllRelease:   b.AllBranches,
		Limit:        b.Limit,
		Repo:         b.Repo,
		SourceBranch: b.Branch,
	})
	if err != nil {
		return err
	}

	if len(branches) == 0 {
		fmt.Fprintln(out, theme.WarnStyle.Render("No release branches detected."))
		return nil
	}
	for _, branch := range branches {
		fmt.Fprintln(out, branch)
	}
	return nil
}
