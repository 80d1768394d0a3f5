package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/renato0307/pickcheck/internal/config"
	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/logging"
	"github.com/renato0307/pickcheck/internal/services"
	"github.com/renato0307/pickcheck/internal/theme"
	"github.com/renato0307/pickcheck/internal/ui"
)

// CheckCmd reports which release branches received a backport of each of a user's PRs
type CheckCmd struct {
	APIFlags    `embed:""`
	TargetFlags `embed:""`

	ExcludeOpen bool     `help:"Only check merged PRs"`
	Since       string   `help:"Only check PRs merged after this date (YYYY-MM-DD). Default: 30 days ago" placeholder:"YYYY-MM-DD"`
	Target      []string `help:"Target branch to check (repeatable). If not specified, auto-detects release branches" short:"t" env:"PICKCHECK_TARGETS"`
	Username    string   `arg:"" help:"GitHub username to check PRs for"`
	Verbose     bool     `help:"Show verbose output" short:"v"`

	now    func() time.Time `kong:"-"`
	stderr io.Writer        `kong:"-"`
	stdout io.Writer        `kong:"-"`
}

// Run executes the check
func (c *CheckCmd) Run(ctx context.Context, cli *CLI) error {
	stdout, stderr := c.writers()

	if err := c.applySettings(cli.settings); err != nil {
		return err
	}
	since, err := c.sinceDate(cli.settings)
	if err != nil {
		return err
	}
	sinceStr := since.Format(time.DateOnly)
	logging.WithRun(c.Repo, c.Username, c.Branch).Info("Checking backports", "since", sinceStr, "targets", c.Target)

	container, err := cli.NewContainer(ctx, c.clientConfig(stderr))
	if err != nil {
		return err
	}
	c.note(stderr, "Authenticated with GitHub")

	c.note(stderr, "Fetching PRs by %s on %s:%s since %s...", c.Username, c.Repo, c.Branch, sinceStr)
	sources, err := container.DetectionService.SourcePullRequests(ctx, domain.SourceQuery{
		Author:      c.Username,
		BaseBranch:  c.Branch,
		IncludeOpen: !c.ExcludeOpen,
		Repo:        c.Repo,
		Since:       &since,
	})
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintln(stdout, theme.WarnStyle.Render(fmt.Sprintf(
			"No PRs found for %s on %s:%s since %s", c.Username, c.Repo, c.Branch, sinceStr)))
		return nil
	}

	fmt.Fprintln(stdout, ui.RenderQueryHeader(ui.QueryHeader{
		Branch:  c.Branch,
		Repo:    c.Repo,
		Since:   &since,
		Sources: sources,
		User:    c.Username,
	}))

	if len(c.Target) == 0 {
		c.note(stderr, "Auto-detecting release branches...")
	}
	targets, err := container.BranchService.ResolveTargets(ctx, services.TargetRequest{
		AllRelease:   c.AllBranches,
		Explicit:     c.Target,
		Limit:        c.Limit,
		Repo:         c.Repo,
		SourceBranch: c.Branch,
	})
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(stdout, theme.WarnStyle.Render("No release branches detected. Use -t to specify target branches."))
		return nil
	}
	c.note(stderr, "Target branches: %s", strings.Join(targets, ", "))

	if c.Verbose {
		container.DetectionService.OnProgress(func(done, total int, pr domain.PullRequestInfo) {
			fmt.Fprintln(stderr, theme.MutedStyle.Render(fmt.Sprintf("Checked #%d (%d/%d)", pr.Number, done, total)))
		})
	}

	results, err := container.DetectionService.Detect(ctx, c.Repo, sources, targets)
	if err != nil {
		return err
	}
	logging.Logger.Info("Detection finished", "results", len(results))

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, ui.RenderResults(results))
	return nil
}

func (c *CheckCmd) applySettings(s *config.Settings) error {
	c.APIFlags.applySettings(s)
	if err := c.TargetFlags.applySettings(s); err != nil {
		return err
	}

	if s != nil {
		if len(c.Target) == 0 && !hasEnv("PICKCHECK_TARGETS") && len(s.Targets) > 0 {
			c.Target = s.Targets
		}
		if !c.ExcludeOpen && s.ExcludeOpen != nil && *s.ExcludeOpen {
			c.ExcludeOpen = true
		}
	}
	return nil
}

// sinceDate parses --since, or goes back since_days (default 30) from today
func (c *CheckCmd) sinceDate(s *config.Settings) (time.Time, error) {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	today := now()

	if c.Since != "" {
		since, err := time.ParseInLocation(time.DateOnly, c.Since, today.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --since date %q: expected YYYY-MM-DD", c.Since)
		}
		return since, nil
	}

	days := config.DefaultSinceDays
	if s != nil && s.SinceDays != nil {
		days = *s.SinceDays
	}
	y, m, d := today.AddDate(0, 0, -days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, today.Location()), nil
}

func (c *CheckCmd) note(w io.Writer, format string, args ...any) {
	if !c.Verbose {
		return
	}
	fmt.Fprintln(w, theme.MutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *CheckCmd) writers() (io.Writer, io.Writer) {
	stdout, stderr := c.stdout, c.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}
