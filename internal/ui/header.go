package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/theme"
)

// QueryHeader describes the query a results table answers
type QueryHeader struct {
	Branch  string
	Repo    string
	Since   *time.Time
	Sources []domain.PullRequestInfo
	User    string
}

// RenderQueryHeader renders the repo, user, branch, since date and source PR counts
func RenderQueryHeader(h QueryHeader) string {
	open := 0
	for _, pr := range h.Sources {
		if pr.IsOpen() {
			open++
		}
	}

	since := "-"
	if h.Since != nil {
		since = h.Since.Format(time.DateOnly)
	}

	lines := []string{
		headerLine("Repo", h.Repo),
		headerLine("User", h.User),
		headerLine("Branch", h.Branch),
		headerLine("Since", since),
		fmt.Sprintf("%s %d PRs (%s, %s)",
			theme.LabelStyle.Bold(true).Render("Found:"),
			len(h.Sources),
			theme.OpenStyle.Render(fmt.Sprintf("%d open", open)),
			theme.PickedStyle.Render(fmt.Sprintf("%d merged", len(h.Sources)-open)),
		),
	}
	return strings.Join(lines, "\n")
}

func headerLine(label, value string) string {
	return theme.LabelStyle.Bold(true).Render(label+":") + " " + theme.ValueStyle.Render(value)
}
