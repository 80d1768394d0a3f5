package ui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/pickcheck/internal/domain"
	"github.com/renato0307/pickcheck/internal/theme"
)

const (
	dateLayout     = "01-02"
	noDate         = "-"
	titleMaxLength = 35
)

// sourceRow collects every result of one source PR
type sourceRow struct {
	pr       domain.PullRequestInfo
	branches map[string]domain.DetectionResult
}

// Summary holds the counts printed under the results table
type Summary struct {
	Branches     int
	MergedPRs    int
	NotPicked    int
	OpenPRs      int
	PickedMerged int
	PickedOpen   int // Picked but the backport is not merged yet
	TotalPRs     int
}

// RenderResults renders detection results as a table with one row per source PR
// and one column per target branch, followed by a summary
func RenderResults(results []domain.DetectionResult) string {
	if len(results) == 0 {
		return theme.WarnStyle.Render("No PRs found.")
	}

	rows, branches := groupResults(results)

	headers := append([]string{"PR #", "Title", "Status", "Created", "Merged"}, branches...)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.BorderStyle).
		BorderRow(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			return theme.CellStyle
		})

	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("#%d", r.pr.Number),
			truncate(r.pr.Title, titleMaxLength),
			formatState(r.pr.State),
			theme.MutedStyle.Render(formatDate(r.pr.CreatedAt)),
			theme.MutedStyle.Render(formatDate(r.pr.MergedAt)),
		}
		for _, branch := range branches {
			result, ok := r.branches[branch]
			cells = append(cells, formatPickCell(result, ok))
		}
		t.Row(cells...)
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Cherry-Pick Status"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(renderSummary(Summarize(results)))
	return b.String()
}

// Summarize counts source PRs and pick outcomes
func Summarize(results []domain.DetectionResult) Summary {
	rows, branches := groupResults(results)
	s := Summary{
		Branches: len(branches),
		TotalPRs: len(rows),
	}

	for _, r := range rows {
		if r.pr.IsOpen() {
			s.OpenPRs++
		}
	}
	s.MergedPRs = s.TotalPRs - s.OpenPRs

	picked := 0
	for _, r := range results {
		if r.Status != domain.PickStatusPicked {
			continue
		}
		picked++
		if r.RelatedPR != nil && r.RelatedPR.State == domain.PRStateMerged {
			s.PickedMerged++
		}
	}
	s.PickedOpen = picked - s.PickedMerged
	s.NotPicked = len(results) - picked

	return s
}

func renderSummary(s Summary) string {
	return fmt.Sprintf("%s %d PRs (%d open, %d merged) across %d branches\n  Cherry-picked: %s, %s, %s",
		lipgloss.NewStyle().Bold(true).Render("Summary:"),
		s.TotalPRs, s.OpenPRs, s.MergedPRs, s.Branches,
		theme.PickedStyle.Render(fmt.Sprintf("%d merged", s.PickedMerged)),
		theme.OpenStyle.Render(fmt.Sprintf("%d open", s.PickedOpen)),
		theme.NotPickedStyle.Render(fmt.Sprintf("%d not picked", s.NotPicked)),
	)
}

// groupResults groups results by source PR, open PRs first then by number descending.
// Branches are returned newest version first.
func groupResults(results []domain.DetectionResult) ([]sourceRow, []string) {
	byNumber := make(map[int]*sourceRow)
	var order []int
	seenBranch := make(map[string]bool)
	var branches []string

	for _, r := range results {
		row, ok := byNumber[r.SourcePR.Number]
		if !ok {
			row = &sourceRow{
				pr:       r.SourcePR,
				branches: make(map[string]domain.DetectionResult),
			}
			byNumber[r.SourcePR.Number] = row
			order = append(order, r.SourcePR.Number)
		}
		row.branches[r.TargetBranch] = r

		if !seenBranch[r.TargetBranch] {
			seenBranch[r.TargetBranch] = true
			branches = append(branches, r.TargetBranch)
		}
	}

	rows := make([]sourceRow, 0, len(order))
	for _, n := range order {
		rows = append(rows, *byNumber[n])
	}
	slices.SortStableFunc(rows, func(a, b sourceRow) int {
		if a.pr.IsOpen() != b.pr.IsOpen() {
			if a.pr.IsOpen() {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.pr.Number, a.pr.Number)
	})

	slices.SortStableFunc(branches, func(a, b string) int {
		if c := domain.CompareVersions(b, a); c != 0 {
			return c
		}
		return strings.Compare(b, a)
	})

	return rows, branches
}

func formatState(state domain.PRState) string {
	switch state {
	case domain.PRStateOpen:
		return theme.OpenStyle.Render("open")
	case domain.PRStateMerged:
		return theme.PickedStyle.Render("merged")
	case domain.PRStateClosed:
		return theme.ClosedStyle.Render("closed")
	default:
		return string(state)
	}
}

// formatPickCell renders one branch cell; a missing result counts as not picked
func formatPickCell(result domain.DetectionResult, ok bool) string {
	if !ok {
		return theme.NotPickedStyle.Render("x")
	}

	switch result.Status {
	case domain.PickStatusPicked:
		if result.RelatedPR == nil {
			return theme.UnknownStyle.Render("?")
		}
		num := fmt.Sprintf("#%d", result.RelatedPR.Number)
		switch result.RelatedPR.State {
		case domain.PRStateOpen:
			return theme.OpenStyle.Render(num + " (open)")
		case domain.PRStateClosed:
			return theme.ClosedStyle.Render(num + " (closed)")
		default:
			return theme.PickedStyle.Render(num)
		}
	case domain.PickStatusUnknown:
		return theme.UnknownStyle.Render("?")
	case domain.PickStatusNotPicked:
		return theme.NotPickedStyle.Render("x")
	default:
		return theme.NotPickedStyle.Render("x")
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return noDate
	}
	return t.Format(dateLayout)
}

// truncate shortens text to limit cells, ending with "..."
func truncate(text string, limit int) string {
	return ansi.Truncate(text, limit, "...")
}
