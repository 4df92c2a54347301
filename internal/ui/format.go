// ABOUTME: Terminal formatting for machinelog output.
// ABOUTME: Uses fatih/color for styling and glamour for the detail view.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/models"
	"github.com/harper/machinelog/internal/similarity"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatSummary(s *db.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		faint(fmt.Sprintf("#%d", s.ID)),
		bold(s.Machine),
		cyan(fmt.Sprintf("[%s]", s.Category))))
	sb.WriteString(fmt.Sprintf("      %s %s · %s %s\n",
		faint("When:"), faint(s.CreatedAt),
		faint("By:"), faint(s.Operator)))
	sb.WriteString(fmt.Sprintf("      %s\n", s.Problem))

	return sb.String()
}

// FormatDetail renders the full record as markdown. Falls back to the
// raw text if the renderer is unavailable.
func FormatDetail(iv *models.Intervention, hist map[models.Kind]int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Intervention #%d\n\n", iv.ID))
	sb.WriteString(fmt.Sprintf("- **When:** %s\n", iv.CreatedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("- **Machine:** %s\n", iv.Machine))
	sb.WriteString(fmt.Sprintf("- **Operator:** %s\n", iv.Operator))
	sb.WriteString(fmt.Sprintf("- **Category:** %s\n", iv.Category))
	sb.WriteString(fmt.Sprintf("- **Attachments:** %s\n", formatHistogram(hist)))
	sb.WriteString(fmt.Sprintf("\n## Problem\n\n%s\n", iv.Problem))
	sb.WriteString(fmt.Sprintf("\n## Solution\n\n%s\n", iv.Solution))
	md := sb.String()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func formatHistogram(hist map[models.Kind]int) string {
	var tokens []string
	for _, k := range models.Kinds() {
		if n := hist[k]; n > 0 {
			tokens = append(tokens, fmt.Sprintf("%d %s", n, k))
		}
	}
	if len(tokens) == 0 {
		return "none"
	}
	return strings.Join(tokens, ", ")
}

func FormatMatch(rank int, m similarity.Match) string {
	var sb strings.Builder
	iv := m.Intervention

	sb.WriteString(fmt.Sprintf("%s %s\n",
		bold(fmt.Sprintf("Result #%d", rank)),
		cyan(fmt.Sprintf("%d%% similar", int(m.Score*100)))))
	sb.WriteString(fmt.Sprintf("  %s %s · %s %s · %s %s\n",
		faint("When:"), faint(iv.CreatedAt.Format("2006-01-02 15:04")),
		faint("Machine:"), iv.Machine,
		faint("Category:"), string(iv.Category)))
	sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Problem:"), iv.ProblemPreview()))
	sb.WriteString(fmt.Sprintf("  %s %s\n", faint("Solution:"), iv.Solution))

	return sb.String()
}

func FormatAttachmentList(metas []*db.AttachmentMeta) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s\n", bold("Attachments:")))
	for _, m := range metas {
		sb.WriteString(fmt.Sprintf("  %s  %s %s\n",
			faint(fmt.Sprintf("#%d", m.ID)),
			m.Filename,
			faint(fmt.Sprintf("[%s]", m.Kind))))
	}

	return sb.String()
}

func FormatStats(stats *db.Stats, categories []db.CategoryCount, machines []db.MachineCount, months []db.MonthCount) string {
	var sb strings.Builder

	sb.WriteString(bold("Totals") + "\n")
	sb.WriteString(fmt.Sprintf("  Interventions:     %d\n", stats.Interventions))
	sb.WriteString(fmt.Sprintf("  Attachments:       %d", stats.Attachments))
	if stats.Attachments > 0 {
		var parts []string
		for _, k := range models.Kinds() {
			if n := stats.AttachmentsByKind[k]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, k.Abbrev()))
			}
		}
		sb.WriteString(faint(" (" + strings.Join(parts, ", ") + ")"))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Distinct machines: %d\n", stats.DistinctMachines))

	if len(categories) > 0 {
		sb.WriteString("\n" + bold("By category") + "\n")
		for _, c := range categories {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", c.Category, c.Count))
		}
	}

	if len(machines) > 0 {
		sb.WriteString("\n" + bold("Top machines") + "\n")
		for _, m := range machines {
			sb.WriteString(fmt.Sprintf("  %-20s %d\n", m.Machine, m.Count))
		}
	}

	if len(months) > 0 {
		maxCount := 0
		for _, m := range months {
			if m.Count > maxCount {
				maxCount = m.Count
			}
		}
		sb.WriteString("\n" + bold("Monthly trend") + "\n")
		for _, m := range months {
			sb.WriteString(fmt.Sprintf("  %s  %s %d\n", m.Month, trendBar(m.Count, maxCount), m.Count))
		}
	}

	return sb.String()
}

// trendBarWidth caps the monthly bar so a busy month stays on one line.
const trendBarWidth = 40

func trendBar(count, maxCount int) string {
	if count <= 0 || maxCount <= 0 {
		return ""
	}
	n := count * trendBarWidth / maxCount
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
