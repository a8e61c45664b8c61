// Package tui renders audit reports for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/report"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	severityColors = map[domain.Severity]lipgloss.Color{
		domain.SeverityCritical: danger,
		domain.SeveritySerious:  lipgloss.Color("#FB923C"), // orange
		domain.SeverityModerate: warning,
		domain.SeverityMinor:    info,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	urlStyle      = lipgloss.NewStyle().Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats the full audit for terminal output.
func RenderReport(r *report.Report) string {
	var b strings.Builder

	// ── Header box ──
	title := headerStyle.Render("a11yscan")
	subtitle := dimStyle.Render(r.Summary.Site)
	total := r.Summary.TotalViolations
	totalStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(totalColor(total)).
		Render(fmt.Sprintf("%d violations", total))
	pagesLine := dimStyle.Render(fmt.Sprintf("%d pages scanned · %s",
		r.Summary.PagesScanned, completionLabel(r.Summary.Completion)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + totalStyled + "\n" + pagesLine))
	b.WriteString("\n\n")

	// ── Severity breakdown ──
	for _, sc := range r.Summary.SeverityCounts {
		renderSeverityRow(&b, sc)
	}

	if r.Summary.PagesFailed > 0 || r.Summary.PagesNotChecked > 0 {
		b.WriteString("\n")
		if r.Summary.PagesFailed > 0 {
			fmt.Fprintf(&b, "  %s\n", failStyle.Render(fmt.Sprintf("%d pages failed to load", r.Summary.PagesFailed)))
		}
		if r.Summary.PagesNotChecked > 0 {
			fmt.Fprintf(&b, "  %s\n", failStyle.Render(fmt.Sprintf("%d pages loaded but were not checked", r.Summary.PagesNotChecked)))
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Quick wins ──
	b.WriteString("  " + titleStyle.Render("Quick wins") + "\n\n")
	if len(r.QuickWins) == 0 {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
	} else {
		for _, w := range r.QuickWins {
			renderQuickWin(&b, w)
		}
	}

	// ── Pages ──
	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString("  " + titleStyle.Render("Pages") + "\n\n")
	for _, p := range r.Pages {
		renderPage(&b, p)
	}

	// ── Off-domain ──
	if len(r.OffDomain) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n", titleStyle.Render(fmt.Sprintf("Off-domain links skipped (%d)", len(r.OffDomain))))
		for _, u := range r.OffDomain {
			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(u))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderSeverityRow(b *strings.Builder, sc report.SeverityCount) {
	color := severityColor(sc.Severity)
	bar := coloredBar(sc.Count, 20, color)
	label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(padRight(sc.Label, 10))
	fmt.Fprintf(b, "  %s %s  %s\n", label, bar, dimStyle.Render(fmt.Sprintf("%d", sc.Count)))
}

func renderQuickWin(b *strings.Builder, w report.QuickWinRow) {
	sev := severityTag(w.Severity)
	fmt.Fprintf(b, "  %2d. %s %s  %s\n",
		w.Rank, sev, titleStyle.Render(w.RuleID),
		dimStyle.Render(fmt.Sprintf("%d on %d pages", w.Count, w.PagesAffected)))
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(w.Description))
	if w.HelpURL != "" {
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(w.HelpURL))
	}
}

func renderPage(b *strings.Builder, p report.PageDetail) {
	switch p.Outcome {
	case report.OutcomeLoadFailed:
		fmt.Fprintf(b, "  %s %s  %s\n", failStyle.Render("✗"), urlStyle.Render(p.URL),
			failStyle.Render(p.Detail))
		return
	case report.OutcomeNotEvaluated:
		fmt.Fprintf(b, "  %s %s  %s\n", failStyle.Render("?"), urlStyle.Render(p.URL),
			dimStyle.Render("not checked: "+p.Detail))
		return
	}

	if len(p.Violations) == 0 {
		fmt.Fprintf(b, "  %s %s  %s\n", passStyle.Render("✓"), urlStyle.Render(p.URL),
			passStyle.Render("clean"))
		return
	}
	fmt.Fprintf(b, "  %s %s  %s\n", failStyle.Render("●"), urlStyle.Render(p.URL),
		dimStyle.Render(fmt.Sprintf("%d violations", len(p.Violations))))
	for _, v := range p.Violations {
		fmt.Fprintf(b, "      %s %s  %s\n",
			severityTag(v.Severity), v.RuleID, faintStyle.Render(v.Selector))
	}
}

func severityTag(s domain.Severity) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(severityColor(s))
	return style.Render(padRight(string(s), 8))
}

func severityColor(s domain.Severity) lipgloss.Color {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return fg
}

func totalColor(total int) lipgloss.Color {
	if total == 0 {
		return success
	}
	return danger
}

func completionLabel(r domain.CompletionReason) string {
	switch r {
	case domain.CompletionFrontierExhausted:
		return "crawl complete"
	case domain.CompletionBudgetReached:
		return "page budget reached"
	case domain.CompletionDeadlineExceeded:
		return "deadline exceeded"
	case domain.CompletionCancelled:
		return "cancelled"
	default:
		return string(r)
	}
}

func coloredBar(count, width int, color lipgloss.Color) string {
	filled := min(count, width)
	empty := width - filled
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
