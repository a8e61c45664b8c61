package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a11yscan/a11yscan/internal/adapters/outbound/tui"
	"github.com/a11yscan/a11yscan/internal/domain"
	"github.com/a11yscan/a11yscan/internal/domain/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Summary: report.Summary{
			Site:             "https://example.org/",
			PagesScanned:     3,
			PagesLoaded:      2,
			PagesFailed:      1,
			OffDomainSkipped: 1,
			TotalViolations:  4,
			DistinctRules:    2,
			SeverityCounts: []report.SeverityCount{
				{Severity: domain.SeverityCritical, Label: "Critical", Count: 3},
				{Severity: domain.SeveritySerious, Label: "Serious", Count: 1},
				{Severity: domain.SeverityModerate, Label: "Moderate", Count: 0},
				{Severity: domain.SeverityMinor, Label: "Minor", Count: 0},
			},
			Completion: domain.CompletionFrontierExhausted,
		},
		QuickWins: []report.QuickWinRow{
			{Rank: 1, RuleID: "image-alt", Severity: domain.SeverityCritical, Count: 3, PagesAffected: 2,
				Description: "Images must have alternate text", HelpURL: "https://dequeuniversity.com/rules/axe/4.9/image-alt"},
			{Rank: 2, RuleID: "html-has-lang", Severity: domain.SeveritySerious, Count: 1, PagesAffected: 1,
				Description: "<html> element must have a lang attribute"},
		},
		Pages: []report.PageDetail{
			{URL: "https://example.org/", Outcome: report.OutcomeEvaluated, Violations: []domain.Violation{
				{RuleID: "image-alt", Severity: domain.SeverityCritical, Selector: "img.hero"},
			}},
			{URL: "https://example.org/about", Outcome: report.OutcomeEvaluated},
			{URL: "https://example.org/broken", Outcome: report.OutcomeLoadFailed, Detail: "http_error"},
		},
		OffDomain: []string{"https://twitter.com/example"},
	}
}

func TestRenderReport_ContainsSite(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "https://example.org/")
	assert.Contains(t, output, "a11yscan")
}

func TestRenderReport_ContainsTotals(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "4 violations")
	assert.Contains(t, output, "3 pages scanned")
	assert.Contains(t, output, "crawl complete")
}

func TestRenderReport_SeverityBreakdownShowsAllFour(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Critical")
	assert.Contains(t, output, "Serious")
	assert.Contains(t, output, "Moderate")
	assert.Contains(t, output, "Minor")
}

func TestRenderReport_QuickWinsRanked(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Quick wins")
	assert.Contains(t, output, "image-alt")
	assert.Contains(t, output, "3 on 2 pages")
	first := strings.Index(output, "image-alt")
	second := strings.Index(output, "html-has-lang")
	assert.True(t, first < second, "rank 1 should render before rank 2")
}

func TestRenderReport_PageOutcomes(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "clean")
	assert.Contains(t, output, "1 violations")
	assert.Contains(t, output, "http_error")
	assert.Contains(t, output, "1 pages failed to load")
}

func TestRenderReport_OffDomainSection(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Off-domain links skipped (1)")
	assert.Contains(t, output, "https://twitter.com/example")
}

func TestRenderReport_NoViolations(t *testing.T) {
	r := sampleReport()
	r.QuickWins = nil
	output := tui.RenderReport(r)
	assert.Contains(t, output, "No violations found.")
}

func TestRenderReport_NotEvaluatedPage(t *testing.T) {
	r := sampleReport()
	r.Pages = append(r.Pages, report.PageDetail{
		URL: "https://example.org/js-heavy", Outcome: report.OutcomeNotEvaluated, Detail: "axe-core crashed",
	})
	r.Summary.PagesNotChecked = 1
	output := tui.RenderReport(r)
	assert.Contains(t, output, "not checked: axe-core crashed")
	assert.Contains(t, output, "1 pages loaded but were not checked")
}

func TestRenderReport_ProgressBars(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "█")
}
