package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/a11yscan/a11yscan/internal/domain"
)

// WCAGVersion is the conformance target named in generated statements.
const WCAGVersion = "2.2"

// statementCategories buckets criteria into the sections of the accessibility
// statement. First match wins; anything unmatched lands in "Other".
var statementCategories = []struct {
	name string
	keys []string
}{
	{"Page Structure and Headings", []string{"info & relationships", "page titled", "landmark", "heading", "document-title"}},
	{"Keyboard Navigation", []string{"keyboard", "focus visible", "focus order", "skip link", "tabindex"}},
	{"Text and Colour Contrast", []string{"contrast"}},
	{"Images and Alt Text", []string{"non-text content", "image", "img"}},
	{"Forms and Labels", []string{"labels or instructions", "autocomplete", "error", "form", "label"}},
	{"Mobile Accessibility", []string{"target size", "reflow", "viewport", "zoom", "scalable"}},
	{"Screen Reader Experience", []string{"name, role, value", "aria", "link-name", "button-name", "frame-title"}},
}

// CategoryFor buckets one issue by rule id and description text.
func CategoryFor(ruleID, description string) string {
	t := strings.ToLower(ruleID + " " + description)
	for _, c := range statementCategories {
		for _, k := range c.keys {
			if strings.Contains(t, k) {
				return c.name
			}
		}
	}
	return "Other"
}

// StatementItem is one non-compliance entry in the statement.
type StatementItem struct {
	Page     string `json:"page"`
	Selector string `json:"selector"`
	Summary  string `json:"summary"`
	Impact   string `json:"impact"`
	Fix      string `json:"fix"`
}

// StatementGroup collects items under one criterion within a category.
type StatementGroup struct {
	Category  string          `json:"category"`
	Criterion string          `json:"criterion"`
	Items     []StatementItem `json:"items"`
}

// Statement is the data handed to the external Markdown renderer.
type Statement struct {
	OrgName      string           `json:"org_name"`
	SiteRoot     string           `json:"site_root"`
	WCAGVersion  string           `json:"wcag_version"`
	ScannedAt    string           `json:"scanned_at"`
	PagesScanned int              `json:"pages_scanned"`
	Groups       []StatementGroup `json:"groups"`
	ContactName  string           `json:"contact_name"`
	ContactEmail string           `json:"contact_email"`
	SLADays      int              `json:"sla_days"`
	RoadmapDate  string           `json:"roadmap_date"`
}

// Compliant reports whether the audit found nothing to declare.
func (s *Statement) Compliant() bool { return len(s.Groups) == 0 }

// BuildStatement groups every violation in the audit into statement sections.
// now is injected so callers get reproducible output in tests; the roadmap
// target date defaults to sixty days out.
func BuildStatement(a *domain.Audit, org domain.StatementConfig, now time.Time) *Statement {
	type key struct{ category, criterion string }
	buckets := make(map[key][]StatementItem)

	for _, page := range a.Pages {
		for _, v := range page.Violations {
			criterion := v.RuleID
			if v.Description != "" {
				criterion = fmt.Sprintf("%s — %s", v.RuleID, v.Description)
			}
			k := key{CategoryFor(v.RuleID, v.Description), criterion}
			fix := v.HelpURL
			if fix == "" {
				fix = "Review WCAG guidance and adjust."
			}
			summary := v.Description
			if summary == "" {
				summary = "See details"
			}
			buckets[k] = append(buckets[k], StatementItem{
				Page:     page.URL,
				Selector: v.Selector,
				Summary:  summary,
				Impact:   v.Severity.Label(),
				Fix:      fix,
			})
		}
	}

	groups := make([]StatementGroup, 0, len(buckets))
	for k, items := range buckets {
		groups = append(groups, StatementGroup{Category: k.category, Criterion: k.criterion, Items: items})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Category != groups[j].Category {
			return groups[i].Category < groups[j].Category
		}
		return groups[i].Criterion < groups[j].Criterion
	})

	orgName := org.OrgName
	if orgName == "" {
		orgName = hostOf(a.SiteRoot)
	}

	return &Statement{
		OrgName:      orgName,
		SiteRoot:     a.SiteRoot,
		WCAGVersion:  WCAGVersion,
		ScannedAt:    now.Format("2006-01-02"),
		PagesScanned: len(a.Pages),
		Groups:       groups,
		ContactName:  org.ContactName,
		ContactEmail: org.ContactEmail,
		SLADays:      org.SLADays,
		RoadmapDate:  now.AddDate(0, 0, 60).Format("2006-01-02"),
	}
}

func hostOf(rawURL string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}
